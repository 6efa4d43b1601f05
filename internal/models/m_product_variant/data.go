package m_product_variant

import "time"

// Data represents the database model for the product_variants table.
type Data struct {
	ProductID         string
	OptionKey         string
	AvailableValueIDs []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
