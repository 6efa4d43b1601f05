package m_product

import "time"

// Data represents the database model for the products table.
type Data struct {
	ProductID        string
	Name             string
	Category         string
	MinOrderQuantity int64
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
