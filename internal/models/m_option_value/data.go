package m_option_value

import "time"

// Data represents the database model for the option_values table.
type Data struct {
	ValueID              string
	OptionKey            string
	DisplayName          string
	SurchargeNumerator   int64
	SurchargeDenominator int64
	Swatch               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
