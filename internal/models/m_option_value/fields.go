package m_option_value

// Field name constants for the option_values table.
// Value IDs are globally unique; option_key is a secondary-indexed reference.
const (
	TableName = "option_values"

	ValueID              = "value_id"
	OptionKey            = "option_key"
	DisplayName          = "display_name"
	SurchargeNumerator   = "surcharge_numerator"
	SurchargeDenominator = "surcharge_denominator"
	Swatch               = "swatch"
	CreatedAt            = "created_at"
	UpdatedAt            = "updated_at"
)
