package m_product_variant

// Field name constants for the product_variants table.
// Rows are keyed (product_id, option_key): a product offers each option once,
// with the subset of the option's values available for this product.
const (
	TableName = "product_variants"

	ProductID         = "product_id"
	OptionKey         = "option_key"
	AvailableValueIDs = "available_value_ids"
	CreatedAt         = "created_at"
	UpdatedAt         = "updated_at"
)
