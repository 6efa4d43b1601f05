package m_price_tier

// Field name constants for the price_tiers table.
// The table is interleaved in products; rows are keyed (product_id, tier_id).
const (
	TableName = "price_tiers"

	ProductID            = "product_id"
	TierID               = "tier_id"
	MinQuantity          = "min_quantity"
	MaxQuantity          = "max_quantity"
	UnitPriceNumerator   = "unit_price_numerator"
	UnitPriceDenominator = "unit_price_denominator"
	DiscountPercent      = "discount_percent"
	CreatedAt            = "created_at"
	UpdatedAt            = "updated_at"
)
