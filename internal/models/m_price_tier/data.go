package m_price_tier

import "time"

// Data represents the database model for the price_tiers table.
// MaxQuantity stores math.MaxInt64 for the unbounded last tier.
type Data struct {
	ProductID            string
	TierID               string
	MinQuantity          int64
	MaxQuantity          int64
	UnitPriceNumerator   int64
	UnitPriceDenominator int64
	DiscountPercent      int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
