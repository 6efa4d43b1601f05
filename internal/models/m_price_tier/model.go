package m_price_tier

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the price_tiers table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a price tier.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ProductID,
			TierID,
			MinQuantity,
			MaxQuantity,
			UnitPriceNumerator,
			UnitPriceDenominator,
			DiscountPercent,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ProductID,
			data.TierID,
			data.MinQuantity,
			data.MaxQuantity,
			data.UnitPriceNumerator,
			data.UnitPriceDenominator,
			data.DiscountPercent,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting one tier.
func (m *Model) DeleteMut(productID, tierID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, tierID})
}

// DeleteAllMut creates a Spanner mutation deleting every tier of a product.
func (m *Model) DeleteAllMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID}.AsPrefix())
}
