package m_product_variant

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the product_variants table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product variant.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ProductID,
			OptionKey,
			AvailableValueIDs,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ProductID,
			data.OptionKey,
			data.AvailableValueIDs,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product variant.
func (m *Model) DeleteMut(productID, optionKey string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, optionKey})
}

// DeleteAllMut creates a Spanner mutation deleting every variant of a product.
func (m *Model) DeleteAllMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID}.AsPrefix())
}
