package m_option_value

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the option_values table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an option value.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ValueID,
			OptionKey,
			DisplayName,
			SurchargeNumerator,
			SurchargeDenominator,
			Swatch,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ValueID,
			data.OptionKey,
			data.DisplayName,
			data.SurchargeNumerator,
			data.SurchargeDenominator,
			data.Swatch,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting an option value.
func (m *Model) DeleteMut(valueID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{valueID})
}
