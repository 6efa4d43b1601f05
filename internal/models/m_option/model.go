package m_option

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the options table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an option.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			OptionKey,
			DisplayName,
			IsRequired,
			SelectionType,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.OptionKey,
			data.DisplayName,
			data.IsRequired,
			data.SelectionType,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting an option.
func (m *Model) DeleteMut(optionKey string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{optionKey})
}
