package m_option

// Field name constants for the options table.
const (
	TableName = "options"

	OptionKey     = "option_key"
	DisplayName   = "display_name"
	IsRequired    = "is_required"
	SelectionType = "selection_type"
	CreatedAt     = "created_at"
	UpdatedAt     = "updated_at"
)
