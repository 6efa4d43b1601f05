package m_option

import "time"

// Data represents the database model for the options table.
type Data struct {
	OptionKey     string
	DisplayName   string
	IsRequired    bool
	SelectionType string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
