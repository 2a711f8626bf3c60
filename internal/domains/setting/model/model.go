package model

import "database/sql"

const (
	TableName  = "config"
	EntityName = "setting"

	FieldKey   = "key"
	FieldValue = "value"
)

// Keys of the settings table.
const (
	KeyMaxRows       = "max_rows"
	KeyTimeFormat    = "time_format"
	KeyHasNow        = "has_now"
	KeyNowText       = "now_text"
	KeyNowMasterText = "now_master_text"
)

type Setting struct {
	Key   string         `db:"key"`
	Value sql.NullString `db:"value"`
}

// Defaults are the rows seeded into a fresh settings table, in insert order.
func Defaults() []Setting {
	return []Setting{
		{Key: KeyMaxRows, Value: sql.NullString{String: "10", Valid: true}},
		{Key: KeyTimeFormat, Value: sql.NullString{String: "%H:%M", Valid: true}},
		{Key: KeyHasNow, Value: sql.NullString{String: "1", Valid: true}},
		{Key: KeyNowText, Value: sql.NullString{String: "Now", Valid: true}},
		{Key: KeyNowMasterText, Value: sql.NullString{String: "In session", Valid: true}},
	}
}
