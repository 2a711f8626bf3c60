package model

import "infopage/shared/constant"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID   = "id"
	FieldName = "name"
)

type Room struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// StorageID maps an external venue id into the range of rooms.id.
func StorageID(venueID int64) int64 {
	return venueID & constant.StorageIDMask
}
