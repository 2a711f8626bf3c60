package model

import "database/sql"

const (
	TableName  = "slides"
	EntityName = "slide"

	FieldID         = "id"
	FieldSequenceNo = "sequence_no"
	FieldRoom       = "room"
	FieldMaster     = "master"
	FieldTitle      = "title"
	FieldMaxRows    = "max_rows"
)

// Slide is a display slide. A null SequenceNo hides it; a null Room is used
// by masters that span every room.
type Slide struct {
	ID         int64          `db:"id"          insert:"-"`
	SequenceNo sql.NullInt64  `db:"sequence_no"`
	Room       sql.NullInt64  `db:"room"`
	Master     int            `db:"master"`
	Title      sql.NullString `db:"title"`
	MaxRows    sql.NullInt64  `db:"max_rows"`
	RoomName   sql.NullString `db:"room_name"   table:"rooms" column:"name"`
}

func (Slide) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = slides.room"
}
