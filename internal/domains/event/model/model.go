package model

import (
	"encoding/binary"
	"time"

	"infopage/shared/constant"
	"infopage/shared/timezone"

	"github.com/google/uuid"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID     = "id"
	FieldRoom   = "room"
	FieldBegins = "begins"
	FieldEnds   = "ends"
	FieldName   = "name"
)

type Event struct {
	ID     int64     `db:"id"`
	Room   int64     `db:"room"`
	Begins time.Time `db:"begins"`
	Ends   time.Time `db:"ends"`
	Name   string    `db:"name"`
}

// EventWithRoom is an event joined with the name of its room.
type EventWithRoom struct {
	Event
	RoomName string `db:"room_name" table:"rooms" column:"name"`
}

func (EventWithRoom) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = events.room"
}

// InAppTime reattaches the application timezone to the stored wall clock.
func (e EventWithRoom) InAppTime() EventWithRoom {
	e.Begins = timezone.FromWall(e.Begins)
	e.Ends = timezone.FromWall(e.Ends)

	return e
}

// StorageID reduces a 128-bit event identifier to its low 32 bits, masked to
// the non-negative range of events.id.
func StorageID(id uuid.UUID) int64 {
	return int64(binary.BigEndian.Uint32(id[12:])) & constant.StorageIDMask
}
