package dto

import (
	"fmt"
	"time"

	"infopage/internal/domains/event/model"
	roomModel "infopage/internal/domains/room/model"
	"infopage/shared/timezone"

	"github.com/google/uuid"
)

// ClearMode selects what an import wipes before reconciling.
type ClearMode int

const (
	ClearNone ClearMode = iota
	// ClearEvents empties the events table (--overwrite).
	ClearEvents
	// ClearAll empties events, slides and rooms (--clear).
	ClearAll
)

func (m ClearMode) String() string {
	switch m {
	case ClearNone:
		return "none"
	case ClearEvents:
		return "events"
	case ClearAll:
		return "all"
	default:
		return fmt.Sprintf("ClearMode(%d)", int(m))
	}
}

// ImportEvent is the normalized record both import sources produce.
type ImportEvent struct {
	ID      uuid.UUID
	Name    string
	VenueID int64
	Venue   string
	Active  bool
	Start   time.Time
	End     time.Time
}

func (e ImportEvent) StorageID() int64 {
	return model.StorageID(e.ID)
}

func (e ImportEvent) RoomID() int64 {
	return roomModel.StorageID(e.VenueID)
}

func (e ImportEvent) ToRoom() roomModel.Room {
	return roomModel.Room{ID: e.RoomID(), Name: e.Venue}
}

// ToModel returns the row to store, with times as application wall clock.
func (e ImportEvent) ToModel() model.Event {
	return model.Event{
		ID:     e.StorageID(),
		Room:   e.RoomID(),
		Begins: timezone.ToAppTime(e.Start),
		Ends:   timezone.ToAppTime(e.End),
		Name:   e.Name,
	}
}

// ToUpdate returns the columns rewritten when the event already exists.
func (e ImportEvent) ToUpdate() map[string]any {
	row := e.ToModel()

	return map[string]any{
		model.FieldRoom:   row.Room,
		model.FieldBegins: row.Begins,
		model.FieldEnds:   row.Ends,
		model.FieldName:   row.Name,
	}
}

type ImportResult struct {
	RoomsInserted  int `json:"rooms_inserted"`
	EventsInserted int `json:"events_inserted"`
	EventsUpdated  int `json:"events_updated"`
	EventsDeleted  int `json:"events_deleted"`
	EventsSkipped  int `json:"events_skipped"`
}

func (r ImportResult) String() string {
	return fmt.Sprintf("rooms inserted: %d, events inserted: %d, updated: %d, deleted: %d, skipped: %d",
		r.RoomsInserted, r.EventsInserted, r.EventsUpdated, r.EventsDeleted, r.EventsSkipped)
}
