// Package master renders slide content. Every slide names one of a fixed set
// of masters by its stored integer code.
package master

import "fmt"

// Kind is the stored master code of a slide.
type Kind int

const (
	// EventsWithNow lists the upcoming events of a room, led by the event in
	// progress.
	EventsWithNow Kind = 0
	// Events lists the upcoming events of a room.
	Events Kind = 1
	// AllRoomsNow lists the events in progress in every room.
	AllRoomsNow Kind = 2
)

func (k Kind) Valid() bool {
	switch k {
	case EventsWithNow, Events, AllRoomsNow:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case EventsWithNow:
		return "events-with-now"
	case Events:
		return "events"
	case AllRoomsNow:
		return "all-rooms-now"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
