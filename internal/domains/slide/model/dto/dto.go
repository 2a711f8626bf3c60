package dto

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"infopage/internal/domains/slide/master"
	"infopage/internal/domains/slide/model"
	"infopage/shared/failure"
)

// allRoomsSlide is the slide order entry that selects the all-rooms master.
const allRoomsSlide = -1

// SlideSpec is one entry of a slide order.
type SlideSpec struct {
	Master master.Kind
	Room   *int64
}

// ParseOrder reads a comma separated list of room ids; -1 stands for the
// all-rooms master.
func ParseOrder(order string) ([]SlideSpec, error) {
	var specs []SlideSpec

	for _, field := range strings.Split(order, ",") {
		room, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, failure.BadRequestFromString(fmt.Sprintf("invalid slide %q: not a room id", field)) //nolint:wrapcheck
		}

		if room == allRoomsSlide {
			specs = append(specs, SlideSpec{Master: master.AllRoomsNow})

			continue
		}

		specs = append(specs, SlideSpec{Master: master.EventsWithNow, Room: &room})
	}

	return specs, nil
}

// ToModel returns the visible slide stored at position sequenceNo.
func (s SlideSpec) ToModel(sequenceNo int) model.Slide {
	slide := model.Slide{
		SequenceNo: sql.NullInt64{Int64: int64(sequenceNo), Valid: true},
		Master:     int(s.Master),
	}

	if s.Room != nil {
		slide.Room = sql.NullInt64{Int64: *s.Room, Valid: true}
	}

	return slide
}

// SlideRef is the outcome of selecting a slide for a counter value.
type SlideRef struct {
	Found    bool        `json:"found"`
	Index    int64       `json:"index"`
	Master   master.Kind `json:"master"`
	Title    *string     `json:"title,omitempty"`
	RoomID   *int64      `json:"room_id,omitempty"`
	RoomName string      `json:"room_name,omitempty"`
	MaxRows  *int        `json:"max_rows,omitempty"`
}

func (r *SlideRef) FromModel(slide model.Slide) {
	r.Found = true
	r.Index = slide.SequenceNo.Int64
	r.Master = master.Kind(slide.Master)
	r.RoomName = slide.RoomName.String

	if slide.Title.Valid {
		title := slide.Title.String
		r.Title = &title
	}

	if slide.Room.Valid {
		room := slide.Room.Int64
		r.RoomID = &room
	}

	if slide.MaxRows.Valid {
		rows := int(slide.MaxRows.Int64)
		r.MaxRows = &rows
	}
}

// ToMaster returns what the master needs. A missing slide falls back to the
// events master without a room, which renders an empty page.
func (r SlideRef) ToMaster() master.Slide {
	if !r.Found {
		return master.Slide{Kind: master.EventsWithNow}
	}

	return master.Slide{
		Kind:     r.Master,
		Title:    r.Title,
		RoomID:   r.RoomID,
		RoomName: r.RoomName,
		MaxRows:  r.MaxRows,
	}
}
