package master

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"infopage/internal/domains/event/model"
	settingDto "infopage/internal/domains/setting/model/dto"
	"infopage/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Slide is the part of a selected slide a master renders from.
type Slide struct {
	Kind     Kind
	Title    *string
	RoomID   *int64
	RoomName string
	MaxRows  *int
}

// EventQueries are the event queries the masters run.
type EventQueries interface {
	Upcoming(ctx context.Context, room int64, from time.Time, limit int) ([]model.EventWithRoom, error)
	Current(ctx context.Context, room int64, at time.Time) (model.EventWithRoom, bool, error)
	InProgress(ctx context.Context, at time.Time, limit int) ([]model.EventWithRoom, error)
}

type Renderer struct {
	events EventQueries
}

func NewRenderer(events EventQueries) *Renderer {
	return &Renderer{events: events}
}

// Render produces the HTML fragment of slide at the given time. An unknown
// master renders nothing.
func (r *Renderer) Render(ctx context.Context, slide Slide, settings settingDto.Settings, now time.Time) (string, error) {
	switch slide.Kind {
	case EventsWithNow:
		return r.eventList(ctx, slide, settings, now, settings.HasNow)
	case Events:
		return r.eventList(ctx, slide, settings, now, false)
	case AllRoomsNow:
		return r.allRoomsNow(ctx, slide, settings, now)
	default:
		log.Warn().Int("master", int(slide.Kind)).Msg("slide refers to an unknown master")

		return "", nil
	}
}

func (r *Renderer) eventList(ctx context.Context, slide Slide, settings settingDto.Settings, now time.Time, withNow bool) (string, error) {
	title := slide.RoomName
	if slide.Title != nil {
		title = *slide.Title
	}

	var content rows

	if slide.RoomID != nil {
		room := *slide.RoomID
		limit := maxRows(slide, settings)

		if withNow {
			current, found, err := r.events.Current(ctx, room, now)
			if err != nil {
				return "", fmt.Errorf("failed to get the current event of room %d: %w", room, err)
			}

			if found {
				limit--

				content.event(current.Name, settings.NowText)
			}
		}

		upcoming, err := r.events.Upcoming(ctx, room, now, limit)
		if err != nil {
			return "", fmt.Errorf("failed to get the upcoming events of room %d: %w", room, err)
		}

		for _, event := range upcoming {
			content.event(event.Name, timezone.Strftime(event.Begins, settings.TimeFormat))
		}
	}

	return page(title, timezone.Strftime(now, settings.TimeFormat), content.String()), nil
}

func (r *Renderer) allRoomsNow(ctx context.Context, slide Slide, settings settingDto.Settings, now time.Time) (string, error) {
	title := settings.NowMasterText
	if slide.Title != nil {
		title = *slide.Title
	}

	events, err := r.events.InProgress(ctx, now, maxRows(slide, settings))
	if err != nil {
		return "", fmt.Errorf("failed to get the events in progress: %w", err)
	}

	var content rows

	for _, event := range events {
		style := styleRoom
		if utf8.RuneCountInString(event.Name) > longNameThreshold {
			style = styleRoomLong
		}

		content.now(event.Name, event.RoomName, style)
	}

	return page(title, timezone.Strftime(now, settings.TimeFormat), content.String()), nil
}

func maxRows(slide Slide, settings settingDto.Settings) int {
	if slide.MaxRows != nil {
		return *slide.MaxRows
	}

	return settings.MaxRows
}
