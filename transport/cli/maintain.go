package cli

import (
	"context"
	"fmt"
	"io"

	"infopage/internal/domains/event/model/dto"
	eventService "infopage/internal/domains/event/service"
	roomService "infopage/internal/domains/room/service"
	slideDto "infopage/internal/domains/slide/model/dto"
	slideService "infopage/internal/domains/slide/service"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
)

// Services are the domain services the import tools drive.
type Services struct {
	Rooms  roomService.Room
	Slides slideService.Slide
	Events eventService.Event
}

// Source fetches the events of one import run.
type Source func(ctx context.Context) ([]dto.ImportEvent, error)

var (
	okText   = color.New(color.FgGreen).Sprint
	noteText = color.New(color.FgYellow).Sprint
)

// ClearMode maps --overwrite and --clear onto a clear mode; --clear wins.
func (f *Flags) ClearMode() dto.ClearMode {
	switch {
	case f.Clear:
		return dto.ClearAll
	case f.Overwrite:
		return dto.ClearEvents
	default:
		return dto.ClearNone
	}
}

// Maintain runs the action the flags select: list the rooms, store a slide
// order, or clear and import. A nil source only clears.
func Maintain(ctx context.Context, out io.Writer, flags *Flags, services Services, source Source) error {
	switch {
	case flags.List:
		return listRooms(ctx, out, services.Rooms)
	case flags.Slides != "":
		return storeSlides(ctx, out, services.Slides, flags.Slides)
	}

	return importEvents(ctx, out, services.Events, flags.ClearMode(), source)
}

func listRooms(ctx context.Context, out io.Writer, rooms roomService.Room) error {
	res, err := rooms.List(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintln(out, "Rooms:")

	for _, room := range res.Rooms {
		fmt.Fprintln(out, room.String())
	}

	return nil
}

func storeSlides(ctx context.Context, out io.Writer, slides slideService.Slide, order string) error {
	specs, err := slideDto.ParseOrder(order)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err := slides.SetOrder(ctx, specs); err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "%s %d slides stored\n", okText("OK"), len(specs))

	return nil
}

func importEvents(ctx context.Context, out io.Writer, events eventService.Event, mode dto.ClearMode, source Source) error {
	if source == nil {
		if mode == dto.ClearNone {
			fmt.Fprintln(out, noteText("Nothing to do"))

			return nil
		}

		if err := events.Clear(ctx, mode == dto.ClearAll); err != nil {
			return err //nolint:wrapcheck
		}

		fmt.Fprintf(out, "%s cleared (%s)\n", okText("OK"), mode)

		return nil
	}

	incoming, err := source(ctx)
	if err != nil {
		return err
	}

	log.Debug().Int("events", len(incoming)).Msg("events fetched")

	res, err := events.Import(ctx, incoming, mode)
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(out, "%s %s\n", okText("OK"), res)

	return nil
}
