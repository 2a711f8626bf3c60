package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"infopage/infras/otel"
	"infopage/infras/postgres"
	"infopage/internal/domains/event/model"
	"infopage/internal/domains/event/model/dto"
	"infopage/internal/domains/event/repository"
	roomModel "infopage/internal/domains/room/model"
	roomRepo "infopage/internal/domains/room/repository"
	slideRepo "infopage/internal/domains/slide/repository"
	"infopage/shared"
	"infopage/shared/cache"
	"infopage/shared/constant"
	"infopage/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Event interface {
	Update(ctx context.Context, events []dto.ImportEvent) (dto.ImportResult, error)
	Import(ctx context.Context, events []dto.ImportEvent, mode dto.ClearMode) (dto.ImportResult, error)
	Clear(ctx context.Context, all bool) error
}

type serviceImpl struct {
	repo      repository.Event
	roomRepo  roomRepo.Room
	slideRepo slideRepo.Slide
	tx        postgres.Transactor
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Event,
	roomRepo roomRepo.Room,
	slideRepo slideRepo.Slide,
	tx postgres.Transactor,
	cache cache.RedisCache,
	otel otel.Otel,
) Event {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		slideRepo: slideRepo,
		tx:        tx,
		cache:     cache,
		otel:      otel,
	}
}

// Update merges events into the rooms and events tables in input order.
// Events missing from the list are kept; clear the table first for a full
// resync.
func (s *serviceImpl) Update(ctx context.Context, events []dto.ImportEvent) (dto.ImportResult, error) {
	return s.Import(ctx, events, dto.ClearNone)
}

// Import clears the tables selected by mode and merges events, all in one
// transaction. A room conflict rolls the whole import back.
func (s *serviceImpl) Import(ctx context.Context, events []dto.ImportEvent, mode dto.ClearMode) (res dto.ImportResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Import")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"events": len(events),
		"clear":  mode.String(),
	})

	err = s.tx.Execute(ctx, func(tx *sqlx.Tx) error {
		res = dto.ImportResult{}

		if err := s.clear(ctx, tx, mode); err != nil {
			return err
		}

		for _, event := range events {
			if err := s.reconcile(ctx, tx, event, &res); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to import events")

		return dto.ImportResult{}, err //nolint:wrapcheck
	}

	log.Info().Str("clear", mode.String()).Stringer("result", res).Msg("events imported")

	s.invalidate(ctx)

	return res, nil
}

// Clear empties the events table, and the slides and rooms tables when all
// is set.
func (s *serviceImpl) Clear(ctx context.Context, all bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	mode := dto.ClearEvents
	if all {
		mode = dto.ClearAll
	}

	err = s.tx.Execute(ctx, func(tx *sqlx.Tx) error {
		return s.clear(ctx, tx, mode)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to clear tables")

		return err //nolint:wrapcheck
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) clear(ctx context.Context, tx *sqlx.Tx, mode dto.ClearMode) error {
	if mode == dto.ClearNone {
		return nil
	}

	if err := s.repo.DeleteAllTx(ctx, tx); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}

	if mode != dto.ClearAll {
		return nil
	}

	// Slides reference rooms, so they go first.
	if err := s.slideRepo.DeleteAllTx(ctx, tx); err != nil {
		return fmt.Errorf("failed to clear slides: %w", err)
	}

	if err := s.roomRepo.DeleteAllTx(ctx, tx); err != nil {
		return fmt.Errorf("failed to clear rooms: %w", err)
	}

	return nil
}

func (s *serviceImpl) reconcile(ctx context.Context, tx *sqlx.Tx, event dto.ImportEvent, res *dto.ImportResult) error {
	roomID := event.RoomID()

	room, found, err := s.roomRepo.FindTx(ctx, tx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to look up room %d: %w", roomID, err)
	}

	switch {
	case !found:
		if err := s.roomRepo.InsertTx(ctx, tx, event.ToRoom()); err != nil {
			return fmt.Errorf("failed to insert room %d: %w", roomID, err)
		}

		res.RoomsInserted++
	case room.Name != event.Venue:
		return failure.NewRoomConflict(roomID, room.Name, event.Venue) //nolint:wrapcheck
	}

	eventID := event.StorageID()
	filter := shared.FilterByID(eventID, model.FieldID, model.TableName)

	_, found, err = s.repo.FindTx(ctx, tx, filter, model.FieldID)
	if err != nil {
		return fmt.Errorf("failed to look up event %d: %w", eventID, err)
	}

	switch {
	case !found && event.Active:
		err = s.repo.InsertTx(ctx, tx, event.ToModel())
		res.EventsInserted++
	case !found:
		res.EventsSkipped++
	case event.Active:
		err = s.repo.UpdateTx(ctx, tx, event.ToUpdate(), filter)
		res.EventsUpdated++
	default:
		err = s.repo.DeleteTx(ctx, tx, filter)
		res.EventsDeleted++
	}

	if err != nil {
		return fmt.Errorf("failed to store event %d: %w", eventID, err)
	}

	log.Debug().Int64("id", eventID).Int64("room", roomID).Bool("active", event.Active).Str("name", event.Name).Msg("event reconciled")

	return nil
}

// invalidate drops cached pages that may show the changed rows.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixSlide)
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixRoom)
}
