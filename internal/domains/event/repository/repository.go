package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"infopage/infras/otel"
	"infopage/infras/postgres"
	"infopage/internal/domains/event/model"
	gDto "infopage/shared/dto"
	gRepo "infopage/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Event interface {
	FindTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Event, bool, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Event) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	DeleteAllTx(ctx context.Context, sqltx *sqlx.Tx) error
	Upcoming(ctx context.Context, room int64, from time.Time, limit int) ([]model.EventWithRoom, error)
	Current(ctx context.Context, room int64, at time.Time) (model.EventWithRoom, bool, error)
	InProgress(ctx context.Context, at time.Time, limit int) ([]model.EventWithRoom, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Event]

	withRoom gRepo.Repository[model.EventWithRoom]
}

func New(db *postgres.Connection, otel otel.Otel) Event {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Event](model.EntityName, model.TableName, model.FieldID, db, otel),
		withRoom:   gRepo.NewRepository[model.EventWithRoom](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Upcoming returns the events of room that begin at or after from.
func (r *repositoryImpl) Upcoming(ctx context.Context, room int64, from time.Time, limit int) ([]model.EventWithRoom, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []gDto.Filter{
			roomFilter(room),
			{ArgName: "from", Table: model.TableName, Field: model.FieldBegins, Value: from, Operator: gDto.FilterOperatorGreaterEq},
		},
	}

	return r.list(ctx, filter, limit)
}

// Current returns the event of room in progress at the given time.
func (r *repositoryImpl) Current(ctx context.Context, room int64, at time.Time) (model.EventWithRoom, bool, error) {
	filter := inProgress(at)
	filter.Filters = append(filter.Filters, roomFilter(room))

	events, err := r.list(ctx, filter, 1)
	if err != nil || len(events) == 0 {
		return model.EventWithRoom{}, false, err
	}

	return events[0], true, nil
}

// InProgress returns the events of every room in progress at the given time.
func (r *repositoryImpl) InProgress(ctx context.Context, at time.Time, limit int) ([]model.EventWithRoom, error) {
	return r.list(ctx, inProgress(at), limit)
}

// list returns at most limit events ordered by start; a limit below one
// yields nothing.
func (r *repositoryImpl) list(ctx context.Context, filter gDto.FilterGroup, limit int) ([]model.EventWithRoom, error) {
	if limit < 1 {
		return nil, nil
	}

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.TableName + "." + model.FieldBegins,
		SortDir: gDto.SortDirAsc,
	}

	events, err := r.withRoom.GetAll(ctx, params, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	for i := range events {
		events[i] = events[i].InAppTime()
	}

	return events, nil
}

func roomFilter(room int64) gDto.Filter {
	return gDto.Filter{Table: model.TableName, Field: model.FieldRoom, Value: room, Operator: gDto.FilterOperatorEq}
}

func inProgress(at time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []gDto.Filter{
			{ArgName: "started", Table: model.TableName, Field: model.FieldBegins, Value: at, Operator: gDto.FilterOperatorLessEq},
			{ArgName: "ending", Table: model.TableName, Field: model.FieldEnds, Value: at, Operator: gDto.FilterOperatorGreaterEq},
		},
	}
}
