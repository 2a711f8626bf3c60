package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"infopage/infras/otel"
	"infopage/infras/postgres"
	"infopage/internal/domains/slide/model"
	gDto "infopage/shared/dto"
	gRepo "infopage/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Slide interface {
	CountVisible(ctx context.Context) (int, error)
	FindBySequence(ctx context.Context, sequenceNo int64) (model.Slide, bool, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Slide) error
	DeleteAllTx(ctx context.Context, sqltx *sqlx.Tx) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Slide]
}

func New(db *postgres.Connection, otel otel.Otel) Slide {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Slide](model.EntityName, model.TableName, model.FieldSequenceNo, db, otel),
	}
}

// CountVisible counts the slides with a sequence number.
func (r *repositoryImpl) CountVisible(ctx context.Context) (int, error) {
	return r.Count(ctx, gDto.FilterGroup{ //nolint:wrapcheck
		Filters: []gDto.Filter{
			{Table: model.TableName, Field: model.FieldSequenceNo, Operator: gDto.FilterIsNotNull},
		},
	})
}

func (r *repositoryImpl) FindBySequence(ctx context.Context, sequenceNo int64) (model.Slide, bool, error) {
	return r.Find(ctx, gDto.FilterGroup{ //nolint:wrapcheck
		Filters: []gDto.Filter{
			{Table: model.TableName, Field: model.FieldSequenceNo, Value: sequenceNo, Operator: gDto.FilterOperatorEq},
		},
	})
}
