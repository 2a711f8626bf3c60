package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"infopage/infras/otel"
	"infopage/infras/postgres"
	"infopage/internal/domains/room/model"
	gDto "infopage/shared/dto"
	gRepo "infopage/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	FindTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, bool, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Room) error
	DeleteAllTx(ctx context.Context, sqltx *sqlx.Tx) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
