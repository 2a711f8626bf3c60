package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"infopage/infras/otel"
	"infopage/infras/postgres"
	"infopage/internal/domains/setting/model"
	gDto "infopage/shared/dto"
	gRepo "infopage/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Setting interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Setting, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Setting) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Setting]
}

func New(db *postgres.Connection, otel otel.Otel) Setting {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Setting](model.EntityName, model.TableName, model.FieldKey, db, otel),
	}
}
