package repository_test

import (
	"context"
	"testing"

	"infopage/infras/otel/mocks"
	"infopage/infras/postgres"
	"infopage/internal/domains/room/model"
	"infopage/internal/domains/room/repository"
	"infopage/shared"
	gDto "infopage/shared/dto"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (repository.Room, *postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	conn := postgres.NewWithDB(sqlx.NewDb(mockDB, "postgres"))
	t.Cleanup(func() { _ = conn.Close() })

	return repository.New(conn, mocks.NewOtel()), conn, mock
}

func TestGetAllOrderedByID(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectPrepare(`^SELECT rooms\.id, rooms\.name FROM rooms\s+ORDER BY id ASC$`).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Hall A").AddRow(9, "Hall B"))

	rooms, err := repo.GetAll(context.Background(),
		gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, []model.Room{{ID: 7, Name: "Hall A"}, {ID: 9, Name: "Hall B"}}, rooms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindTxByID(t *testing.T) {
	repo, conn, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(`^SELECT rooms\.id, rooms\.name FROM rooms\s+WHERE \(rooms\.id = \$1\)$`).
		ExpectQuery().
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Hall A"))
	mock.ExpectCommit()

	var (
		room  model.Room
		found bool
	)

	err := conn.Execute(context.Background(), func(tx *sqlx.Tx) (err error) {
		room, found, err = repo.FindTx(context.Background(), tx, shared.FilterByID(int64(7), model.FieldID, model.TableName))

		return err
	})

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Hall A", room.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
