package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"infopage/config"
	"infopage/infras/postgres"
	"infopage/shared/failure"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	conn := postgres.NewWithDB(sqlx.NewDb(mockDB, "postgres"))
	t.Cleanup(func() { _ = conn.Close() })

	return conn, mock
}

func TestExecute(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		work     func(tx *sqlx.Tx) error
		expected error
	}{
		{
			name: "commits on success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM events").WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectCommit()
			},
			work: func(tx *sqlx.Tx) error {
				_, err := tx.Exec("DELETE FROM events")

				return err
			},
		},
		{
			name: "rolls back on error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			work: func(_ *sqlx.Tx) error {
				return errBoom
			},
			expected: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			err := conn.Execute(context.Background(), tt.work)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestExecuteRollsBackOnPanic(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "bad", func() {
		_ = conn.Execute(context.Background(), func(_ *sqlx.Tx) error {
			panic("bad")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionLifecycle(t *testing.T) {
	conn, mock := newMockConnection(t)

	err := conn.Connect(context.Background())
	assert.ErrorIs(t, err, failure.AlreadyConnectedError)
	assert.NoError(t, conn.Ping(context.Background()))

	mock.ExpectClose()
	assert.NoError(t, conn.Close())
	assert.NoError(t, conn.Close())

	_, err = conn.DB()
	assert.ErrorIs(t, err, failure.ConnectionError)
	assert.ErrorIs(t, conn.Ping(context.Background()), failure.ConnectionError)

	err = conn.Execute(context.Background(), func(_ *sqlx.Tx) error { return nil })
	assert.ErrorIs(t, err, failure.ConnectionError)
}

func TestConnectFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Set(config.KeyDBHost, "127.0.0.1")
	cfg.Set(config.KeyDBPort, "1")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := postgres.New(cfg)

	err := conn.Connect(ctx)
	assert.ErrorIs(t, err, failure.ConnectionError)
	assert.NoError(t, conn.Close())
}

func TestDescriptor(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "user='infopage' dbname='infopage' port='5432' sslmode='disable'", postgres.Descriptor(cfg))

	cfg.Set(config.KeyDBPassword, `it's`)
	cfg.Set(config.KeyDBHost, "db")
	assert.Equal(t,
		`user='infopage' dbname='infopage' password='it\'s' host='db' port='5432' sslmode='disable'`,
		postgres.Descriptor(cfg),
	)
}
