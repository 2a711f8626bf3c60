package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"infopage/config"
	"infopage/shared/failure"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	postgresMaxIdleConnection = 4
	postgresMaxOpenConnection = 4
)

var errRollback = errors.New("rollback failed")

// Transactor runs a unit of work inside one transaction.
type Transactor interface {
	Execute(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// Connection owns the single database handle of a process. It starts
// unconnected; Connect opens it and Close releases it.
type Connection struct {
	config *config.Config

	mu sync.RWMutex
	db *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{config: config}
}

// NewWithDB wraps an already opened handle.
func NewWithDB(db *sqlx.DB) *Connection {
	return &Connection{db: db}
}

// Connect opens the database described by the config. A second Connect while
// the first handle is open fails with an AlreadyConnected failure.
func (c *Connection) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return failure.AlreadyConnected() //nolint:wrapcheck
	}

	db, err := sqlx.ConnectContext(ctx, driverName, Descriptor(c.config))
	if err != nil {
		log.
			Error().
			Err(err).
			Str("user", c.config.DB.User).
			Str("dbName", c.config.DB.Name).
			Msg("Failed connecting to database")

		return failure.NewConnectionError(err) //nolint:wrapcheck
	}

	db.SetMaxIdleConns(postgresMaxIdleConnection)
	db.SetMaxOpenConns(postgresMaxOpenConnection)

	log.
		Debug().
		Str("user", c.config.DB.User).
		Str("dbName", c.config.DB.Name).
		Msg("Connected to database")

	c.db = db

	return nil
}

// DB returns the open handle or a ConnectionError failure.
func (c *Connection) DB() (*sqlx.DB, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return nil, failure.NewConnectionError(errors.New("not connected")) //nolint:wrapcheck
	}

	return c.db, nil
}

// Ping checks that the database still answers.
func (c *Connection) Ping(ctx context.Context) error {
	db, err := c.DB()
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		return failure.NewConnectionError(err) //nolint:wrapcheck
	}

	return nil
}

// Close releases the handle. Closing a closed connection is a no-op.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil

	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Execute runs fn inside one transaction. It commits when fn returns nil and
// rolls back when fn returns an error or panics; the panic is re-raised.
func (c *Connection) Execute(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	db, err := c.DB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")

			return errors.Join(err, fmt.Errorf("%w: %w", errRollback, rbErr))
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Descriptor builds a lib/pq key/value connection string. Null password and
// host settings are left out so that the driver defaults apply.
func Descriptor(config *config.Config) string {
	parts := []string{
		"user=" + quote(config.DB.User),
		"dbname=" + quote(config.DB.Name),
	}

	if config.DB.Password != nil {
		parts = append(parts, "password="+quote(*config.DB.Password))
	}

	if config.DB.Host != nil {
		parts = append(parts, "host="+quote(*config.DB.Host))
	}

	if config.DB.Port != "" {
		parts = append(parts, "port="+quote(config.DB.Port))
	}

	if config.DB.SSLMode != "" {
		parts = append(parts, "sslmode="+quote(config.DB.SSLMode))
	}

	return strings.Join(parts, " ")
}

func quote(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)

	return "'" + escaped + "'"
}
