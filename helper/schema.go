package helper

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"infopage/infras/otel"
	"infopage/infras/postgres"
	"infopage/internal/domains/setting/model"
	settingRepo "infopage/internal/domains/setting/repository"
	"infopage/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	ActionCreate   = "create"
	ActionDrop     = "drop"
	ActionDefaults = "defaults"
	// ActionReset drops every table, recreates them and seeds the defaults.
	ActionReset = "reset"
)

var (
	//go:embed sql/create.sql
	createSQL string

	//go:embed sql/drop.sql
	dropSQL string
)

// CreateSchema creates the tables that do not exist yet.
func CreateSchema(ctx context.Context, tx *sqlx.Tx) error {
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}

	return nil
}

// DropAll drops every table, ignoring tables that do not exist.
func DropAll(ctx context.Context, tx *sqlx.Tx) error {
	if _, err := tx.ExecContext(ctx, dropSQL); err != nil {
		return fmt.Errorf("error dropping schema: %w", err)
	}

	return nil
}

// InsertDefaults seeds the settings table. It fails on a table that already
// holds the default keys.
func InsertDefaults(ctx context.Context, tx *sqlx.Tx, settings settingRepo.Setting) error {
	if err := settings.InsertBulkTx(ctx, tx, model.Defaults()); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return fmt.Errorf("default settings are already present, use the reset action to start over: %w", err)
		}

		return fmt.Errorf("error inserting default settings: %w", err)
	}

	return nil
}

// Runner performs a schema action in one transaction.
func Runner(ctx context.Context, conn *postgres.Connection, otl otel.Otel, action string) error {
	settings := settingRepo.New(conn, otl)

	var steps []func(tx *sqlx.Tx) error

	create := func(tx *sqlx.Tx) error { return CreateSchema(ctx, tx) }
	drop := func(tx *sqlx.Tx) error { return DropAll(ctx, tx) }
	defaults := func(tx *sqlx.Tx) error { return InsertDefaults(ctx, tx, settings) }

	switch action {
	case ActionCreate:
		steps = append(steps, create)
	case ActionDrop:
		steps = append(steps, drop)
	case ActionDefaults:
		steps = append(steps, defaults)
	case ActionReset:
		steps = append(steps, drop, create, defaults)
	default:
		return fmt.Errorf("invalid schema action %q, use %q, %q, %q or %q", action, ActionCreate, ActionDrop, ActionDefaults, ActionReset) //nolint:err113
	}

	err := conn.Execute(ctx, func(tx *sqlx.Tx) error {
		for _, step := range steps {
			if err := step(tx); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Str("action", action).Msg("Database schema updated successfully")

	return nil
}
