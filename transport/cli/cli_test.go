package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"infopage/config"
	"infopage/helper"
	"infopage/transport/cli"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "infopage.conf")
	require.NoError(t, os.WriteFile(path, []byte(`{"dbuser": "signage", "dbname": "display"}`), 0o600))

	flags := cli.Flags{Config: path, Database: "override", Host: "db.local"}

	cfg, err := flags.Load()
	require.NoError(t, err)

	assert.Equal(t, "signage", cfg.DB.User)
	assert.Equal(t, "override", cfg.DB.Name)

	host, ok := cfg.Get(config.KeyDBHost)
	assert.True(t, ok)
	assert.Equal(t, "db.local", host)

	_, ok = cfg.Get(config.KeyDBPassword)
	assert.False(t, ok)
}

func TestFlagsLoad_MissingConfig(t *testing.T) {
	flags := cli.Flags{Config: filepath.Join(t.TempDir(), "missing.conf")}

	_, err := flags.Load()
	assert.Error(t, err)
}

func TestSchemaAction(t *testing.T) {
	assert.Equal(t, helper.ActionReset, cli.SchemaAction(true))
	assert.Equal(t, helper.ActionCreate, cli.SchemaAction(false))
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "infopage-sched/"+cli.Version, cli.UserAgent())
}

func TestCommandFlags(t *testing.T) {
	shorthands := map[string]string{
		"config": "f", "database": "d", "user": "u", "host": "r", "password": "p",
		"overwrite": "o", "clear": "c", "list": "l", "slides": "s", "verbose": "v",
	}

	tests := []struct {
		cmd   *cobra.Command
		extra map[string]string
	}{
		{cmd: cli.NewCSVCommand(nil), extra: map[string]string{"input": "i"}},
		{cmd: cli.NewSchedCommand(nil), extra: map[string]string{"event": "e", "key": "k", "schedule": "", "limit": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			for name, short := range shorthands {
				flag := tt.cmd.Flags().Lookup(name)
				require.NotNil(t, flag, name)
				assert.Equal(t, short, flag.Shorthand, name)
			}

			for name, short := range tt.extra {
				flag := tt.cmd.Flags().Lookup(name)
				require.NotNil(t, flag, name)
				assert.Equal(t, short, flag.Shorthand, name)
			}
		})
	}

	schema := cli.NewSchemaCommand(nil)
	assert.Equal(t, "d", schema.Flags().Lookup("drop").Shorthand)
	assert.Nil(t, schema.Flags().Lookup("database"))

	server := cli.NewServerCommand(nil)
	assert.NotNil(t, server.Flags().Lookup("listen"))
}

func TestServerRejectsInvalidListen(t *testing.T) {
	cmd := cli.NewServerCommand(nil)
	cmd.SetArgs([]string{"--listen", "no-port"})
	cmd.SilenceUsage = true

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid listen address")
}

func TestSchedule(t *testing.T) {
	err := cli.Schedule(context.Background(), "not a schedule", func(context.Context) error { return nil })
	assert.ErrorContains(t, err, "invalid schedule")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, cli.Schedule(ctx, "@every 1h", func(context.Context) error { return nil }))
}
