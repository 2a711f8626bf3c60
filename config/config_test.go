package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"infopage/config"
	"infopage/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "infopage.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	user, ok := cfg.Get(config.KeyDBUser)
	assert.True(t, ok)
	assert.Equal(t, "infopage", user)

	name, _ := cfg.Get(config.KeyDBName)
	assert.Equal(t, "infopage", name)

	_, ok = cfg.Get(config.KeyDBPassword)
	assert.False(t, ok)

	_, ok = cfg.Get(config.KeyDBHost)
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		check    func(t *testing.T, cfg *config.Config)
		hasError bool
	}{
		{
			name:    "overrides individual keys",
			content: `{"dbuser": "signage", "dbpassword": "secret", "schedevent": "conf2024", "schedkey": "k"}`,
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()

				assert.Equal(t, "signage", cfg.DB.User)
				assert.Equal(t, "infopage", cfg.DB.Name)
				require.NotNil(t, cfg.DB.Password)
				assert.Equal(t, "secret", *cfg.DB.Password)
				assert.Nil(t, cfg.DB.Host)
				assert.Equal(t, "conf2024", cfg.Sched.Event)
				assert.Equal(t, "k", cfg.Sched.Key)
			},
		},
		{
			name:    "null host and numeric port",
			content: `{"dbhost": null, "dbport": 5433}`,
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()

				assert.Nil(t, cfg.DB.Host)
				assert.Equal(t, "5433", cfg.DB.Port)
			},
		},
		{
			name:    "unknown keys are kept",
			content: `{"dbname": "x", "color": "blue"}`,
			check: func(t *testing.T, cfg *config.Config) {
				t.Helper()

				value, ok := cfg.Get("color")
				assert.True(t, ok)
				assert.Equal(t, "blue", value)
				assert.Equal(t, "x", cfg.DB.Name)
			},
		},
		{
			name:     "malformed json",
			content:  `{"dbuser":`,
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(writeConfig(t, tt.content))

			if tt.hasError {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.conf"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ConfigNotFoundError))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadEnvOverlay(t *testing.T) {
	t.Setenv("INFOPAGE_SERVER_PORT", "9000")
	t.Setenv("INFOPAGE_CACHE_TTL", "15")
	t.Setenv("INFOPAGE_APP_TIMEZONE", "Europe/Helsinki")

	cfg, err := config.Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Cache.TTL)
	assert.Equal(t, "Europe/Helsinki", cfg.App.Timezone)
	assert.Equal(t, "infopage", cfg.DB.User)
}

func TestSetAndValidate(t *testing.T) {
	cfg := config.Default()

	cfg.Set(config.KeyDBHost, "db.local")
	cfg.Set(config.KeyDBPassword, "pw")
	cfg.Set("extra", "value")

	host, ok := cfg.Get(config.KeyDBHost)
	assert.True(t, ok)
	assert.Equal(t, "db.local", host)

	extra, _ := cfg.Get("extra")
	assert.Equal(t, "value", extra)

	assert.NoError(t, cfg.Validate())

	cfg.Set(config.KeyDBName, "")
	assert.Error(t, cfg.Validate())
}
