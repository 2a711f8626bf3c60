package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"infopage/shared/failure"
	"infopage/shared/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	DefaultFile      = "/etc/infopage.conf"
	DefaultDBUser    = "infopage"
	DefaultDBName    = "infopage"
	DefaultDBPort    = "5432"
	DefaultDBSSLMode = "disable"

	envPrefix = "INFOPAGE"
)

// Keys of the JSON config file.
const (
	KeyDBUser     = "dbuser"
	KeyDBName     = "dbname"
	KeyDBPassword = "dbpassword"
	KeyDBHost     = "dbhost"
	KeyDBPort     = "dbport"
	KeyDBSSLMode  = "dbsslmode"
	KeySchedEvent = "schedevent"
	KeySchedKey   = "schedkey"
)

// Config is the merged view of the JSON config file (database and sched.org
// credentials) and the environment (server, cache and tracing settings).
type Config struct {
	DB struct {
		User     string  `json:"dbuser"    validate:"required"`
		Name     string  `json:"dbname"    validate:"required"`
		Password *string `json:"dbpassword"`
		Host     *string `json:"dbhost"`
		Port     string  `json:"dbport"`
		SSLMode  string  `json:"dbsslmode"`
	} `ignored:"true"`

	Sched struct {
		Event string `json:"schedevent"`
		Key   string `json:"schedkey"`
	} `ignored:"true"`

	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			GracePeriodSeconds int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`
			Enable         bool     `envconfig:"ENABLE"`
			MaxAgeSeconds  int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Host     string `envconfig:"HOST"`
			Port     string `envconfig:"PORT"`
			Password string `envconfig:"PASSWORD"`
			DB       int    `envconfig:"DB"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`

	// Extra keeps keys of the config file that infopage itself does not use.
	Extra map[string]json.RawMessage `ignored:"true" json:"-"`
}

type fileConfig struct {
	DBUser     *string         `json:"dbuser"`
	DBName     *string         `json:"dbname"`
	DBPassword json.RawMessage `json:"dbpassword"`
	DBHost     json.RawMessage `json:"dbhost"`
	DBPort     json.RawMessage `json:"dbport"`
	DBSSLMode  *string         `json:"dbsslmode"`
	SchedEvent *string         `json:"schedevent"`
	SchedKey   *string         `json:"schedkey"`
}

var knownKeys = map[string]bool{
	KeyDBUser: true, KeyDBName: true, KeyDBPassword: true, KeyDBHost: true,
	KeyDBPort: true, KeyDBSSLMode: true, KeySchedEvent: true, KeySchedKey: true,
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.DB.User = DefaultDBUser
	cfg.DB.Name = DefaultDBName
	cfg.DB.Port = DefaultDBPort
	cfg.DB.SSLMode = DefaultDBSSLMode
	cfg.Server.Port = "8080"
	cfg.Server.LogLevel = "info"
	cfg.Server.Shutdown.GracePeriodSeconds = 5
	cfg.App.Name = "infopage"
	cfg.Cache.TTL = 60
	cfg.Extra = map[string]json.RawMessage{}

	return cfg
}

// Load merges the JSON file at path onto the defaults and then applies the
// environment overlay. An empty path means DefaultFile, which may be absent;
// an explicit path that does not exist is a ConfigNotFound failure.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if err := cfg.LoadFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			log.Debug().Str("path", path).Msg("Default config file not found, using defaults")
		} else {
			return nil, err
		}
	}

	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile merges the JSON object stored at path into cfg. Keys missing from
// the file keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return failure.NewConfigNotFound(path, err)
		}

		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	return c.merge(data)
}

func (c *Config) merge(data []byte) error {
	var file fileConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if file.DBUser != nil {
		c.DB.User = *file.DBUser
	}

	if file.DBName != nil {
		c.DB.Name = *file.DBName
	}

	if file.DBSSLMode != nil {
		c.DB.SSLMode = *file.DBSSLMode
	}

	if file.SchedEvent != nil {
		c.Sched.Event = *file.SchedEvent
	}

	if file.SchedKey != nil {
		c.Sched.Key = *file.SchedKey
	}

	if _, ok := raw[KeyDBPassword]; ok {
		c.DB.Password = nullableString(file.DBPassword)
	}

	if _, ok := raw[KeyDBHost]; ok {
		c.DB.Host = nullableString(file.DBHost)
	}

	if port := nullableString(file.DBPort); port != nil {
		c.DB.Port = *port
	}

	for key, value := range raw {
		if !knownKeys[key] {
			c.Extra[key] = value
		}
	}

	return nil
}

// nullableString accepts a JSON string, number or null.
func nullableString(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return &str
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		str = num.String()

		return &str
	}

	return nil
}

// LoadEnv loads an optional .env file and overlays INFOPAGE_* variables onto
// the server, cache and tracing settings.
func (c *Config) LoadEnv() error {
	if err := godotenv.Load(".env"); err == nil {
		log.Debug().Msg("Loaded variables from .env file into environment")
	}

	if err := envconfig.Process(envPrefix, c); err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

// Get returns a setting by its config file key. Unknown keys are looked up in
// Extra; null values yield ok == false.
func (c *Config) Get(key string) (string, bool) {
	switch key {
	case KeyDBUser:
		return c.DB.User, true
	case KeyDBName:
		return c.DB.Name, true
	case KeyDBPassword:
		return deref(c.DB.Password)
	case KeyDBHost:
		return deref(c.DB.Host)
	case KeyDBPort:
		return c.DB.Port, true
	case KeyDBSSLMode:
		return c.DB.SSLMode, true
	case KeySchedEvent:
		return c.Sched.Event, c.Sched.Event != ""
	case KeySchedKey:
		return c.Sched.Key, c.Sched.Key != ""
	}

	value := nullableString(c.Extra[key])
	if value == nil {
		return "", false
	}

	return *value, true
}

// Set overrides a setting by its config file key, as the CLI flags do.
func (c *Config) Set(key, value string) {
	switch key {
	case KeyDBUser:
		c.DB.User = value
	case KeyDBName:
		c.DB.Name = value
	case KeyDBPassword:
		c.DB.Password = &value
	case KeyDBHost:
		c.DB.Host = &value
	case KeyDBPort:
		c.DB.Port = value
	case KeyDBSSLMode:
		c.DB.SSLMode = value
	case KeySchedEvent:
		c.Sched.Event = value
	case KeySchedKey:
		c.Sched.Key = value
	default:
		c.Extra[key] = json.RawMessage(strconv.Quote(value))
	}
}

// Validate checks that the database settings needed to connect are present.
func (c *Config) Validate() error {
	return validator.ValidateStruct(&c.DB) //nolint:wrapcheck
}

func deref(value *string) (string, bool) {
	if value == nil {
		return "", false
	}

	return *value, true
}
