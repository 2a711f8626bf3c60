package cli

import (
	"fmt"

	"infopage/config"
	"infopage/shared/logger"
	"infopage/shared/timezone"

	"github.com/spf13/pflag"
)

// Flags are the connection and maintenance options shared by the import
// tools.
type Flags struct {
	Config    string
	Database  string
	User      string
	Host      string
	Password  string
	Overwrite bool
	Clear     bool
	List      bool
	Slides    string
	Verbose   bool
}

func (f *Flags) Register(flags *pflag.FlagSet) {
	f.RegisterConfig(flags)
	f.RegisterDatabase(flags)

	flags.BoolVarP(&f.Overwrite, "overwrite", "o", false, "starts with a fresh event list (rooms and slides will be kept)")
	flags.BoolVarP(&f.Clear, "clear", "c", false, "clears all events, rooms and slides (use this before the first import)")
	flags.BoolVarP(&f.List, "list", "l", false, "lists all rooms")
	flags.StringVarP(&f.Slides, "slides", "s", "", "stores a slide order into the database, separated by a comma, specify -1 for the 'now' slide (use the -l option to list the room numbers)")
}

// RegisterConfig adds the config file and verbosity flags.
func (f *Flags) RegisterConfig(flags *pflag.FlagSet) {
	flags.StringVarP(&f.Config, "config", "f", "", "specifies the configuration file name (default is "+config.DefaultFile+")")
	flags.BoolVarP(&f.Verbose, "verbose", "v", false, "logs debug output")
}

// RegisterDatabase adds the flags overriding the database settings.
func (f *Flags) RegisterDatabase(flags *pflag.FlagSet) {
	flags.StringVarP(&f.Database, "database", "d", "", "specifies the PostgreSQL database name")
	flags.StringVarP(&f.User, "user", "u", "", "specifies the database user name")
	flags.StringVarP(&f.Host, "host", "r", "", "specifies the database host (local if not set)")
	flags.StringVarP(&f.Password, "password", "p", "", "specifies the database password (passwordless login if not set)")
}

// Load reads the config file and applies the flags given on the command line
// on top of it.
func (f *Flags) Load() (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	overrides := map[string]string{
		config.KeyDBName:     f.Database,
		config.KeyDBUser:     f.User,
		config.KeyDBHost:     f.Host,
		config.KeyDBPassword: f.Password,
	}

	for key, value := range overrides {
		if value != "" {
			cfg.Set(key, value)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.SetLogLevel(cfg)

	if f.Verbose {
		logger.Verbose()
	}

	timezone.Init(cfg.App.Timezone)

	return cfg, nil
}
