// Package config loads the connection descriptor for mpphp/database.
//
// Configuration is read once at startup from a .mpphp-db.yaml file (current
// directory, $HOME, or $HOME/.config/mpphp-db), overlaid with .env files and
// MPPHP_DB_* environment variables, and is read-only afterwards.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/mpphp/database/dialect"
)

// AppFs is the filesystem used for existence checks; tests swap it for an
// in-memory one.
var AppFs = afero.NewOsFs()

// Connection describes one named backend.
type Connection struct {
	Driver             string `mapstructure:"driver"`
	URL                string `mapstructure:"url"` // optional raw DSN, overrides the fields below
	dialect.ConnConfig `mapstructure:",squash"`
}

// Config is the full descriptor: the default backend name plus every
// configured connection.
type Config struct {
	Default     string                `mapstructure:"default"`
	Debug       bool                  `mapstructure:"debug"`
	Connections map[string]Connection `mapstructure:"connections"`
}

// Load reads the descriptor. An explicit path skips the search; an empty
// path searches the usual locations. A missing file is not an error — env
// configuration alone is valid.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(".mpphp-db")
		v.AddConfigPath(".")
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "mpphp-db"))
		_ = v.ReadInConfig()
	}

	v.SetEnvPrefix("MPPHP_DB")
	v.AutomaticEnv()

	// .env overlays, lowest priority first.
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Env keys bypass Unmarshal; read them explicitly.
	if def := v.GetString("default"); def != "" {
		cfg.Default = def
	}
	if v.GetBool("debug") {
		cfg.Debug = true
	}

	// DATABASE_URL points the default connection at a raw DSN.
	if url := os.Getenv("DATABASE_URL"); url != "" && cfg.Default != "" {
		conn := cfg.Connections[cfg.Default]
		if conn.URL == "" {
			conn.URL = url
			if cfg.Connections == nil {
				cfg.Connections = make(map[string]Connection)
			}
			cfg.Connections[cfg.Default] = conn
		}
	}

	return cfg, nil
}

// Connection returns the named connection, or the default one for an empty
// name.
func (c *Config) Connection(name string) (Connection, bool) {
	if name == "" {
		name = c.Default
	}
	conn, ok := c.Connections[name]
	return conn, ok
}
