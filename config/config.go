// Package config reads the airroute configuration: a YAML file, optionally
// overridden by AIRROUTE_* environment variables (which may come from a
// .env file).
//
// Example config.yaml:
//
//	network:
//	  max-airports: 100
//	  positive-weights: true
//	storage:
//	  backend: flatfile        # or sqlite
//	  path: flight_network.dat
//	log:
//	  level: info
//	  format: line             # line, text or json
//	http:
//	  addr: ":5002"
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/airroute/core"
)

// Storage backends.
const (
	BackendFlatFile = "flatfile"
	BackendSQLite   = "sqlite"
)

// Environment variables that override file values.
const (
	EnvMaxAirports     = "AIRROUTE_MAX_AIRPORTS"
	EnvPositiveWeights = "AIRROUTE_POSITIVE_WEIGHTS"
	EnvBackend         = "AIRROUTE_STORAGE_BACKEND"
	EnvPath            = "AIRROUTE_STORAGE_PATH"
	EnvLogLevel        = "AIRROUTE_LOG_LEVEL"
	EnvLogFormat       = "AIRROUTE_LOG_FORMAT"
	EnvHTTPAddr        = "AIRROUTE_HTTP_ADDR"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the whole airroute configuration.
type Config struct {
	Network Network `yaml:"network"`
	Storage Storage `yaml:"storage"`
	Log     Log     `yaml:"log"`
	HTTP    HTTP    `yaml:"http"`
}

// Network configures the airport table and weight policy.
type Network struct {
	MaxAirports     int  `yaml:"max-airports"`
	PositiveWeights bool `yaml:"positive-weights"`
}

// Storage selects the persistence backend and its path or DSN.
type Storage struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// Log selects the log level and output format.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// HTTP configures the API listener.
type HTTP struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration: 100 airports, flat file
// "flight_network.dat", info-level line logs, HTTP on :5002.
func Default() Config {
	return Config{
		Network: Network{MaxAirports: core.DefaultMaxAirports},
		Storage: Storage{Backend: BackendFlatFile, Path: "flight_network.dat"},
		Log:     Log{Level: "info", Format: "line"},
		HTTP:    HTTP{Addr: ":5002"},
	}
}

// Load reads file on top of Default, then applies environment overrides.
// A missing file (or an empty name) is not an error.
func Load(file string) (Config, error) {
	cfg := Default()
	if file != "" {
		data, err := os.ReadFile(file)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", file, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", file, err)
			}
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// LoadEnvFile loads KEY=VALUE pairs from the given .env files into the
// process environment without overriding variables that are already set.
// Missing files are skipped.
func LoadEnvFile(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: env file %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from lookup (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMaxAirports); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvMaxAirports, v)
		}
		c.Network.MaxAirports = n
	}
	if v, ok := lookup(EnvPositiveWeights); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvPositiveWeights, v)
		}
		c.Network.PositiveWeights = b
	}
	if v, ok := lookup(EnvBackend); ok {
		c.Storage.Backend = v
	}
	if v, ok := lookup(EnvPath); ok {
		c.Storage.Path = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvHTTPAddr); ok {
		c.HTTP.Addr = v
	}

	return nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Network.MaxAirports < 0 {
		return fmt.Errorf("%w: max-airports must be >= 0, got %d", ErrInvalid, c.Network.MaxAirports)
	}
	switch c.Storage.Backend {
	case BackendFlatFile, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalid, c.Storage.Backend)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("%w: storage path is empty", ErrInvalid)
	}

	return nil
}

// NetworkOptions translates the network section into core options.
func (c Config) NetworkOptions() []core.NetworkOption {
	opts := []core.NetworkOption{core.WithMaxAirports(c.Network.MaxAirports)}
	if c.Network.PositiveWeights {
		opts = append(opts, core.WithPositiveWeights())
	}

	return opts
}
