// Package config loads the server configuration.
//
// Values are layered with koanf, lowest priority first:
//
//  1. struct defaults (defaultConfig)
//  2. an optional YAML file (CONFIG_PATH, or config.yaml in the working directory)
//  3. environment variables (PORT, STORE_BACKEND, JWT_SECRET, ...)
//
// Only the environment variables listed in envMappings are read.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMongo  = "mongo"
)

// Config is the complete server configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	API     APIConfig     `koanf:"api"`
	Store   StoreConfig   `koanf:"store"`
	Auth    AuthConfig    `koanf:"auth"`
	Logging LoggingConfig `koanf:"logging"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type APIConfig struct {
	// Prefix is prepended to every API route. Empty mounts them at the root.
	Prefix string `koanf:"prefix"`

	// StrictStatus maps domain failures to 404/409/400 instead of the
	// legacy 401/501 codes.
	StrictStatus bool `koanf:"strict_status"`

	CORSOrigins []string `koanf:"cors_origins"`
}

type StoreConfig struct {
	Backend       string `koanf:"backend"`
	SQLitePath    string `koanf:"sqlite_path"`
	BadgerPath    string `koanf:"badger_path"` // empty runs badger in memory
	MongoURI      string `koanf:"mongo_uri"`
	MongoDatabase string `koanf:"mongo_database"`
}

type AuthConfig struct {
	// JWTSecret signs session tokens. When empty a random secret is generated
	// at startup and tokens do not survive a restart.
	JWTSecret     string        `koanf:"jwt_secret"`
	Issuer        string        `koanf:"issuer"`
	TokenDuration time.Duration `koanf:"token_duration"`
	BcryptCost    int           `koanf:"bcrypt_cost"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // text (tint) or json
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "",
			Port:            3000,
			ReadTimeout:     15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		API: APIConfig{
			Prefix:       "/api",
			StrictStatus: false,
			CORSOrigins:  []string{"*"},
		},
		Store: StoreConfig{
			Backend:       BackendSQLite,
			SQLitePath:    "./data/restapis.db",
			BadgerPath:    "./data/badger",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "restapis",
		},
		Auth: AuthConfig{
			Issuer:        "restapis",
			TokenDuration: 24 * time.Hour,
			BcryptCost:    10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}

	if c.API.Prefix != "" && (!strings.HasPrefix(c.API.Prefix, "/") || strings.HasSuffix(c.API.Prefix, "/")) {
		errs = append(errs, fmt.Errorf("api.prefix must start and not end with '/', got %q", c.API.Prefix))
	}

	switch c.Store.Backend {
	case BackendSQLite:
		if c.Store.SQLitePath == "" {
			errs = append(errs, errors.New("store.sqlite_path is required for the sqlite backend"))
		}
	case BackendBadger:
	case BackendMongo:
		if c.Store.MongoURI == "" || c.Store.MongoDatabase == "" {
			errs = append(errs, errors.New("store.mongo_uri and store.mongo_database are required for the mongo backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.backend must be one of sqlite, badger, mongo, got %q", c.Store.Backend))
	}

	if c.Auth.TokenDuration <= 0 {
		errs = append(errs, errors.New("auth.token_duration must be positive"))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be between 4 and 31, got %d", c.Auth.BcryptCost))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}
