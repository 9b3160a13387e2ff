package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full process configuration. Server-side and client-side
// commands read the parts they need.
type Config struct {
	Host        string
	Port        string
	StaticDir   string
	CORSOrigins []string

	Database Database
	Log      Log
	Client   Client
}

// Database describes how to reach the backing store.
type Database struct {
	Driver     string // postgres or sqlite
	URL        string // DATABASE_URL, takes precedence over the discrete fields
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Log struct {
	Level  string
	Format string
}

// Client configures the storefront terminal client.
type Client struct {
	APIBaseURL  string
	StatePath   string
	HTTPTimeout time.Duration
}

// Load reads an optional .env file and then the environment. A missing .env
// file is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		Host:        GetEnv("HOST", ""),
		Port:        GetEnv("PORT", "8080"),
		StaticDir:   GetEnv("STATIC_DIR", "./public"),
		CORSOrigins: splitList(GetEnv("CORS_ORIGINS", "*")),
		Database: Database{
			Driver:          strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
			URL:             GetEnv("DATABASE_URL", ""),
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 5432),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", ""),
			Name:            GetEnv("DB_NAME", "shampoo"),
			SSLMode:         GetEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      GetEnv("SQLITE_PATH", "storefront.db"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Log: Log{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Format: GetEnv("LOG_FORMAT", "json"),
		},
		Client: Client{
			APIBaseURL:  GetEnv("STOREFRONT_API", "http://localhost:8080"),
			StatePath:   GetEnv("STOREFRONT_STATE", defaultStatePath()),
			HTTPTimeout: getDuration("HTTP_TIMEOUT", 10*time.Second),
		},
	}
}

// Addr is the listen address of the catalog server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Validate checks the values that would otherwise fail late.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port number '%s': must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port number %d is out of range: must be between 1 and 65535", port)
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q: must be postgres or sqlite", c.Database.Driver)
	}
	return nil
}

// DSN returns the postgres connection string.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(GetEnv(key, "")); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(GetEnv(key, "")); err == nil && d > 0 {
		return d
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "storefront-client.db"
	}
	return dir + string(os.PathSeparator) + "shampoo-storefront" + string(os.PathSeparator) + "client.db"
}
