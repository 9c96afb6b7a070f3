// Package config loads application configuration via Viper
// (environment-first, with an optional config file for local development).
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config groups all application settings.
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	Search SearchConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig holds PostgreSQL settings. If DatabaseURL is non-empty it is used
// as the full connection string; otherwise the DSN is built from parts.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
}

// ConnectionString returns DatabaseURL when set, otherwise the built DSN.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string. url.UserPassword handles
// special characters in the password.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig holds token validation settings.
type JWTConfig struct {
	Secret string
	Issuer string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// SearchConfig tunes the comparison engine.
type SearchConfig struct {
	// GroupLoadWorkers bounds concurrent per-group loads in one search call.
	GroupLoadWorkers int
	// LineWorkers bounds concurrent per-line price comparisons.
	LineWorkers int
	// NameCacheTTLSeconds is the TTL for the name-lookup cache.
	NameCacheTTLSeconds int
}

// Load reads configuration from environment variables and an optional
// config file (CONFIG_FILE).
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("app.env"),
			Name: v.GetString("app.name"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("http.host"),
			Port: v.GetInt("http.port"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("database.url"),
			Host:        v.GetString("db.host"),
			Port:        v.GetInt("db.port"),
			User:        v.GetString("db.user"),
			Password:    v.GetString("db.password"),
			DBName:      v.GetString("db.name"),
			SSLMode:     v.GetString("db.sslmode"),
			MaxConns:    int32(v.GetInt("db.max_conns")),
			MinConns:    int32(v.GetInt("db.min_conns")),
		},
		JWT: JWTConfig{
			Secret: v.GetString("jwt.secret"),
			Issuer: v.GetString("jwt.issuer"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
		Search: SearchConfig{
			GroupLoadWorkers:    v.GetInt("search.group_load_workers"),
			LineWorkers:         v.GetInt("search.line_workers"),
			NameCacheTTLSeconds: v.GetInt("search.name_cache_ttl_seconds"),
		},
	}

	if cfg.App.Env == "production" && cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required in production")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.name", "procompare")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "procompare")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_conns", 25)
	v.SetDefault("db.min_conns", 5)

	v.SetDefault("jwt.issuer", "procompare")

	v.SetDefault("log.level", "info")

	v.SetDefault("search.group_load_workers", 4)
	v.SetDefault("search.line_workers", 8)
	v.SetDefault("search.name_cache_ttl_seconds", 300)
}
