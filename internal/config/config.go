package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"flag-quiz"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres Postgres
	Redis    Redis
	Data     Data
	Game     Game
}

// Postgres captures connection info for the settings database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// DSN renders a libpq-style connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Redis holds plan storage configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR,notEmpty"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Data points at the country and flag attribute sources loaded at startup.
// CountriesFile wins over CountriesURL when both are set.
type Data struct {
	CountriesFile  string        `env:"COUNTRIES_FILE"`
	CountriesURL   string        `env:"COUNTRIES_URL" envDefault:"https://restcountries.com/v3.1"`
	FetchTimeout   time.Duration `env:"COUNTRIES_FETCH_TIMEOUT" envDefault:"15s"`
	AttributesFile string        `env:"FLAG_ATTRIBUTES_FILE" envDefault:"data/flag_attributes.json"`
	Locale         string        `env:"DATA_LOCALE" envDefault:"eng"`
	ExcludedCodes  []string      `env:"EXCLUDED_COUNTRY_CODES" envSeparator:"," envDefault:"ATA,BVT,HMD,UMI"`
}

// Game groups gameplay defaults.
type Game struct {
	DefaultMaxRounds      int           `env:"DEFAULT_MAX_ROUNDS" envDefault:"10"`
	DefaultOptionCount    int           `env:"DEFAULT_OPTION_COUNT" envDefault:"4"`
	DefaultHighDifficulty bool          `env:"DEFAULT_HIGH_DIFFICULTY" envDefault:"false"`
	PlanTTL               time.Duration `env:"PLAN_TTL" envDefault:"2h"`
	SimilarCount          int           `env:"SIMILAR_COUNT" envDefault:"5"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: false}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Data.CountriesFile == "" && cfg.Data.CountriesURL == "" {
		return nil, fmt.Errorf("parse config: one of COUNTRIES_FILE or COUNTRIES_URL is required")
	}
	return cfg, nil
}

// LoadPostgres parses only the Postgres section, for tools that need no other config.
func LoadPostgres() (Postgres, error) {
	var pg Postgres
	if err := env.Parse(&pg); err != nil {
		return Postgres{}, fmt.Errorf("parse postgres config: %w", err)
	}
	return pg, nil
}
