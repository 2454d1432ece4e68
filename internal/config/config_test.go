package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("PG_HOST", "localhost")
	t.Setenv("PG_USER", "quiz")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "flagquiz")
	t.Setenv("REDIS_ADDR", "localhost:6379")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "flag-quiz", cfg.Name)
	assert.Equal(t, 10, cfg.Game.DefaultMaxRounds)
	assert.Equal(t, 4, cfg.Game.DefaultOptionCount)
	assert.Equal(t, 2*time.Hour, cfg.Game.PlanTTL)
	assert.Equal(t, []string{"ATA", "BVT", "HMD", "UMI"}, cfg.Data.ExcludedCodes)
	assert.Equal(t, "host=localhost port=5432 user=quiz password=secret dbname=flagquiz sslmode=disable", cfg.Postgres.DSN())
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("PG_HOST", "")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DEFAULT_OPTION_COUNT", "6")
	t.Setenv("EXCLUDED_COUNTRY_CODES", "ATA")
	t.Setenv("COUNTRIES_FILE", "testdata/countries.json")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Game.DefaultOptionCount)
	assert.Equal(t, []string{"ATA"}, cfg.Data.ExcludedCodes)
	assert.Equal(t, "testdata/countries.json", cfg.Data.CountriesFile)
}

func TestLoadPostgresOnly(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("PG_PORT", "6543")

	pg, err := LoadPostgres()
	require.NoError(t, err)
	assert.Equal(t, 6543, pg.Port)
	assert.Equal(t, "flagquiz", pg.Database)
}
