package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_LeVariaveisDeAmbiente(t *testing.T) {
	t.Setenv("GRID_START_HOUR", "8")
	t.Setenv("GRID_END_HOUR", "30")
	t.Setenv("CLIENT_TIMEOUT", "5s")
	t.Setenv("BULK_CREATE_MAX_CONCURRENCY", "0")
	t.Setenv("DATABASE_USER", "scheduler")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "db:5432/shifts")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.com,http://b.com")
	t.Setenv("POS_URL", "https://pdv.example.com/api")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Grid.StartHour)
	assert.Equal(t, 30, cfg.Grid.EndHour)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 1, cfg.Shifts.BulkCreateMaxConcurrency)
	assert.Equal(t, "postgres://scheduler:secret@db:5432/shifts", cfg.Database.DSN)
	assert.Equal(t, "0 2 * * 1", cfg.WeekLock.CronSchedule)
	assert.Equal(t, 7, cfg.WeekLock.AfterDays)
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://pdv.example.com/api", cfg.POS.URL)
	assert.Equal(t, 45*time.Second, cfg.POS.Timeout)
	assert.Equal(t, "0 3 * * 0", cfg.SalesImport.CronSchedule)
	assert.False(t, cfg.SalesImport.Enabled)
}
