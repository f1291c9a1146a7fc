package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "STORE_DRIVER", "SYNC_INTERVAL", "EXPORT_BATCH_SIZE", "PROVIDER_LIMITS_FILE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 12*time.Hour, cfg.Sync.Interval)
	assert.Equal(t, 50, cfg.Sync.ExportBatchSize)
	assert.Empty(t, cfg.Sync.ProviderLimitsFile)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/sync")
	t.Setenv("SYNC_INTERVAL", "0s")
	t.Setenv("EXPORT_BATCH_SIZE", "25")
	t.Setenv("JOB_CHANNEL_BUFFER_SIZE", "64")

	cfg := Load()

	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/sync", cfg.Store.DatabaseURL)
	assert.Equal(t, time.Duration(0), cfg.Sync.Interval)
	assert.Equal(t, 25, cfg.Sync.ExportBatchSize)
	assert.Equal(t, 64, cfg.JobQueue.ChannelBufferSize)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_RETRIES", "many")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 5, cfg.Worker.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
}
