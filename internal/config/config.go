package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	JobQueue JobQueueConfig
	Store    StoreConfig
	Sync     SyncConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type WorkerConfig struct {
	PoolSize           int
	AttachmentPoolSize int
	MaxRetries         int
	RetryBaseDelay     time.Duration
}

type LoggingConfig struct {
	Level string
}

type JobQueueConfig struct {
	ChannelBufferSize int
}

type StoreConfig struct {
	Driver      string
	DatabaseURL string
	BlobRoot    string
}

type SyncConfig struct {
	Interval           time.Duration
	TeamSpacing        time.Duration
	ExportBatchSize    int
	ProviderLimitsFile string
	// SandboxTeamID, when set, connects that team to the sandbox provider at startup.
	SandboxTeamID string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Worker: WorkerConfig{
			PoolSize:           getIntEnv("WORKER_POOL_SIZE", 4),
			AttachmentPoolSize: getIntEnv("ATTACHMENT_WORKER_POOL_SIZE", 10),
			MaxRetries:         getIntEnv("MAX_RETRIES", 5),
			RetryBaseDelay:     getDurationEnv("RETRY_BASE_DELAY", time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		JobQueue: JobQueueConfig{
			ChannelBufferSize: getIntEnv("JOB_CHANNEL_BUFFER_SIZE", 1000),
		},
		Store: StoreConfig{
			Driver:      getEnv("STORE_DRIVER", StoreDriverMemory),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			BlobRoot:    getEnv("BLOB_ROOT", "./data/vault"),
		},
		Sync: SyncConfig{
			Interval:           getDurationEnv("SYNC_INTERVAL", 12*time.Hour),
			TeamSpacing:        getDurationEnv("SYNC_TEAM_SPACING", time.Second),
			ExportBatchSize:    getIntEnv("EXPORT_BATCH_SIZE", 50),
			ProviderLimitsFile: getEnv("PROVIDER_LIMITS_FILE", ""),
			SandboxTeamID:      getEnv("SANDBOX_TEAM_ID", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
