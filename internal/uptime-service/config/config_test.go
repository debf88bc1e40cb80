package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_USER", "uptime")
	t.Setenv("POSTGRES_PASSWORD", "uptime")
	t.Setenv("POSTGRES_DB", "uptime")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig("missing.env")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Monitor.FailureThreshold)
	assert.Equal(t, 2, cfg.Monitor.MaxRetries)
	assert.Equal(t, time.Second, cfg.Monitor.RetryBackoff)
	assert.Equal(t, 7*time.Second, cfg.Monitor.ProbeTimeout)
	assert.Equal(t, "https://api.mcsrvstat.us/3", cfg.Monitor.RemoteAPIBaseURL)
	assert.Equal(t, 90, cfg.Monitor.RetentionDays)
	assert.Equal(t, 100, cfg.Monitor.ScanWorkers)
	assert.Equal(t, 2*time.Minute, cfg.Monitor.ScanLockTTL)
	assert.Empty(t, cfg.Monitor.ScanCron)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Empty(t, cfg.Redis.Host)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "uptime.check-results", cfg.Kafka.ResultTopic)
	assert.Equal(t, 500*time.Millisecond, cfg.Discord.SendDelay)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FAILURE_THRESHOLD", "3")
	t.Setenv("PROBE_MAX_RETRIES", "1")
	t.Setenv("UPTIME_RETENTION_DAYS", "30")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("SCAN_CRON", "*/5 * * * *")

	cfg, err := LoadConfig("missing.env")

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Monitor.FailureThreshold)
	assert.Equal(t, 1, cfg.Monitor.MaxRetries)
	assert.Equal(t, 30, cfg.Monitor.RetentionDays)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "*/5 * * * *", cfg.Monitor.ScanCron)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POSTGRES_HOST", "")

	_, err := LoadConfig("missing.env")

	assert.Error(t, err)
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FAILURE_THRESHOLD", "0")

	_, err := LoadConfig("missing.env")

	assert.ErrorContains(t, err, "config validation")
}
