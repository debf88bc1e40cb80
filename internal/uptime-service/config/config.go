package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Monitor       MonitorConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
	Discord       DiscordConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type MonitorConfig struct {
	FailureThreshold int           `envconfig:"FAILURE_THRESHOLD" default:"5" validate:"gte=1"`
	MaxRetries       int           `envconfig:"PROBE_MAX_RETRIES" default:"2" validate:"gte=1"`
	RetryBackoff     time.Duration `envconfig:"PROBE_RETRY_BACKOFF" default:"1s"`
	ProbeTimeout     time.Duration `envconfig:"PROBE_TIMEOUT" default:"7s" validate:"gt=0"`
	RemoteAPIBaseURL string        `envconfig:"REMOTE_STATUS_API_URL" default:"https://api.mcsrvstat.us/3"`
	RetentionDays    int           `envconfig:"UPTIME_RETENTION_DAYS" default:"90" validate:"gte=1"`
	ScanWorkers      int           `envconfig:"SCAN_WORKERS" default:"100" validate:"gte=1"`
	ScanLockTTL      time.Duration `envconfig:"SCAN_LOCK_TTL" default:"2m"`
	ScanCron         string        `envconfig:"SCAN_CRON"`
	CronSecret       string        `envconfig:"CRON_SECRET"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

// RedisConfig is optional, an empty host disables the cross-instance scan lock.
type RedisConfig struct {
	Host string `envconfig:"REDIS_HOST"`
	Port int    `envconfig:"REDIS_PORT" default:"6379"`
}

// KafkaConfig is optional, no brokers disables the check-result event stream.
type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS"`
	ResultTopic string   `envconfig:"KAFKA_RESULT_TOPIC" default:"uptime.check-results"`
}

// ElasticsearchConfig is optional, no addresses disables uptime statistics.
type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES"`
}

type DiscordConfig struct {
	BotToken    string        `envconfig:"DISCORD_BOT_TOKEN"`
	GuildID     string        `envconfig:"DISCORD_GUILD_ID"`
	AlertRoleID string        `envconfig:"DISCORD_ALERT_ROLE_ID"`
	SendDelay   time.Duration `envconfig:"DISCORD_SEND_DELAY" default:"500ms"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}
