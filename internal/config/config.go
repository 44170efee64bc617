package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	RocketMQ RocketMQConfig `mapstructure:"rocketmq"`
	Producer ProducerConfig `mapstructure:"producer"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig represents the stats HTTP server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// RocketMQConfig represents broker configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// ProducerConfig represents the CSV publisher configuration
type ProducerConfig struct {
	DataFile     string        `mapstructure:"data_file"`
	Interval     time.Duration `mapstructure:"interval"`
	Loop         bool          `mapstructure:"loop"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
}

// ConsumerConfig represents the aggregating consumer configuration
type ConsumerConfig struct {
	RenderPath           string        `mapstructure:"render_path"`
	RenderInterval       time.Duration `mapstructure:"render_interval"`
	ConnectRetryInterval time.Duration `mapstructure:"connect_retry_interval"`
}

// DatabaseConfig represents storage configuration
type DatabaseConfig struct {
	SQLite SQLiteConfig `mapstructure:"sqlite"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// SQLiteConfig represents the local visit archive configuration
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig represents the optional live counter mirror configuration.
// The mirror is disabled when Addr is empty.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ErrNameServerRequired is returned when rocketmq.nameserver is not set
var ErrNameServerRequired = errors.New("rocketmq.nameserver is required")

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)

	if cfg.RocketMQ.NameServer == "" {
		return nil, ErrNameServerRequired
	}

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8081)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("rocketmq.topic", "course_visits")
	v.SetDefault("rocketmq.group", "coursetally_consumer_group")
	v.SetDefault("producer.data_file", "data/course_visits.csv")
	v.SetDefault("producer.interval", "1s")
	v.SetDefault("producer.loop", false)
	v.SetDefault("producer.max_retries", 5)
	v.SetDefault("producer.retry_backoff", "500ms")
	v.SetDefault("consumer.render_path", "charts/attendance.png")
	v.SetDefault("consumer.render_interval", "30s")
	v.SetDefault("consumer.connect_retry_interval", "5s")
	v.SetDefault("database.sqlite.path", "data/visits.db")
}

// expandEnv expands environment variables in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return viper.GetString(envKey)
	}
	return s
}
