// Package config provides configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Transform   TransformConfig   `mapstructure:"transform"`
	Transport   TransportConfig   `mapstructure:"transport"`
	Mediation   MediationConfig   `mapstructure:"mediation"`
	Maintenance MaintenanceConfig `mapstructure:"maintenance"`
	Middleware  MiddlewareConfig  `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	// PublicURL is the externally visible base URL the provider calls the
	// webhooks on; it is part of the signed payload.
	PublicURL string `mapstructure:"public_url"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// TransformConfig configures the external content-transform service.
type TransformConfig struct {
	URL            string               `mapstructure:"url"`
	AuthKey        string               `mapstructure:"auth_key"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// TransportConfig configures the SMS provider client.
type TransportConfig struct {
	APIURL         string               `mapstructure:"api_url"`
	AccountSID     string               `mapstructure:"account_sid"`
	AuthToken      string               `mapstructure:"auth_token"`
	FromNumber     string               `mapstructure:"from_number"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// MediationConfig holds limits applied by the conversation resolver.
type MediationConfig struct {
	MaxMessageLength int `mapstructure:"max_message_length"`
	DedupeTTLHours   int `mapstructure:"dedupe_ttl_hours"`
}

// MaintenanceConfig drives the background maintenance loop.
type MaintenanceConfig struct {
	IntervalMinutes  int `mapstructure:"interval_minutes"`
	RetryBatchSize   int `mapstructure:"retry_batch_size"`
	StaleIntentHours int `mapstructure:"stale_intent_hours"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("transform.timeout", 30)
	viper.SetDefault("transform.circuit_breaker.max_requests", 3)
	viper.SetDefault("transform.circuit_breaker.interval", 60)
	viper.SetDefault("transform.circuit_breaker.timeout", 60)
	viper.SetDefault("transform.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("transform.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("transport.timeout", 15)
	viper.SetDefault("transport.circuit_breaker.max_requests", 3)
	viper.SetDefault("transport.circuit_breaker.interval", 60)
	viper.SetDefault("transport.circuit_breaker.timeout", 60)
	viper.SetDefault("transport.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("transport.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("mediation.max_message_length", 1000)
	viper.SetDefault("mediation.dedupe_ttl_hours", 24)
	viper.SetDefault("maintenance.interval_minutes", 5)
	viper.SetDefault("maintenance.retry_batch_size", 20)
	viper.SetDefault("maintenance.stale_intent_hours", 48)
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
