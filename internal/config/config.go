// Package config конфигурация сервиса: несекретные настройки читаются из
// config.toml, секреты - из переменных окружения (.env подхватывается
// через godotenv и никогда не попадает в toml-файл).
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Stripe   StripeConfig   `toml:"stripe"`
	Events   EventsConfig   `toml:"events"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL.
// Пароль приходит только из окружения (BCM_DB_PASSWORD).
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`

	Password string `toml:"-"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StripeConfig настройки платёжной платформы.
// Ключи приходят только из окружения.
type StripeConfig struct {
	// PublicAppURL базовый URL приложения для построения success/cancel
	// redirect-адресов (PUBLIC_APP_URL)
	PublicAppURL string `toml:"-"`
	// SecretKey секретный ключ API (STRIPE_SECRET_KEY)
	SecretKey string `toml:"-"`
	// WebhookSecret секрет подписи вебхуков (STRIPE_WEBHOOK_SECRET)
	WebhookSecret string `toml:"-"`
}

// EventsConfig настройки публикации событий в RabbitMQ.
// При Enabled=false сервис работает без брокера.
type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	Exchange string `toml:"exchange"`
	Queue    string `toml:"queue"`

	// URL брокера (AMQP_URL)
	URL string `toml:"-"`
}

// Load читает конфигурацию из toml-файла и окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env опционален - в проде переменные приходят из окружения
	_ = godotenv.Load(".env")

	cfg.Database.Password = os.Getenv("BCM_DB_PASSWORD")
	cfg.Stripe.PublicAppURL = os.Getenv("PUBLIC_APP_URL")
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	cfg.Events.URL = os.Getenv("AMQP_URL")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Stripe.SecretKey == "" {
		return fmt.Errorf("config: STRIPE_SECRET_KEY is required but not set")
	}
	if c.Stripe.WebhookSecret == "" {
		return fmt.Errorf("config: STRIPE_WEBHOOK_SECRET is required but not set")
	}
	if c.Stripe.PublicAppURL == "" {
		return fmt.Errorf("config: PUBLIC_APP_URL is required but not set")
	}
	if c.Events.Enabled && c.Events.URL == "" {
		return fmt.Errorf("config: AMQP_URL is required when events are enabled")
	}
	return nil
}
