package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Unisport UnisportConfig `toml:"unisport"`
	Payment  PaymentConfig  `toml:"payment"`
	Cache    CacheConfig    `toml:"cache"`
	Poll     PollConfig     `toml:"poll"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// UnisportConfig настройки подключения к платформе бронирования
type UnisportConfig struct {
	URL string `toml:"url"`
	// Timeout таймаут запросов в секундах
	Timeout int `toml:"timeout"`
}

// PaymentConfig настройки платежного провайдера Payme
type PaymentConfig struct {
	// CheckoutTimeout таймаут получения checkout URL в секундах
	CheckoutTimeout int `toml:"checkout_timeout"`
}

// CacheConfig настройки кеша доступности
type CacheConfig struct {
	// DailyTTL время жизни дневной доступности в секундах
	DailyTTL int `toml:"daily_ttl"`
	// MatrixTTL время жизни матрицы абонемента в секундах
	MatrixTTL int `toml:"matrix_ttl"`
	// PrefetchDays сколько ближайших дат подогревать при открытии объекта
	PrefetchDays int `toml:"prefetch_days"`
}

// PollConfig настройки опроса статуса оплаты
type PollConfig struct {
	// InitialDelay стартовая задержка между попытками в секундах
	InitialDelay int `toml:"initial_delay"`
	// MaxDelay потолок задержки в секундах
	MaxDelay int `toml:"max_delay"`
	// Multiplier множитель экспоненциального роста задержки
	Multiplier float64 `toml:"multiplier"`
	// MaxAttempts максимум попыток на один запрос статуса
	MaxAttempts int `toml:"max_attempts"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive, got %d", c.Server.HTTPPort)
	}
	if c.Unisport.URL == "" {
		return fmt.Errorf("unisport.url is required")
	}
	if c.Unisport.Timeout <= 0 {
		return fmt.Errorf("unisport.timeout must be positive, got %d", c.Unisport.Timeout)
	}
	if c.Cache.DailyTTL <= 0 || c.Cache.MatrixTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	if c.Poll.MaxAttempts <= 0 {
		return fmt.Errorf("poll.max_attempts must be positive, got %d", c.Poll.MaxAttempts)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}
	return nil
}

// DailyTTLDuration TTL дневной доступности
func (c *CacheConfig) DailyTTLDuration() time.Duration {
	return time.Duration(c.DailyTTL) * time.Second
}

// MatrixTTLDuration TTL матрицы абонемента
func (c *CacheConfig) MatrixTTLDuration() time.Duration {
	return time.Duration(c.MatrixTTL) * time.Second
}
