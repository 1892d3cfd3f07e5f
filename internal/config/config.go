package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tennispark/TP-AdminService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Demo    DemoConfig    `toml:"demo"`
	Club    ClubConfig    `toml:"club"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DemoConfig настройки демо-данных
type DemoConfig struct {
	Enabled bool `toml:"enabled"`
}

// ClubConfig статическая конфигурация клуба: список кортов
type ClubConfig struct {
	Name   string        `toml:"name"`
	Courts []CourtConfig `toml:"courts"`
}

// CourtConfig описание одного корта
type CourtConfig struct {
	ID        int64  `toml:"id"`
	Name      string `toml:"name"`
	Surface   string `toml:"surface"`
	BasePrice int    `toml:"base_price"` // rubles per 30 minutes
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}

	if len(c.Club.Courts) == 0 {
		return fmt.Errorf("club.courts must not be empty")
	}

	for _, court := range c.Club.Courts {
		if court.ID <= 0 {
			return fmt.Errorf("club.courts: court id must be positive")
		}
		if court.BasePrice <= 0 {
			return fmt.Errorf("club.courts: base_price must be positive for court id=%d", court.ID)
		}
		if !domain.SurfaceType(court.Surface).IsValid() {
			return fmt.Errorf("club.courts: unknown surface %q for court id=%d", court.Surface, court.ID)
		}
	}

	return nil
}

// DomainCourts конвертирует конфигурацию кортов в доменные сущности
func (c *ClubConfig) DomainCourts() []*domain.Court {
	courts := make([]*domain.Court, 0, len(c.Courts))
	for _, court := range c.Courts {
		courts = append(courts, &domain.Court{
			ID:        court.ID,
			Name:      court.Name,
			Surface:   domain.SurfaceType(court.Surface),
			BasePrice: court.BasePrice,
		})
	}
	return courts
}
