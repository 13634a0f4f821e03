package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Drivers de almacenamiento soportados.
const (
	StoreMongo  = "mongo"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config centraliza la configuración del servidor.
type Config struct {
	HTTPPort           string        `env:"HTTP_PORT" envDefault:"8080"`
	AppEnv             string        `env:"APP_ENV" envDefault:"production"`
	StoreDriver        string        `env:"STORE_DRIVER" envDefault:"mongo"`
	StoreTimeout       time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	DBConnectionString string        `env:"DB_CONNECTION_STRING"`
	DBName             string        `env:"DB_NAME" envDefault:"test"`
	RedisAddr          string        `env:"REDIS_ADDR"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix        string        `env:"REDIS_PREFIX" envDefault:"site:"`
	CORSAllowOrigins   []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	StaticDir          string        `env:"STATIC_DIR"`
	AboutImage         string        `env:"ABOUT_IMAGE" envDefault:"/jennifer.jpg"`
	SMTPHost           string        `env:"SMTP_HOST"`
	SMTPPort           int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser           string        `env:"SMTP_USER"`
	SMTPPass           string        `env:"SMTP_PASS"`
	SMTPFrom           string        `env:"SMTP_FROM"`
	SMTPFromName       string        `env:"SMTP_FROM_NAME"`
	SMTPUseTLS         bool          `env:"SMTP_USE_TLS" envDefault:"false"`
	NotifyEmail        string        `env:"NOTIFY_EMAIL"`
}

// ClientConfig agrupa lo que necesita el cliente de terminal.
type ClientConfig struct {
	ServerHostname string        `env:"SERVER_HOSTNAME" envDefault:"http://localhost:8080"`
	Timeout        time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	return &cfg, nil
}

// LoadClientConfig carga la configuración del cliente desde variables de entorno.
func LoadClientConfig() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	cfg.ServerHostname = strings.TrimRight(strings.TrimSpace(cfg.ServerHostname), "/")
	return &cfg, nil
}

// NotificationsEnabled es true cuando hay SMTP y destinatario configurados.
func (c *Config) NotificationsEnabled() bool {
	return strings.TrimSpace(c.SMTPHost) != "" && strings.TrimSpace(c.NotifyEmail) != ""
}

// IsTest indica si el proceso corre en modo test (sin log de requests).
func (c *Config) IsTest() bool {
	return strings.EqualFold(c.AppEnv, "test")
}

// IsDevelopment indica si se debe usar el logger de desarrollo.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// AllowAllOrigins es true cuando CORS_ALLOW_ORIGINS contiene "*".
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowOrigins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return len(c.CORSAllowOrigins) == 0
}
