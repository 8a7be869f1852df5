package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
)

// Drivers de armazenamento aceitos em STORAGE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config armazena todas as configurações do serviço goinventory.
type Config struct {
	// Geral
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Armazenamento
	StorageDriver  string        `envconfig:"STORAGE_DRIVER" default:"sqlite"`
	StorageDSN     string        `envconfig:"STORAGE_DSN" default:"inventory.db"`
	StorageTimeout time.Duration `envconfig:"STORAGE_TIMEOUT" default:"5s"`
	MigrationsDir  string        `envconfig:"MIGRATIONS_DIR"` // vazio: migrações embutidas

	// Redis (vazio desativa cache e rate limit)
	RedisAddr      string `envconfig:"REDIS_ADDR"`
	RedisKeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"goinventory:"`

	// Rate Limiting
	RateLimitMaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"100"`
	RateLimitPeriod      time.Duration `envconfig:"RATE_LIMIT_PERIOD" default:"1m"`

	// Idioma da ordenação por nome
	Locale string `envconfig:"INVENTORY_LOCALE" default:"es"`
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente
// e valida o resultado.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("erro de configuração: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate verifica combinações que o envconfig não consegue expressar.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverSQLite, DriverPostgres, DriverMemory:
	case DriverRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("erro de configuração: STORAGE_DRIVER=redis exige REDIS_ADDR")
		}
	default:
		return fmt.Errorf("erro de configuração: STORAGE_DRIVER desconhecido %q", c.StorageDriver)
	}
	if (c.StorageDriver == DriverSQLite || c.StorageDriver == DriverPostgres) && strings.TrimSpace(c.StorageDSN) == "" {
		return fmt.Errorf("erro de configuração: STORAGE_DSN é obrigatório para %s", c.StorageDriver)
	}
	if c.StorageTimeout <= 0 {
		return fmt.Errorf("erro de configuração: STORAGE_TIMEOUT deve ser positivo")
	}
	if c.RateLimitMaxRequests <= 0 || c.RateLimitPeriod <= 0 {
		return fmt.Errorf("erro de configuração: rate limit deve ter limite e período positivos")
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("erro de configuração: INVENTORY_LOCALE inválido %q: %w", c.Locale, err)
	}
	return nil
}

// IsProduction informa se o serviço roda em produção.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LocaleTag devolve o idioma já validado.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Spanish
	}
	return tag
}
