package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"catalog"`
	ServerPort  int    `env:"SERVER_PORT"  envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`

	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	JWTSecret     string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL      time.Duration `env:"TOKEN_TTL"       envDefault:"1h"`
	BcryptCost    int           `env:"BCRYPT_COST"     envDefault:"10"`
	AuthRateLimit float64       `env:"AUTH_RATE_LIMIT" envDefault:"5"`

	KafkaBrokers      []string `env:"KAFKA_BROKERS"       envSeparator:","`
	KafkaProductTopic string   `env:"KAFKA_PRODUCT_TOPIC" envDefault:"product_events"`

	ESURL      string `env:"ES_URL"`
	ESUser     string `env:"ES_USER"`
	ESPassword string `env:"ES_PASSWORD"`
	ESIndex    string `env:"ES_INDEX" envDefault:"products"`
}

func (c Config) Addr() string { return fmt.Sprintf(":%d", c.ServerPort) }

func (c Config) KafkaEnabled() bool { return len(c.KafkaBrokers) > 0 }

func (c Config) SearchIndexEnabled() bool { return c.ESURL != "" }

// MigrateConfig is all the migration runner needs.
type MigrateConfig struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
}

// Load reads the optional .env files and then the process environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	cfg, err := parse[Config](files)
	if err != nil {
		return nil, err
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.AuthRateLimit <= 0 {
		return nil, fmt.Errorf("AUTH_RATE_LIMIT must be positive, got %v", cfg.AuthRateLimit)
	}
	return cfg, nil
}

func LoadMigrate(files ...string) (*MigrateConfig, error) {
	return parse[MigrateConfig](files)
}

func parse[T any](files []string) (*T, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("could not load env file", "file", f, "error", err)
		}
	}

	cfg := new(T)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
