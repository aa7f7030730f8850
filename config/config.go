package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	OwnershipReassign = "reassign"
	OwnershipKeep     = "keep"
)

// Config is read from the process environment at startup.
type Config struct {
	DBName         string        `env:"MONGO_DBNAME,required,notEmpty"`
	MongoURI       string        `env:"MONGO_URI,required,notEmpty"`
	SecretKey      string        `env:"SECRET_KEY,required,notEmpty"`
	Host           string        `env:"IP,required,notEmpty"`
	Port           int           `env:"PORT,required,notEmpty"`
	RedisAddr      string        `env:"REDIS_ADD"`
	RedisPassword  string        `env:"REDIS_PASS"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	StrictListings bool          `env:"STRICT_LISTINGS" envDefault:"false"`
	EditOwnership  string        `env:"EDIT_OWNERSHIP" envDefault:"reassign"`
	SecureCookies  bool          `env:"SECURE_COOKIES" envDefault:"false"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}
}

// Load reads an optional .env file and then the environment. Any missing
// required variable is an error.
func Load() (Config, error) {
	loadEnv()
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}
	switch cfg.EditOwnership {
	case OwnershipReassign, OwnershipKeep:
	default:
		return Config{}, fmt.Errorf("EDIT_OWNERSHIP must be %q or %q, got %q", OwnershipReassign, OwnershipKeep, cfg.EditOwnership)
	}
	return cfg, nil
}
