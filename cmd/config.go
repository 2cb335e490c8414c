package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"restaurant/internal/adapters/out/postgres"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD"`
	DBName            string        `env:"DB_NAME" envDefault:"restaurant"`
	DBSslMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// RedisAddr enables the menu cache; empty disables it.
	RedisAddr            string        `env:"REDIS_ADDR"`
	MenuCacheTTL         time.Duration `env:"MENU_CACHE_TTL" envDefault:"10m"`
	MenuCacheRefreshSpec string        `env:"MENU_CACHE_REFRESH_SPEC" envDefault:"0 */5 * * * *"`

	PublicBaseURL      string     `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	LogLevel           slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	CORSAllowedOrigins []string   `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoadConfig reads envFile into the process environment, if it exists, and
// parses the environment into a Config. Variables already set take precedence
// over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	return env.ParseAs[Config]()
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Pool returns the connection pool settings.
func (c Config) Pool() postgres.PoolConfig {
	return postgres.PoolConfig{
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}
