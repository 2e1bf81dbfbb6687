// Package config resolves runtime settings. Precedence, lowest first:
// built-in defaults, an optional config file named by CONFIG_FILE, a .env
// file in the working directory, then the process environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/csg33k/employee-register/internal/domain"
)

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	Port        string
	StoreDriver string
	DBPath      string
	RedisAddr   string
	RedisDB     int
	StoreKey    string
	LogLevel    slog.Level
}

// Load reads the configuration. A missing .env file is only logged.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	return FromViper(viper.New())
}

// FromViper applies defaults and the environment to v and decodes it.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORE_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "employees.db")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("STORE_KEY", domain.DefaultStoreKey)
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{
		Port:        v.GetString("PORT"),
		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		DBPath:      v.GetString("DB_PATH"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		RedisDB:     v.GetInt("REDIS_DB"),
		StoreKey:    v.GetString("STORE_KEY"),
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch cfg.StoreDriver {
	case DriverSQLite, DriverRedis, DriverMemory:
	default:
		return nil, fmt.Errorf("STORE_DRIVER %q: want sqlite, redis or memory", cfg.StoreDriver)
	}
	return cfg, nil
}
