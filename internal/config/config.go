package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Драйверы локального хранилища
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBolt     = "bbolt"
	DriverRedis    = "redis"
)

const (
	defaultEnv          = EnvLocal
	defaultRunAddress   = "localhost:8080"
	defaultLogLevel     = "info"
	defaultDriver       = DriverSQLite
	defaultDataDir      = ".resep-nusantara"
	defaultFavoritesKey = "resep-nusantara-favorites"
	defaultReviewsKey   = "resep-nusantara-reviews"
	defaultProfileKey   = "resep-nusantara-profile"
	defaultCachePrefix  = "cache/"
	defaultRedisPrefix  = "resep:"
	defaultFetchTimeout = 10 * time.Second
)

type Config struct {
	Env     string
	Server  Server
	Storage Storage
	Keys    Keys
	Cache   Cache
	Logger  Logger
}

type Server struct {
	RunAddress      string        `mapstructure:"run_address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Storage struct {
	Driver        string `mapstructure:"storage_driver"`
	DataDir       string `mapstructure:"data_dir"`
	DatabaseURI   string `mapstructure:"database_uri"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	RedisPrefix   string `mapstructure:"redis_prefix"`
	// QuotaBytes ограничивает объем memory-хранилища, 0 - без ограничений
	QuotaBytes int `mapstructure:"storage_quota_bytes"`
}

// Keys - ключи документов в хранилище
type Keys struct {
	Favorites string `mapstructure:"favorites_key"`
	Reviews   string `mapstructure:"reviews_key"`
	Profile   string `mapstructure:"profile_key"`
}

type Cache struct {
	Prefix       string        `mapstructure:"cache_prefix"`
	FetchTimeout time.Duration `mapstructure:"cache_fetch_timeout"`
}

type Logger struct {
	LogLevel string `mapstructure:"log_level"`
}

// SQLitePath путь к файлу базы sqlite
func (s Storage) SQLitePath() string {
	return filepath.Join(s.DataDir, "resep.db")
}

// BoltPath путь к файлу базы bbolt
func (s Storage) BoltPath() string {
	return filepath.Join(s.DataDir, "resep.bolt")
}

func setDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("storage_driver", defaultDriver)
	v.SetDefault("data_dir", filepath.Join(home, defaultDataDir))
	v.SetDefault("redis_prefix", defaultRedisPrefix)
	v.SetDefault("favorites_key", defaultFavoritesKey)
	v.SetDefault("reviews_key", defaultReviewsKey)
	v.SetDefault("profile_key", defaultProfileKey)
	v.SetDefault("cache_prefix", defaultCachePrefix)
	v.SetDefault("cache_fetch_timeout", defaultFetchTimeout)
}

// Load читает конфигурацию из .env, переменных окружения и (опционально) файла,
// уже подключенного к v. Если v == nil, используется глобальный viper.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Env: v.GetString("app_env"),
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Storage: Storage{
			Driver:        strings.ToLower(v.GetString("storage_driver")),
			DataDir:       v.GetString("data_dir"),
			DatabaseURI:   v.GetString("database_uri"),
			RedisAddr:     v.GetString("redis_addr"),
			RedisPassword: v.GetString("redis_password"),
			RedisDB:       v.GetInt("redis_db"),
			RedisPrefix:   v.GetString("redis_prefix"),
			QuotaBytes:    v.GetInt("storage_quota_bytes"),
		},
		Keys: Keys{
			Favorites: v.GetString("favorites_key"),
			Reviews:   v.GetString("reviews_key"),
			Profile:   v.GetString("profile_key"),
		},
		Cache: Cache{
			Prefix:       v.GetString("cache_prefix"),
			FetchTimeout: v.GetDuration("cache_fetch_timeout"),
		},
		Logger: Logger{
			LogLevel: v.GetString("log_level"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad загружает конфигурацию и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load(nil)
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown app_env %q", c.Env)
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite, DriverBolt:
		if c.Storage.DataDir == "" {
			return fmt.Errorf("data_dir не может быть пустым для драйвера %s", c.Storage.Driver)
		}
	case DriverPostgres:
		if c.Storage.DatabaseURI == "" {
			return fmt.Errorf("database_uri не может быть пустым для драйвера %s", c.Storage.Driver)
		}
	case DriverRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("redis_addr не может быть пустым для драйвера %s", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage_driver %q", c.Storage.Driver)
	}

	if c.Keys.Favorites == "" || c.Keys.Reviews == "" || c.Keys.Profile == "" {
		return fmt.Errorf("ключи хранилища не могут быть пустыми")
	}
	if c.Server.RunAddress == "" {
		return fmt.Errorf("run_address не может быть пустым")
	}

	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
