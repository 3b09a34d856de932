package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("STORAGE_DRIVER", "")

	v := viper.New()
	v.Set("data_dir", t.TempDir())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "resep-nusantara-favorites", cfg.Keys.Favorites)
	assert.Equal(t, "resep-nusantara-reviews", cfg.Keys.Reviews)
	assert.Equal(t, "resep-nusantara-profile", cfg.Keys.Profile)
	assert.Equal(t, "cache/", cfg.Cache.Prefix)
	assert.Equal(t, 10*time.Second, cfg.Cache.FetchTimeout)
	assert.True(t, cfg.IsLocal())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("STORAGE_DRIVER", "REDIS")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RUN_ADDRESS", ":9090")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, ":9090", cfg.Server.RunAddress)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Env:     EnvDev,
			Server:  Server{RunAddress: ":8080"},
			Storage: Storage{Driver: DriverMemory},
			Keys:    Keys{Favorites: "f", Reviews: "r", Profile: "p"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "memory is valid", mutate: func(c *Config) {}},
		{name: "unknown env", mutate: func(c *Config) { c.Env = "staging" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "mongo" }, wantErr: true},
		{name: "postgres without uri", mutate: func(c *Config) { c.Storage.Driver = DriverPostgres }, wantErr: true},
		{name: "redis without addr", mutate: func(c *Config) { c.Storage.Driver = DriverRedis }, wantErr: true},
		{name: "sqlite without data dir", mutate: func(c *Config) { c.Storage.Driver = DriverSQLite }, wantErr: true},
		{name: "empty key", mutate: func(c *Config) { c.Keys.Reviews = "" }, wantErr: true},
		{name: "empty run address", mutate: func(c *Config) { c.Server.RunAddress = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
