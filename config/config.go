package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the process needs at startup. Values come from
// environment variables (optionally seeded by a .env file) with local
// development defaults baked in.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// StorageConfig points at an S3-compatible object store. The defaults
// match the MinIO container from docker-compose.yml.
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

func (j *JWTConfig) ExpireDuration() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

// Load reads configuration from the environment, falling back to an
// optional config.yaml and then to local defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("database.dsn", "host=localhost port=5432 user=propulse password=propulse dbname=propulse sslmode=disable")
	v.SetDefault("storage.endpoint", "localhost:9000")
	v.SetDefault("storage.access_key", "minioadmin")
	v.SetDefault("storage.secret_key", "minioadmin")
	v.SetDefault("storage.bucket", "attachments")
	v.SetDefault("storage.use_ssl", false)
	v.SetDefault("jwt.secret", "change-this-in-production")
	v.SetDefault("jwt.expire_minutes", 24*60)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
