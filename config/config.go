package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Log     LogConfig
	Catalog CatalogConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// IsDevelopment enables internal error detail in API responses.
func (c AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

type LogConfig struct {
	Level string
}

// Catalog store drivers
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
)

type CatalogConfig struct {
	Driver   string
	DataFile string
}

type DBConfig struct {
	DSN string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Key      string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig reads envFile (when it exists) and the process environment.
// Environment variables win over the file.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CATALOG_DRIVER", DriverFile)
	v.SetDefault("CATALOG_DATA_FILE", "data/products.json")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY", "catalog:products")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isMissingFile(err) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Catalog: CatalogConfig{
			Driver:   strings.ToLower(v.GetString("CATALOG_DRIVER")),
			DataFile: v.GetString("CATALOG_DATA_FILE"),
		},
		DB: DBConfig{
			DSN: v.GetString("DB_DSN"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			Key:      v.GetString("REDIS_KEY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
