package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/yigit/courseboard/internal/pkg/helpers"
	"gopkg.in/yaml.v3"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

// Config structure represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Storage  StorageConfig  `yaml:"storage"`
}

type ServerConfig struct {
	Port            string   `yaml:"port" env:"SERVER_PORT"`
	Mode            string   `yaml:"mode" env:"SERVER_MODE"`
	AllowedOrigins  []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
	ReadTimeout     string   `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    string   `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout string   `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

type DatabaseConfig struct {
	Host            string `yaml:"host" env:"DB_HOST"`
	Port            string `yaml:"port" env:"DB_PORT"`
	User            string `yaml:"user" env:"DB_USER"`
	Password        string `yaml:"password" env:"DB_PASSWORD"`
	DBName          string `yaml:"dbname" env:"DB_NAME"`
	SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
	MaxConns        int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
	MinConns        int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	AcquireTimeout  string `yaml:"acquire_timeout" env:"DB_ACQUIRE_TIMEOUT"`
	SeedDepartments bool   `yaml:"seed_departments" env:"DB_SEED_DEPARTMENTS"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// StorageConfig selects and configures the trace document store.
type StorageConfig struct {
	Driver          string `yaml:"driver" env:"STORAGE_DRIVER"`
	LocalPath       string `yaml:"local_path" env:"STORAGE_LOCAL_PATH"`
	Bucket          string `yaml:"bucket" env:"S3_BUCKET_NAME"`
	Region          string `yaml:"region" env:"S3_REGION"`
	AccessKeyID     string `yaml:"access_key_id" env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"S3_SECRET_ACCESS_KEY"`
	Endpoint        string `yaml:"endpoint" env:"S3_ENDPOINT"`
}

// LoadConfig builds the configuration from defaults, an optional YAML file,
// an optional .env file and the process environment, in that order.
func LoadConfig(configPath string) (*Config, error) {
	return load(configPath, os.LookupEnv)
}

func load(configPath string, lookup func(string) (string, bool)) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := applyEnv(config, lookup); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = []string{"http://localhost:3000"}
	config.Server.ReadTimeout = "15s"
	config.Server.WriteTimeout = "30s"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "courseboard"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 20
	config.Database.MinConns = 2
	config.Database.ConnMaxLifetime = "1h"
	config.Database.AcquireTimeout = "5s"
	config.Database.SeedDepartments = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Storage.Driver = StorageDriverLocal
	config.Storage.LocalPath = "./uploads"
	config.Storage.Region = "us-east-1"
}

func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Database.MaxConns < 1 {
		return fmt.Errorf("database max_conns must be at least 1")
	}
	if config.Database.MinConns < 0 || config.Database.MinConns > config.Database.MaxConns {
		return fmt.Errorf("database min_conns must be between 0 and max_conns")
	}

	durations := map[string]string{
		"server.read_timeout":        config.Server.ReadTimeout,
		"server.write_timeout":       config.Server.WriteTimeout,
		"server.shutdown_timeout":    config.Server.ShutdownTimeout,
		"database.conn_max_lifetime": config.Database.ConnMaxLifetime,
		"database.acquire_timeout":   config.Database.AcquireTimeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	switch config.Storage.Driver {
	case StorageDriverLocal:
		if config.Storage.LocalPath == "" {
			return fmt.Errorf("storage local_path is required for the local driver")
		}
	case StorageDriverS3:
		if config.Storage.Bucket == "" || config.Storage.Region == "" {
			return fmt.Errorf("storage bucket and region are required for the s3 driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	return nil
}

// ConnectionString returns the postgres URL for the configured database.
func (c DatabaseConfig) ConnectionString() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

func (c DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return helpers.ParseDuration(c.ConnMaxLifetime, time.Hour)
}

func (c DatabaseConfig) AcquireTimeoutDuration() time.Duration {
	return helpers.ParseDuration(c.AcquireTimeout, 5*time.Second)
}

func (c ServerConfig) ReadTimeoutDuration() time.Duration {
	return helpers.ParseDuration(c.ReadTimeout, 15*time.Second)
}

func (c ServerConfig) WriteTimeoutDuration() time.Duration {
	return helpers.ParseDuration(c.WriteTimeout, 30*time.Second)
}

func (c ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return helpers.ParseDuration(c.ShutdownTimeout, 10*time.Second)
}

