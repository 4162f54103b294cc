package main

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Blob storage drivers.
const (
	blobDriverLocal = "local"
	blobDriverMinIO = "minio"
)

// Config holds the whole service configuration read from the environment.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	JWT      JWTConfig
	Cache    CacheConfig
	Uploads  UploadsConfig
	MinIO    MinIOConfig
}

type AppConfig struct {
	Host     string `env:"APP_HOST" env-default:"localhost"`
	Port     string `env:"APP_PORT" env-default:"5000"`
	LogLevel string `env:"APP_LOG_LEVEL" env-default:"info"`
	// Public address used to build upload URLs in responses.
	BaseURL string `env:"APP_BASE_URL"`
}

type PostgresConfig struct {
	Host         string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT" env-default:"5432"`
	User         string `env:"POSTGRES_USER" env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD" env-default:"password"`
	DB           string `env:"POSTGRES_DB" env-default:"database"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
}

// DSN returns the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

type JWTConfig struct {
	SecretKey string        `env:"JWT_SECRET_KEY" env-required:"true"`
	Exp       time.Duration `env:"JWT_EXP" env-default:"1h"`
}

type CacheConfig struct {
	TTL time.Duration `env:"CACHE_TTL" env-default:"5m"`
}

type UploadsConfig struct {
	Dir      string `env:"UPLOADS_DIR" env-default:"uploads"`
	MaxBytes int64  `env:"UPLOAD_MAX_BYTES" env-default:"10485760"`
	Driver   string `env:"BLOB_DRIVER" env-default:"local"`
}

type MinIOConfig struct {
	Endpoint        string `env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
	AccessKeyID     string `env:"MINIO_ACCESS_KEY"`
	SecretAccessKey string `env:"MINIO_SECRET_KEY"`
	BucketName      string `env:"MINIO_BUCKET" env-default:"uploads"`
	UseSSL          bool   `env:"MINIO_USE_SSL" env-default:"false"`
}

// parseConfig loads variables from the env file at path, when it exists, and
// maps the environment onto Config. Variables already set in the environment
// win over the file.
func parseConfig(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	switch cfg.Uploads.Driver {
	case blobDriverLocal, blobDriverMinIO:
	default:
		return nil, fmt.Errorf("unknown BLOB_DRIVER %q", cfg.Uploads.Driver)
	}
	if cfg.Uploads.MaxBytes <= 0 {
		return nil, fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if cfg.Cache.TTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be positive")
	}
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = fmt.Sprintf("http://%s:%s", cfg.App.Host, cfg.App.Port)
	}
	return &cfg, nil
}
