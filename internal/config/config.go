package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret   string
	TokenExpiry time.Duration

	// Storage driver: "local" (default) or "s3".
	StorageDriver string
	UploadDir     string
	S3            S3Config

	Email EmailConfig

	// Auth endpoint rate limiting, per client IP.
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// LoadConfig reads configuration from the environment. The JWT secret is
// mandatory: there is no fallback value.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenExpiry:   getDuration("TOKEN_EXPIRY", 24*time.Hour),
		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/plants"),

		AuthRateLimit:  getInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindow: getDuration("AUTH_RATE_WINDOW", time.Minute),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	cfg.S3.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3.Region = getEnv("S3_REGION", "auto")
	cfg.S3.AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.S3.SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	cfg.S3.Bucket = os.Getenv("S3_BUCKET")
	cfg.S3.PublicURL = os.Getenv("S3_PUBLIC_URL")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
