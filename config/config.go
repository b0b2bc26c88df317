package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// S3 holds the credentials for the direct blob-storage upload backend.
type S3 struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

// Cloudinary holds the credentials for the media-CDN upload backend.
type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Config carries every environment-supplied setting. It is built once in
// main and handed to each component at construction instead of components
// reading the environment themselves.
type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	SessionSecret string
	UploadBackend string // "s3" or "cloudinary"
	TempDir       string
	S3            S3
	Cloudinary    Cloudinary
}

// Load reads the process environment into a Config. A .env file is loaded
// first outside of hosted deployments (RENDER unset), matching local dev.
func Load() (*Config, error) {
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	cfg := &Config{
		Port:          getEnv("PORT", "4000"),
		DatabaseURL:   os.Getenv("DB_CONNECTION_STRING"),
		RedisURL:      os.Getenv("REDIS_URL"),
		SessionSecret: os.Getenv("SESSION_TOKEN_SECRET"),
		UploadBackend: getEnv("UPLOAD_BACKEND", "cloudinary"),
		TempDir:       getEnv("UPLOAD_TEMP_DIR", filepath.Join(os.TempDir(), "booking-uploads")),
		S3: S3{
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		},
		Cloudinary: Cloudinary{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:    getEnv("CLOUDINARY_FOLDER", "uploads"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DB_CONNECTION_STRING environment variable is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_TOKEN_SECRET environment variable is required")
	}
	if cfg.UploadBackend != "s3" && cfg.UploadBackend != "cloudinary" {
		return nil, fmt.Errorf("UPLOAD_BACKEND must be s3 or cloudinary, got %q", cfg.UploadBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
