package configs

import (
	"fmt"
	"os"
)

type Config struct {
	AppPort       string
	DatabaseURL   string
	AdminPassword string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
	S3Bucket      string
	S3UseSSL      bool
	S3PublicURL   string
	OTLPEndpoint  string
}

// LoadConfig reads configuration from the environment. DATABASE_URL and
// ADMIN_PASSWORD have no defaults: starting without them is an error.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppPort:       getEnv("APP_PORT", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		S3Endpoint:    getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:   getEnv("S3_ACCESS_KEY", "minio"),
		S3SecretKey:   getEnv("S3_SECRET_KEY", "minio123"),
		S3Bucket:      getEnv("S3_BUCKET", "blog-images"),
		S3UseSSL:      os.Getenv("S3_USE_SSL") == "true",
		S3PublicURL:   os.Getenv("S3_PUBLIC_URL"),
		OTLPEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
