package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID      string
	Region         string
	LogLevel       string
	Port           string
	PlanLogoBucket string

	// Console-side settings (cmd/console)
	PlatformURL   string
	PlatformToken string
}

func New() *Config {
	// Local development convenience; ignored when no .env exists.
	_ = godotenv.Load()

	return &Config{
		ProjectID:      os.Getenv("PROJECTID"),
		Region:         os.Getenv("REGION"),
		LogLevel:       os.Getenv("LOGLEVEL"),
		Port:           getOrDefault("PORT", "8080"),
		PlanLogoBucket: os.Getenv("PLANLOGOBUCKET"),
		PlatformURL:    os.Getenv("PLATFORMURL"),
		PlatformToken:  os.Getenv("PLATFORMTOKEN"),
	}
}

func getOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
