package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file when present. Missing files are not an error so
// the CLIs work in environments that configure everything via real env vars.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
