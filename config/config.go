package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value for key from .env, falling back to the process
// environment when no .env file exists.
func Config(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}
