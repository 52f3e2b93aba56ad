package config

import "os"

// Get returns the value of the environment variable key, or fallback when the
// variable is unset or empty. godotenv loading happens in the composition
// roots, so values from a local .env file are visible here too.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
