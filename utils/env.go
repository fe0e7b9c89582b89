package utils

import (
	"os"
	"strconv"
	"time"
)

// GetEnvAsInt retrieves an environment variable and converts it to an integer
func GetEnvAsInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultVal
}

// GetEnvAsDuration retrieves an environment variable and converts it to Duration
func GetEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := time.ParseDuration(value); err == nil {
			return result
		}
	}
	return defaultVal
}

// GetEnvAsString retrieves an environment variable or returns a default value
func GetEnvAsString(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
