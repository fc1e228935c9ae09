package config

import (
	"os"
	"strconv"
	"time"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret returns the HMAC signing key for access tokens.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "default-dev-secret-change-me"))
}

// JWTTTL returns how long an issued token stays valid.
func JWTTTL() time.Duration {
	return time.Duration(GetEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour
}

// CORSOrigins returns the comma separated origin allow-list.
// Empty means allow all origins (dev mode).
func CORSOrigins() string {
	return GetEnv("CORS_ORIGINS", "")
}

// ListenAddr returns the address the API server binds to.
func ListenAddr() string {
	return ":" + GetEnv("PORT", "3000")
}
