package config

import (
	"os"
)

// Config holds all configuration for the datepicker service
type Config struct {
	Server   ServerConfig
	Calendar CalendarConfig
	CORS     CORSConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	HTTPPort string
	GRPCPort string
}

// CalendarConfig holds date handling configuration
type CalendarConfig struct {
	// Timezone is the IANA zone used to decide "today".
	Timezone string
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowedOrigins string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort: getEnv("HTTP_PORT", "8080"),
			GRPCPort: getEnv("GRPC_PORT", "50051"),
		},
		Calendar: CalendarConfig{
			Timezone: getEnv("TIME_ZONE", "Asia/Tehran"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
