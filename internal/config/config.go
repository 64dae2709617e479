package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultTableName is the DynamoDB table holding project items
const DefaultTableName = "3d-Viewer-UserDetails"

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Store       StoreConfig
	Log         LogConfig
}

// StoreConfig holds key-value store configuration
type StoreConfig struct {
	Type       string // "dynamodb", "sqlite" or "memory"
	TableName  string
	Region     string
	Endpoint   string // DynamoDB Local / LocalStack
	SQLitePath string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("STORE_TYPE", "dynamodb")
	v.SetDefault("TABLE_NAME", DefaultTableName)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("SQLITE_PATH", "./data/projects.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Store: StoreConfig{
			Type:       v.GetString("STORE_TYPE"),
			TableName:  v.GetString("TABLE_NAME"),
			Region:     v.GetString("AWS_REGION"),
			Endpoint:   v.GetString("DYNAMODB_ENDPOINT"),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
