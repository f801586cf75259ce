package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`

	// Storage configuration: "file" (default), "sqlite" or "postgres"
	StorageDriver string `yaml:"STORAGE_DRIVER"`
	StatePath     string `yaml:"STATE_PATH"`

	// Database configuration (sqlite/postgres drivers)
	DBPath     string `yaml:"DB_PATH"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Logging
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("config.yaml not read, falling back to environment: %s\n", err)
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig returns the configured value for key, preferring config.yaml and
// falling back to the environment.
func GetConfig(key string) string {
	value := ""
	switch key {
	case "APP_PORT":
		value = config.AppPort
	case "STORAGE_DRIVER":
		value = config.StorageDriver
	case "STATE_PATH":
		value = config.StatePath
	case "DB_PATH":
		value = config.DBPath
	case "DB_USER":
		value = config.DBUser
	case "DB_NAME":
		value = config.DBName
	case "DB_PASSWORD":
		value = config.DBPassword
	case "DB_PORT":
		value = config.DBPort
	case "DB_HOST":
		value = config.DBHost
	case "LOG_LEVEL":
		value = config.LogLevel
	case "LOG_FORMAT":
		value = config.LogFormat
	}
	if value == "" {
		value = os.Getenv(key)
	}
	return value
}

// GetConfigDefault returns the configured value or fallback when unset.
func GetConfigDefault(key, fallback string) string {
	if value := GetConfig(key); value != "" {
		return value
	}
	return fallback
}
