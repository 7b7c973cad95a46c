package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration: a single connection string, nothing else.
	DatabaseURL string `yaml:"DATABASE_URL"`

	// HTTP server configuration
	AppPort string `yaml:"APP_PORT"`
}

var config Config

// LoadConfig reads config.yaml when present. Keys missing from the file fall
// back to environment variables in GetConfig, so a file is optional.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("config.yaml not loaded: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	var value string
	switch key {
	case "DATABASE_URL":
		value = config.DatabaseURL
	case "APP_PORT":
		value = config.AppPort
	}
	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
