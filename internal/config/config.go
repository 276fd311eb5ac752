// Package config loads application settings from environment
// variables. The .env file, if any, is read by main before Load is
// called.
package config

import (
	"errors"
	"os"
)

const defaultPort = "8000"

// Config holds all runtime configuration for the server and the CLI.
type Config struct {
	MongoURI string
	DBName   string
	Port     string
}

// Load reads the configuration from the environment. MONGO_URI and
// DB_NAME are required; PORT defaults to 8000.
func Load() (*Config, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		return nil, errors.New("MONGO_URI environment variable not set")
	}

	name := os.Getenv("DB_NAME")
	if name == "" {
		return nil, errors.New("DB_NAME environment variable not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return &Config{
		MongoURI: uri,
		DBName:   name,
		Port:     port,
	}, nil
}
