package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Dir  string
	File string
}

type AppConfig struct {
	APIKey      string
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Dir:  getEnv("DB_DIR", "/tmp/agile_data"),
			File: getEnv("DB_FILE", "pipeline.db"),
		},
		App: AppConfig{
			APIKey:      getEnv("API_KEY", "CHANGE_ME"),
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "2.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.Dir == "" {
		return fmt.Errorf("DB_DIR is required")
	}

	if c.Database.File == "" {
		return fmt.Errorf("DB_FILE is required")
	}

	if c.App.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}

	return nil
}

// DatabasePath returns the absolute path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.File)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
