package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names read by LoadEnv.
const (
	EnvBaseURL      = "PLACES_BASE_URL"
	EnvAdminToken   = "ADMIN_TOKEN"
	EnvGooglePlaces = "GOOGLE_PLACES_API_KEY"
)

// Defaults for flag/env-less runs.
const (
	DefaultBaseURL     = "http://localhost:3001"
	DefaultCity        = "Zaragoza"
	DefaultPace        = 1 * time.Second
	DefaultSyncTimeout = 300 * time.Second
)

// Config holds all runtime configuration for a placesync run.
type Config struct {
	BaseURL     string
	AdminToken  string
	GoogleKey   string // needed by the service, not by this tool; checked only to warn
	City        string
	LogFormat   string // "text" or "json"
	EnvFile     string
	Pace        time.Duration
	SyncTimeout time.Duration
	PlaceTypes  []string // subset of catalog ids to sync; empty = all
}

// yamlConfig is the on-disk YAML structure for a type-subset file.
type yamlConfig struct {
	PlaceTypes []string `yaml:"place_types"`
}

// LoadEnv reads the .env file (if present) and fills unset fields from the
// environment. A missing default .env is not an error; explicit flag values
// win over environment values.
func (c *Config) LoadEnv() error {
	path := c.EnvFile
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	} else if c.EnvFile != "" {
		return fmt.Errorf("env file %s not accessible: %w", c.EnvFile, err)
	}

	if c.BaseURL == "" {
		c.BaseURL = os.Getenv(EnvBaseURL)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.AdminToken == "" {
		c.AdminToken = os.Getenv(EnvAdminToken)
	}
	if c.GoogleKey == "" {
		c.GoogleKey = os.Getenv(EnvGooglePlaces)
	}
	return nil
}

// LoadTypesFile reads a YAML file selecting a subset of catalog type ids.
// Ids that match nothing in the catalog are not an error: the orchestrator
// skips them, same as unknown ids passed on the command line.
func (c *Config) LoadTypesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read types file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse types file: %w", err)
	}
	c.PlaceTypes = yc.PlaceTypes
	return nil
}

// Validate checks the fields every authenticated command needs.
func (c *Config) Validate() error {
	if c.AdminToken == "" {
		return fmt.Errorf("%s is required (flag --admin-token or .env)", EnvAdminToken)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	return nil
}
