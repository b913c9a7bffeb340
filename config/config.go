package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default locations, relative to the working directory.
const (
	DefaultHotelsPath = "Sourmimosa Portfolio - Hotels and Resorts.csv"
	DefaultFnBPath    = "Sourmimosa Portfolio - F&B Destinations.csv"
	DefaultBeyondPath = "Sourmimosa Portfolio - Beyond Hotels and F&B.csv"
	DefaultOutputPath = "portfolio_data.json"
)

// Configuration validation errors.
var (
	ErrMissingSourcePath = errors.New("all three source paths are required")
	ErrMissingOutputPath = errors.New("output path is required")
	ErrInvalidLogLevel   = errors.New("log level must be one of: debug, info, warn, warning, error")
)

// Config holds all application configuration.
type Config struct {
	HotelsPath string `yaml:"hotels_path"`
	FnBPath    string `yaml:"fnb_path"`
	BeyondPath string `yaml:"beyond_path"`

	OutputPath    string `yaml:"output_path"`
	// CSVExportPath enables the flattened CSV export when non-empty.
	CSVExportPath string `yaml:"csv_export_path"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		HotelsPath: DefaultHotelsPath,
		FnBPath:    DefaultFnBPath,
		BeyondPath: DefaultBeyondPath,
		OutputPath: DefaultOutputPath,
		LogLevel:   "info",
	}
}

// Load reads the .env file, applies the optional YAML file named by
// PORTFOLIO_CONFIG, then environment overrides, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	cfg := Default()
	if path := os.Getenv("PORTFOLIO_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// mergeFile overlays the YAML document at path. Keys absent from the file
// keep their current value.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %q: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.HotelsPath = getEnv("HOTELS_CSV", c.HotelsPath)
	c.FnBPath = getEnv("FNB_CSV", c.FnBPath)
	c.BeyondPath = getEnv("BEYOND_CSV", c.BeyondPath)
	c.OutputPath = getEnv("OUTPUT_PATH", c.OutputPath)
	c.CSVExportPath = getEnv("CSV_EXPORT_PATH", c.CSVExportPath)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
}

// Validate checks that every required path is set and the log level is known.
func (c *Config) Validate() error {
	if c.HotelsPath == "" || c.FnBPath == "" || c.BeyondPath == "" {
		return ErrMissingSourcePath
	}
	if c.OutputPath == "" {
		return ErrMissingOutputPath
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
