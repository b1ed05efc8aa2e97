package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Version       string   `json:"version" mapstructure:"version"`
	SamplesDir    string   `json:"samples_dir" mapstructure:"samples_dir"`
	OutputDir     string   `json:"output_dir" mapstructure:"output_dir"`
	OverridesPath string   `json:"overrides_path,omitempty" mapstructure:"overrides_path"`
	SampleSize    int      `json:"sample_size" mapstructure:"sample_size"`
	Counts        Counts   `json:"counts" mapstructure:"counts"`
	Seed          int64    `json:"seed,omitempty" mapstructure:"seed"`
	Database      Database `json:"database" mapstructure:"database"`
}

type Counts struct {
	Business            int `json:"business" mapstructure:"business"`
	Budget              int `json:"budget" mapstructure:"budget"`
	Card                int `json:"card" mapstructure:"card"`
	MaxCardsPerBusiness int `json:"max_cards_per_business" mapstructure:"max_cards_per_business"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

const configFileName = "mimic.config.json"

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// DefaultConfig returns the configuration written by `mimic init`.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.SamplesDir == "" {
		cfg.SamplesDir = "samples"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "out"
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = 200
	}
	if cfg.Counts.Business <= 0 {
		cfg.Counts.Business = 10
	}
	if cfg.Counts.Budget <= 0 {
		cfg.Counts.Budget = 30
	}
	if cfg.Counts.Card <= 0 {
		cfg.Counts.Card = 50
	}
	if cfg.Counts.MaxCardsPerBusiness <= 0 {
		cfg.Counts.MaxCardsPerBusiness = 10
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
}

// SamplePath returns where the sample CSV for one table is expected.
func (c *Config) SamplePath(table string) string {
	return filepath.Join(c.SamplesDir, table+".csv")
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.SamplesDir == "" {
		return fmt.Errorf("samples_dir cannot be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	return nil
}

func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.SamplesDir, c.OutputDir} {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// InitializeProject scaffolds the config file and directories in the current
// directory. Fails if a config already exists.
func InitializeProject() error {
	if _, err := os.Stat(configFileName); err == nil {
		return fmt.Errorf("%s already exists", configFileName)
	}

	cfg := DefaultConfig()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(configFileName, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configFileName, err)
	}

	return cfg.EnsureDirectories()
}
