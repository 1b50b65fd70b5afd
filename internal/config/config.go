package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const ConfigFileName = "seedforge.config.json"

type Config struct {
	Version    string   `json:"version" mapstructure:"version"`
	SchemaPath string   `json:"schema_path" mapstructure:"schema_path"`
	OutputPath string   `json:"output_path" mapstructure:"output_path"`
	Generate   Generate `json:"generate" mapstructure:"generate"`
}

type Generate struct {
	Mode   string `json:"mode,omitempty" mapstructure:"mode"`
	Format string `json:"format,omitempty" mapstructure:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Version:    "1",
		SchemaPath: "db/schemas.json",
		OutputPath: "data/generated",
		Generate: Generate{
			Mode:   "lite",
			Format: "json",
		},
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	defaults := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = defaults.SchemaPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = defaults.OutputPath
	}
	if cfg.Generate.Mode == "" {
		cfg.Generate.Mode = defaults.Generate.Mode
	}
	if cfg.Generate.Format == "" {
		cfg.Generate.Format = defaults.Generate.Format
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	if c.SchemaPath == "" {
		return fmt.Errorf("schema_path cannot be empty")
	}

	switch c.Generate.Format {
	case "", "json", "sqlite":
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats: [json sqlite]", c.Generate.Format)
	}

	return nil
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.OutputPath,
		filepath.Dir(c.SchemaPath),
	}

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

func IsInitialized() bool {
	_, err := os.Stat(ConfigFileName)
	return err == nil
}

func InitializeProject() error {
	if IsInitialized() {
		return fmt.Errorf("project already initialized: %s exists", ConfigFileName)
	}

	cfg := DefaultConfig()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigFileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFileName, err)
	}

	return cfg.EnsureDirectories()
}
