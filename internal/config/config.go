// Package config loads drawscore configuration from an optional YAML file
// with environment variable overrides for API credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all drawscore configuration.
type Config struct {
	// LLM provider configuration
	LLM LLMConfig `yaml:"llm"`

	// Image directories searched by the interactive session
	Images ImagesConfig `yaml:"images"`

	// Category registry storage
	Registry RegistryConfig `yaml:"registry"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LLMConfig configures the vision provider.
type LLMConfig struct {
	Provider string `yaml:"provider"` // openai, gemini
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	// Timeout for the service call as a duration string. Empty means no
	// timeout: a hung call blocks the session.
	Timeout string `yaml:"timeout"`
}

// ImagesConfig configures where the interactive session looks for images.
type ImagesConfig struct {
	BaseDir    string `yaml:"base_dir"`
	DrawingDir string `yaml:"drawing_dir"`
}

// RegistryConfig configures the category store.
type RegistryConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration. Provider, model, and base
// URL stay empty so env overrides can infer the provider; each client fills
// in its own defaults for whatever is still unset.
func DefaultConfig() *Config {
	return &Config{
		Images: ImagesConfig{
			BaseDir:    filepath.Join("Images", "Base"),
			DrawingDir: filepath.Join("Images", "Drawing"),
		},
		Registry: RegistryConfig{
			Path: "art_categories.json",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults;
// environment variables override the file in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// API keys from environment. GEMINI_API_KEY infers the provider only
	// when nothing chose one; OPENAI_API_KEY wins and pins openai.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		if c.LLM.Provider == "" {
			c.LLM.Provider = "gemini"
		}
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = "openai"
	}

	if model := os.Getenv("DRAWSCORE_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if path := os.Getenv("DRAWSCORE_CATEGORIES"); path != "" {
		c.Registry.Path = path
	}
}

// GetLLMTimeout returns the service-call timeout as a duration. Zero means
// no timeout.
func (c *Config) GetLLMTimeout() time.Duration {
	if c.LLM.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil {
		return 0
	}
	return d
}
