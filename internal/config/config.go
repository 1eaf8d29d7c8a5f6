// Package config loads service configuration from an optional YAML file and
// the process environment. Configuration is validated once at startup so a
// missing credential kills the process immediately instead of surfacing as a
// runtime error on the first request.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultTTSModel is used for synthesis when no override is configured.
const DefaultTTSModel = "gpt-4o-mini-tts"

// FallbackTTSModel is the fixed secondary model tried when the preferred
// model fails.
const FallbackTTSModel = "tts-1"

// Config is the full service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	OpenAI OpenAIConfig `yaml:"openai"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	Environment  string        `yaml:"environment"`
}

// OpenAIConfig holds the provider credential and model overrides.
type OpenAIConfig struct {
	// APIKey is never read from the YAML file, only from the environment.
	APIKey            string `yaml:"-"`
	PreferredTTSModel string `yaml:"preferred_tts_model"`
	// BaseURL overrides the provider endpoint; normally empty.
	BaseURL string `yaml:"base_url"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
			Environment:  "development",
		},
		OpenAI: OpenAIConfig{
			PreferredTTSModel: DefaultTTSModel,
		},
	}
}

// LoadEnv loads variables from a .env file if one exists nearby. Missing
// files are not an error; system-wide environment variables may already be
// set.
func LoadEnv() error {
	envPaths := []string{".env", ".env.local", "../.env", "../../.env"}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment overrides, then validates it.
func Load(configPath string) (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(os.ExpandEnv(configPath))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays environment variables on top of file values.
func (c *Config) applyEnv() {
	c.OpenAI.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))

	if model := strings.TrimSpace(os.Getenv("PREFERRED_TTS_MODEL")); model != "" {
		c.OpenAI.PreferredTTSModel = model
	}
	if baseURL := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); baseURL != "" {
		c.OpenAI.BaseURL = baseURL
	}
	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		c.Server.Environment = env
	}
}

// Validate fails fast on configuration an operator must fix before the
// service can do anything useful.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY must be set in environment or .env file")
	}
	if !strings.HasPrefix(c.OpenAI.APIKey, "sk-") {
		return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
	}
	if len(c.OpenAI.APIKey) < 20 {
		return fmt.Errorf("invalid OPENAI_API_KEY format: too short")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.OpenAI.PreferredTTSModel == "" {
		c.OpenAI.PreferredTTSModel = DefaultTTSModel
	}
	return nil
}
