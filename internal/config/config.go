package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when CONFIG_PATH is not set
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout  string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout  string `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	} `yaml:"server"`

	Roster struct {
		Path          string `yaml:"path" env:"ROSTER_PATH"`
		Comma         string `yaml:"comma" env:"ROSTER_COMMA"`
		Comment       string `yaml:"comment" env:"ROSTER_COMMENT"`
		LazyQuotes    bool   `yaml:"lazy_quotes" env:"ROSTER_LAZY_QUOTES"`
		LoadOnStartup bool   `yaml:"load_on_startup" env:"ROSTER_LOAD_ON_STARTUP"`
	} `yaml:"roster"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.IdleTimeout = "120s"

	// Roster defaults
	config.Roster.Path = "data/faculty.csv"
	config.Roster.Comma = ","
	config.Roster.LoadOnStartup = true

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	for name, value := range map[string]string{
		"read timeout":  config.Server.ReadTimeout,
		"write timeout": config.Server.WriteTimeout,
		"idle timeout":  config.Server.IdleTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid server %s format: %w", name, err)
		}
	}

	if strings.TrimSpace(config.Roster.Path) == "" {
		return fmt.Errorf("roster path is required")
	}

	if utf8.RuneCountInString(config.Roster.Comma) != 1 {
		return fmt.Errorf("roster comma must be a single character, got %q", config.Roster.Comma)
	}

	if utf8.RuneCountInString(config.Roster.Comment) > 1 {
		return fmt.Errorf("roster comment must be empty or a single character, got %q", config.Roster.Comment)
	}

	if config.Roster.Comment != "" && config.Roster.Comment == config.Roster.Comma {
		return fmt.Errorf("roster comment and comma must differ")
	}

	return nil
}

// CommaRune returns the roster delimiter as a rune
func (c *Config) CommaRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Roster.Comma)
	return r
}

// CommentRune returns the roster comment marker, or 0 when unset
func (c *Config) CommentRune() rune {
	if c.Roster.Comment == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Roster.Comment)
	return r
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
