package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings for the export bridge
type Config struct {
	// Tool invocation settings
	ToolCommand string   `json:"toolCommand" yaml:"toolCommand"` // Program used to launch the CLI tool
	ToolArgs    []string `json:"toolArgs" yaml:"toolArgs"`       // Launcher arguments prefixed before every subcommand

	// Connection defaults offered to the frontend
	DefaultHost string `json:"defaultHost" yaml:"defaultHost"` // Host prefilled when the caller supplies none
	DefaultPort uint16 `json:"defaultPort" yaml:"defaultPort"` // Port prefilled when the caller supplies zero

	// Execution settings
	CommandTimeout time.Duration `json:"commandTimeout" yaml:"commandTimeout"` // Bounded wait per invocation (0 = unbounded)

	// Environment and runtime settings
	Environment string `json:"environment" yaml:"environment"` // Environment (development, production, test)
	LogLevel    string `json:"logLevel" yaml:"logLevel"`       // Log level for bridge operations
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// The CLI tool ships as an npm package; "npm run dev --" forwards the
		// remaining arguments to it.
		ToolCommand: "npm",
		ToolArgs:    []string{"run", "dev", "--"},

		DefaultHost: "localhost",
		DefaultPort: 3000,

		CommandTimeout: 2 * time.Minute,

		Environment: "production",
		LogLevel:    "info",
	}
}

// DevelopmentConfig returns a configuration optimized for development
func DevelopmentConfig() *Config {
	config := DefaultConfig()
	config.Environment = "development"
	config.LogLevel = "debug"
	config.CommandTimeout = 5 * time.Minute // Slow dev-server startups
	return config
}

// TestConfig returns a configuration optimized for testing
func TestConfig() *Config {
	config := DefaultConfig()
	config.ToolCommand = "true" // Harmless no-op binary
	config.ToolArgs = nil
	config.Environment = "test"
	config.LogLevel = "error"
	config.CommandTimeout = 5 * time.Second
	return config
}

// Load reads .env (if present) and builds the configuration for the
// environment named by PLEXPORT_ENVIRONMENT, applying env var overrides
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := ConfigForEnvironment(os.Getenv("PLEXPORT_ENVIRONMENT"))
	if err := config.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if command := os.Getenv("PLEXPORT_TOOL_COMMAND"); command != "" {
		c.ToolCommand = command
	}

	// Launcher args are space-separated; an explicitly empty value clears the
	// prefix so the tool binary can be invoked directly.
	if args, present := os.LookupEnv("PLEXPORT_TOOL_ARGS"); present {
		c.ToolArgs = strings.Fields(args)
	}

	if host := os.Getenv("PLEXPORT_DEFAULT_HOST"); host != "" {
		c.DefaultHost = host
	}

	if port := os.Getenv("PLEXPORT_DEFAULT_PORT"); port != "" {
		val, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			return fmt.Errorf("PLEXPORT_DEFAULT_PORT must be a 16-bit unsigned value: %q", port)
		}
		c.DefaultPort = uint16(val)
	}

	if timeout := os.Getenv("PLEXPORT_COMMAND_TIMEOUT"); timeout != "" {
		val, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("PLEXPORT_COMMAND_TIMEOUT is not a duration: %q", timeout)
		}
		c.CommandTimeout = val
	}

	if environment := os.Getenv("PLEXPORT_ENVIRONMENT"); environment != "" {
		c.Environment = environment
	}

	if logLevel := os.Getenv("PLEXPORT_LOG_LEVEL"); logLevel != "" {
		c.LogLevel = logLevel
	}

	return nil
}

// Validate validates the configuration parameters
func (c *Config) Validate() error {
	if c.ToolCommand == "" {
		return fmt.Errorf("toolCommand cannot be empty")
	}

	if c.DefaultHost == "" {
		return fmt.Errorf("defaultHost cannot be empty")
	}

	if c.CommandTimeout < 0 {
		return fmt.Errorf("commandTimeout cannot be negative, got %v", c.CommandTimeout)
	}

	validEnvironments := map[string]bool{
		"development": true,
		"test":        true,
		"production":  true,
	}
	if !validEnvironments[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid logLevel: %s", c.LogLevel)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := &Config{
		ToolCommand:    c.ToolCommand,
		DefaultHost:    c.DefaultHost,
		DefaultPort:    c.DefaultPort,
		CommandTimeout: c.CommandTimeout,
		Environment:    c.Environment,
		LogLevel:       c.LogLevel,
	}
	if c.ToolArgs != nil {
		clone.ToolArgs = append([]string(nil), c.ToolArgs...)
	}
	return clone
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsTest returns true if the environment is set to test
func (c *Config) IsTest() bool {
	return c.Environment == "test"
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ConfigForEnvironment returns a configuration optimized for the given environment
func ConfigForEnvironment(env string) *Config {
	switch env {
	case "development":
		return DevelopmentConfig()
	case "test":
		return TestConfig()
	default:
		return DefaultConfig()
	}
}
