package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config represents the application configuration.
type Config struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordFile string `yaml:"password_file"`

	// TLS configuration
	Insecure bool   `yaml:"insecure"` // Skip cert verification (default: false)
	CAFile   string `yaml:"ca_file"`  // CA certificate path

	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Output         string `yaml:"output"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Port:           443,
		TimeoutSeconds: 30,
		Output:         "table",
	}
}

// DefaultPath returns the default config file path: ~/.sonicapi/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".sonicapi", "config.yaml")
	}
	return filepath.Join(home, ".sonicapi", "config.yaml")
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
