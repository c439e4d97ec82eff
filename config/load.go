package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const envPrefix = "SONICAPI"

// Load builds configuration from defaults, an optional YAML file, and
// environment variables, in that order. An empty path means the default
// location; a missing file there is not an error, while an explicitly
// requested file must exist.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}
	if err := loadFile(&cfg, path, explicit); err != nil {
		return nil, err
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFile merges a YAML config file into cfg. Group- or world-readable
// files get a warning since they may contain a password.
func loadFile(cfg *Config, path string, explicit bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		fmt.Fprintf(os.Stderr,
			"warning: config file %s has permissions %04o, expected 0600; "+
				"passwords may be exposed to other users\n",
			path, perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays SONICAPI_* environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if v := getEnv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := getEnv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s_PORT %q: %w", envPrefix, v, err)
		}
		cfg.Port = port
	}
	if v := getEnv("USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := getEnv("PASSWORD"); v != "" {
		cfg.Password = v
	}
	if v := getEnv("PASSWORD_FILE"); v != "" {
		cfg.PasswordFile = v
	}
	if v := getEnv("INSECURE"); v != "" {
		cfg.Insecure = v == "true"
	}
	if v := getEnv("CA_FILE"); v != "" {
		cfg.CAFile = v
	}
	if v := getEnv("TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s_TIMEOUT %q: %w", envPrefix, v, err)
		}
		cfg.TimeoutSeconds = secs
	}
	if v := getEnv("OUTPUT"); v != "" {
		cfg.Output = v
	}
	return nil
}

// getEnv gets an environment variable with the SONICAPI_ prefix.
func getEnv(key string) string {
	return os.Getenv(envPrefix + "_" + key)
}

// Validate checks that the configuration has all required fields.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}
	if c.Password == "" && c.PasswordFile == "" {
		return fmt.Errorf("either password or password_file is required")
	}
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format: %s", c.Output)
	}
	return nil
}

// ResolvePassword returns the password, reading from file if necessary.
// Priority: PasswordFile (if set) > Password
func ResolvePassword(password, passwordFile string) (string, error) {
	if passwordFile != "" {
		return ReadPasswordFile(passwordFile)
	}
	if password != "" {
		return password, nil
	}
	return "", fmt.Errorf("no password provided")
}

// ReadPasswordFile reads a password from a file, trimming whitespace.
func ReadPasswordFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read password file %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// BuildTLSConfig creates a TLS configuration from the CA file and insecure
// settings. Returns nil if no CA file is configured, leaving the client on
// its default verification behavior.
func (c *Config) BuildTLSConfig() (*tls.Config, error) {
	if c.CAFile == "" {
		return nil, nil
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: c.Insecure, //nolint:gosec // User-configurable escape hatch for self-signed appliance certs
		MinVersion:         tls.VersionTLS12,
	}

	caCert, err := os.ReadFile(c.CAFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}
	tlsConfig.RootCAs = pool

	return tlsConfig, nil
}
