package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is the optional config file read from the working directory.
	DefaultFile = "greeter.yaml"

	// InstanceIDEnv names the environment variable carrying the instance identifier.
	InstanceIDEnv = "APP_ID"

	// DefaultInstanceID is used when no identifier is supplied.
	DefaultInstanceID = "Unknown Instance"
)

// Config represents the main configuration structure for a greeter process
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Instance InstanceConfig `yaml:"instance"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds the listener configuration. The port is fixed.
type ServerConfig struct {
	Timeouts TimeoutsConfig `yaml:"timeouts"`
}

// TimeoutsConfig holds server timeouts in seconds. Zero means the server default.
type TimeoutsConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// InstanceConfig identifies this process in greetings. The identifier
// comes only from the environment.
type InstanceConfig struct {
	ID string `yaml:"-"`
}

// LoggingConfig controls the process logger
type LoggingConfig struct {
	Level         string          `yaml:"level"`
	Format        string          `yaml:"format"`
	IncludeCaller bool            `yaml:"include_caller"`
	RequestID     RequestIDConfig `yaml:"request_id"`
}

// RequestIDConfig controls request id propagation
type RequestIDConfig struct {
	Header string `yaml:"header"`
}

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadConfig loads configuration from the specified YAML file
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &config, nil
}

// Load reads filePath if it exists, then applies the environment.
// A missing file is not an error.
func Load(filePath string, lookup LookupFunc) (*Config, error) {
	cfg, err := LoadConfig(filePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.ApplyEnv(lookup)
	return cfg, nil
}

// ApplyEnv resolves the instance identifier from the environment. Only an
// unset or empty variable falls back to DefaultInstanceID.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	c.Instance.ID = DefaultInstanceID
	if id, ok := lookup(InstanceIDEnv); ok && id != "" {
		c.Instance.ID = id
	}
}
