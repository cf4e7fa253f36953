package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Lists that are awkward to keep in env vars live here.
type YAMLConfig struct {
	Seed     SeedConfig        `yaml:"seed"`
	Channels map[string]string `yaml:"channels"` // Channel ID -> display name used in alerts
}

// SeedConfig lists entries inserted at startup when missing.
type SeedConfig struct {
	Words      []string `yaml:"words"`
	Exceptions []string `yaml:"exceptions"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	return ParseYAMLConfig(data)
}

// ParseYAMLConfig decodes a config.yaml document.
func ParseYAMLConfig(data []byte) (*YAMLConfig, error) {
	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Channels == nil {
		cfg.Channels = map[string]string{}
	}

	return &cfg, nil
}

// SeedWords returns the words to seed, or nil.
func (c *YAMLConfig) SeedWords() []string {
	if c == nil {
		return nil
	}
	return c.Seed.Words
}

// SeedExceptions returns the exceptions to seed, or nil.
func (c *YAMLConfig) SeedExceptions() []string {
	if c == nil {
		return nil
	}
	return c.Seed.Exceptions
}
