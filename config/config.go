package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

type Config struct {
	LogLevel string       `yaml:"log-level"`
	Output   string       `yaml:"output"`
	Oracle   OracleConfig `yaml:"oracle"`
}

type OracleConfig struct {
	// Timeout in milliseconds, 0 disables it.
	Timeout uint `yaml:"timeout"`
}

func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Output:   OutputText,
	}
}

// Load reads path over the defaults. A missing file is not an error. The
// result is not validated, callers apply overrides and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Debugf("config file '%s' not found, using defaults", path)
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "reading config '%s'", path)
	}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config '%s'", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log-level")
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return errors.Errorf("unknown output format '%s'", c.Output)
	}
	return nil
}
