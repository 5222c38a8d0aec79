package generator

import (
	"errors"
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads generation settings from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML data into a Config. Unset values keep their zero
// value so flags can still override them; defaults are applied by Run.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return cfg, nil
}

// applyDefaults fills in default values for optional settings.
func (c *Config) applyDefaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}
	if c.ReadMethod == "" {
		c.ReadMethod = defaultReadMethod
	}
	if c.WriteMethod == "" {
		c.WriteMethod = defaultWriteMethod
	}
}

func (c *Config) validate() error {
	var errs []error
	for _, m := range []string{c.ReadMethod, c.WriteMethod} {
		if !token.IsIdentifier(m) || m == "_" {
			errs = append(errs, fmt.Errorf("invalid method name %q", m))
		}
	}
	if c.ReadMethod == c.WriteMethod {
		errs = append(errs, fmt.Errorf("read and write methods are both named %q", c.ReadMethod))
	}
	for _, t := range c.Types {
		if !token.IsIdentifier(t) {
			errs = append(errs, fmt.Errorf("invalid type name %q", t))
		}
	}
	return errors.Join(errs...)
}
