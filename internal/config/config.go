package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the contents of fun.yaml. Command-line flags override it.
type Config struct {
	Path string `yaml:"-"`

	LogLevel     string `yaml:"log_level"`
	Encoding     string `yaml:"encoding"`
	MaxCallDepth int    `yaml:"max_call_depth"`
	Color        string `yaml:"color"`
}

func Default() *Config {
	return &Config{
		LogLevel:     "warn",
		Encoding:     EncodingUTF8,
		MaxCallDepth: 0,
		Color:        ColorAuto,
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	cfg.Path = abs
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", abs, err)
	}
	return cfg, nil
}

// Find returns the config file that sits next to sourcePath, or "" if none.
func Find(sourcePath string) string {
	candidate := filepath.Join(filepath.Dir(sourcePath), ConfigFileName)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Encoding = CanonicalEncoding(c.Encoding)
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
}

func (c *Config) Validate() error {
	c.normalize()
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if !isSupportedEncoding(c.Encoding) {
		return fmt.Errorf("unsupported encoding %q (supported: %s)", c.Encoding, strings.Join(SupportedEncodings, ", "))
	}
	if c.MaxCallDepth < 0 {
		return fmt.Errorf("max_call_depth must not be negative, got %d", c.MaxCallDepth)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q", c.Color)
	}
	return nil
}

func isSupportedEncoding(name string) bool {
	for _, enc := range SupportedEncodings {
		if enc == name {
			return true
		}
	}
	return false
}
