// Package config loads the server settings.
//
// Every field has a default that matches the built-in behavior, so the server
// runs without any configuration file. A file, when given, may be TOML or YAML
// and only needs to set the fields it overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort         = 3000
	DefaultBaseDir      = "web"
	DefaultIndexFile    = "index.html"
	DefaultFallbackFile = "graph.json"
)

var (
	// ErrUnknownFormat is returned for config files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("unknown config format")
	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("invalid config")
)

// Config holds the server settings.
type Config struct {
	// Port is the TCP port the server listens on.
	Port int `toml:"port" yaml:"port"`
	// BaseDir is the directory most assets are served from.
	BaseDir string `toml:"base_dir" yaml:"base_dir"`
	// AltDir is consulted for FallbackFile only. Empty means BaseDir/../output.
	AltDir string `toml:"alt_dir" yaml:"alt_dir"`
	// IndexFile is served for "/".
	IndexFile string `toml:"index_file" yaml:"index_file"`
	// FallbackFile is the one request path (without the leading slash) that
	// may be answered from AltDir.
	FallbackFile string `toml:"fallback_file" yaml:"fallback_file"`
	// StrictPaths makes requests that resolve outside BaseDir answer 404.
	StrictPaths bool `toml:"strict_paths" yaml:"strict_paths"`
}

// Default returns the built-in settings.
func Default() Config {
	c := Config{
		Port:         DefaultPort,
		BaseDir:      DefaultBaseDir,
		IndexFile:    DefaultIndexFile,
		FallbackFile: DefaultFallbackFile,
	}
	c.AltDir = DefaultAltDir(c.BaseDir)
	return c
}

// DefaultAltDir returns the "output" directory next to baseDir.
func DefaultAltDir(baseDir string) string {
	return filepath.Join(baseDir, "..", "output")
}

// Load returns the defaults overridden by the file at path.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &c); err != nil {
			return Config{}, fmt.Errorf("decode toml %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("decode yaml %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.BaseDir == "" {
		c.BaseDir = DefaultBaseDir
	}
	// derived after BaseDir so an overridden base moves the fallback with it
	if c.AltDir == "" {
		c.AltDir = DefaultAltDir(c.BaseDir)
	}
	if c.IndexFile == "" {
		c.IndexFile = DefaultIndexFile
	}
	if c.FallbackFile == "" {
		c.FallbackFile = DefaultFallbackFile
	}
}

// Validate checks the settings for values the server cannot run with.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Port)
	}
	if c.BaseDir == "" {
		return fmt.Errorf("%w: base_dir is empty", ErrInvalid)
	}
	if strings.ContainsAny(c.FallbackFile, `/\`) {
		return fmt.Errorf("%w: fallback_file %q must be a bare file name", ErrInvalid, c.FallbackFile)
	}
	return nil
}

// Addr returns the listen address for http.ListenAndServe.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
