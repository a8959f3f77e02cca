// Package config loads syx settings from YAML or TOML files and the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/syxpack/syx-go/pkg/digest"
	"github.com/syxpack/syx-go/pkg/sysex"
)

// Environment overrides.
const (
	EnvLogLevel   = "SYX_LOG_LEVEL"
	EnvDigest     = "SYX_DIGEST"
	EnvReceiveDir = "SYX_RECEIVE_DIR"
)

// DefaultPrompt is the interactive receive prompt.
const DefaultPrompt = "syx> "

// Config holds syx settings. Zero-valued fields fall back to Default().
type Config struct {
	LogLevel string        `yaml:"log_level" toml:"log_level"`
	Digest   string        `yaml:"digest" toml:"digest"`
	Dangling string        `yaml:"dangling" toml:"dangling"`
	Registry string        `yaml:"registry" toml:"registry"`
	Receive  ReceiveConfig `yaml:"receive" toml:"receive"`
	Split    SplitConfig   `yaml:"split" toml:"split"`
}

// ReceiveConfig configures the receive command.
type ReceiveConfig struct {
	Dir        string `yaml:"dir" toml:"dir"`
	Prompt     string `yaml:"prompt" toml:"prompt"`
	CaptureLog string `yaml:"capture_log" toml:"capture_log"`
}

// SplitConfig configures the split command.
type SplitConfig struct {
	Dir string `yaml:"dir" toml:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Digest:   digest.MD5.String(),
		Dangling: sysex.DanglingDrop.String(),
		Receive: ReceiveConfig{
			Prompt: DefaultPrompt,
		},
	}
}

// Load reads path on top of Default() and validates the result. The format
// follows the extension: .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	case ".toml":
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("config %s: unsupported extension %q (want .yaml, .yml or .toml)", path, ext)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// fillDefaults restores defaults for keys a file set to empty strings.
func (c *Config) fillDefaults() {
	def := Default()
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = def.LogLevel
	}
	if strings.TrimSpace(c.Digest) == "" {
		c.Digest = def.Digest
	}
	if strings.TrimSpace(c.Dangling) == "" {
		c.Dangling = def.Dangling
	}
	if c.Receive.Prompt == "" {
		c.Receive.Prompt = def.Receive.Prompt
	}
}

// ApplyEnv overrides settings from the environment. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(getenv(EnvDigest)); v != "" {
		c.Digest = v
	}
	if v := strings.TrimSpace(getenv(EnvReceiveDir)); v != "" {
		c.Receive.Dir = v
	}
}

// Validate checks that enumerated settings parse.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.DigestAlgorithm(); err != nil {
		return err
	}
	if _, err := c.DanglingPolicy(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// DigestAlgorithm returns the configured digest algorithm.
func (c Config) DigestAlgorithm() (digest.Algorithm, error) {
	return digest.ParseAlgorithm(c.Digest)
}

// DanglingPolicy returns the configured splitter policy.
func (c Config) DanglingPolicy() (sysex.DanglingPolicy, error) {
	return sysex.ParseDanglingPolicy(c.Dangling)
}
