// Package config loads toolkit configuration: hardcoded defaults, then an
// optional YAML file, then environment variable overrides; later layers win.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Abraxas-365/corekit/pkg/errx"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the env var pointing at the optional YAML config file.
const EnvConfigFile = "COREKIT_CONFIG"

// Config aggregates all module configurations.
type Config struct {
	Cachex CachexConfig `yaml:"cachex"`
	Retry  RetryConfig  `yaml:"retry"`
}

// Load builds the configuration: defaults, then the YAML file named by
// COREKIT_CONFIG (if set), then env overrides.
func Load() (*Config, error) {
	cfg := &Config{
		Cachex: defaultCachexConfig(),
		Retry:  defaultRetryConfig(),
	}

	if path := getEnv(EnvConfigFile, ""); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errx.Wrapf(err, errx.TypeValidation, "config: cannot read %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errx.Wrapf(err, errx.TypeValidation, "config: cannot parse %s", path)
		}
	}

	cfg.Cachex.applyEnv()
	cfg.Retry.applyEnv()
	return cfg, nil
}

// MustLoad is Load for program start-up, where a broken config is fatal.
func MustLoad() *Config {
	return errx.MustCall(Load)
}

// Duration is a time.Duration that yaml decodes from strings like "30s".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return errx.Wrapf(err, errx.TypeValidation, "config: invalid duration %q", node.Value)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// ─── env getters ──────────────────────────────────────────────────────────────

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvUint64(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.ToLower(v) == "true" || v == "1"
	}
	return def
}
