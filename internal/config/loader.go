package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all service settings.
const envPrefix = "CLAIMSCOUT"

// newViper builds a pre-configured viper instance: YAML config type,
// CLAIMSCOUT_ env prefix, automatic env binding, and a "." to "_" replacer so
// nested keys like "openai.api_key" resolve to CLAIMSCOUT_OPENAI_API_KEY.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Every settable key needs a registered default so that AutomaticEnv
	// overrides reach Unmarshal even when no config file mentions the key.
	for _, key := range []string{
		"server.port", "server.read_timeout", "server.write_timeout",
		"server.idle_timeout", "server.max_body_size", "server.shutdown_timeout",
		"log.level", "log.format", "log.output_paths", "log.error_output_paths",
		"cors.allowed_origins", "cors.allowed_methods", "cors.allowed_headers", "cors.max_age",
		"search.top_k",
		"openai.api_key", "openai.base_url", "openai.model",
		"openai.temperature", "openai.timeout", "openai.max_retries",
		"pdf.enabled",
		"metrics.enabled", "metrics.path",
	} {
		v.SetDefault(key, nil)
	}
	return v
}

// Load reads the YAML file at configPath, merges CLAIMSCOUT_* environment
// overrides, applies defaults for unset fields, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from CLAIMSCOUT_* environment
// variables, with no config file required. Preferred for containerised
// deployments.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath and invokes onChange with the newly parsed Config
// whenever the file changes on disk. Intended for hot-reloading non-critical
// settings such as log level; callers apply only the safe subset at runtime.
// A change that fails to parse or validate is skipped without a callback.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad wraps Load and panics on error. For use in main() where a config
// failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
