// Package config loads runtime configuration for the jobdeck CLI.
//
// Sources and precedence, later wins:
//
//  1. Built-in defaults (see setDefaults).
//  2. Optional YAML config file, passed explicitly via --config.
//  3. Environment variables with the JOBDECK_ prefix, dots mapped to
//     underscores (e.g. JOBDECK_SERVER_BASE_URL).
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config holds runtime settings for the jobdeck CLI.
type Config struct {
	// ServerBaseURL is the Job Platform REST endpoint, scheme included.
	ServerBaseURL string `mapstructure:"server_base_url"`

	// SessionDBPath is the sqlite file holding the persisted session.
	SessionDBPath string `mapstructure:"session_db_path"`

	// LogJSON switches log output from console encoding to JSON lines.
	LogJSON bool `mapstructure:"log_json"`

	// ChatTypingDelay is the simulated latency before each assistant reply.
	ChatTypingDelay time.Duration `mapstructure:"chat_typing_delay"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_base_url", "http://localhost:8080")
	v.SetDefault("session_db_path", "jobdeck.db")
	v.SetDefault("log_json", false)
	v.SetDefault("chat_typing_delay", 500*time.Millisecond)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("JOBDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load builds the configuration from defaults, an optional YAML file, and
// the environment. An empty configPath skips the file source; a non-empty
// path must exist and parse.
func Load(configPath string) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if cfg.ServerBaseURL == "" {
		return nil, errors.New("server_base_url must not be empty")
	}
	return &cfg, nil
}
