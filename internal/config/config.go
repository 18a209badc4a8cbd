package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "UV2BREW"

// Config holds the runtime settings of a conversion.
type Config struct {
	// Verbose enables debug tracing on stderr.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from v: bound flags first, then UV2BREW_*
// environment variables, then defaults.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}
