package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lukehollenback/huobi/constants"
	"github.com/lukehollenback/huobi/exchange/huobi"
	"github.com/spf13/viper"
)

const EnvPrefix = "HUOBI"

//
// Config holds the settings of the command-line tool. Values come from (in increasing order of
// precedence) the defaults below, an optional YAML file, and HUOBI_* environment variables.
//
type Config struct {
	Host        string        `mapstructure:"host"`
	Key         string        `mapstructure:"key"`
	Secret      string        `mapstructure:"secret"`
	Timeout     time.Duration `mapstructure:"timeout"`
	JournalSize int           `mapstructure:"journal_size"`
	Format      string        `mapstructure:"format"`
}

//
// Load reads the configuration. An empty path skips the configuration file.
//
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("host", huobi.DefaultHost)
	v.SetDefault("key", "")
	v.SetDefault("secret", "")
	v.SetDefault("timeout", constants.DefaultTimeout)
	v.SetDefault("journal_size", constants.DefaultJournalSize)
	v.SetDefault("format", "table")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

//
// Validate reports the first setting that cannot be used.
//
func (o *Config) Validate() error {
	if !strings.HasPrefix(o.Host, "http://") && !strings.HasPrefix(o.Host, "https://") {
		return fmt.Errorf("host %q must start with http:// or https://", o.Host)
	}

	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive but was %s", o.Timeout)
	}

	if (o.Key == "") != (o.Secret == "") {
		return fmt.Errorf("key and secret must be provided together")
	}

	return nil
}
