// Package config loads binspect's configuration from defaults, an optional
// TOML file and BINSPECT_-prefixed environment variables, in that priority
// order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/binstreamio/binstream/internal/codec/prim"
)

// Config holds the tool-level defaults. Per-invocation flags override these.
type Config struct {
	// ByteOrder is the default byte order for peek: "big" or "little".
	ByteOrder string `mapstructure:"byte_order"`
	// HexdumpWidth is the number of bytes per hexdump row.
	HexdumpWidth int `mapstructure:"hexdump_width"`
	// HexdumpLength is the default number of bytes a hexdump shows.
	HexdumpLength int `mapstructure:"hexdump_length"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("byte_order", "big")
	v.SetDefault("hexdump_width", 16)
	v.SetDefault("hexdump_length", 256)
}

// Load reads the configuration. path may be empty, in which case only a
// binspect.toml in the working directory is considered, and its absence is
// fine; a path given explicitly must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("binspect")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("BINSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := prim.ParseByteOrder(c.ByteOrder); err != nil {
		return fmt.Errorf("invalid byte_order: %w", err)
	}
	if c.HexdumpWidth <= 0 {
		return fmt.Errorf("hexdump_width must be positive, got %d", c.HexdumpWidth)
	}
	if c.HexdumpLength < 0 {
		return fmt.Errorf("hexdump_length must not be negative, got %d", c.HexdumpLength)
	}
	return nil
}

// Order returns the configured default byte order.
func (c *Config) Order() prim.ByteOrder {
	o, err := prim.ParseByteOrder(c.ByteOrder)
	if err != nil {
		return prim.BigEndian
	}
	return o
}
