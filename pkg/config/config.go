// Package config loads timerbar settings from a yaml file, TIMERBAR_*
// environment variables and bound command line flags, in rising priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/anivanovic/timerbar/pkg/timerbar"
)

const (
	envPrefix  = "timerbar"
	configName = ".timerbar"
)

type (
	Config struct {
		Log Log `mapstructure:"log"`
		Bar Bar `mapstructure:"bar"`
	}

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	}

	// Bar holds the bar appearance. The step count always comes from the
	// command line.
	Bar struct {
		Width            int    `mapstructure:"width"`
		Blank            string `mapstructure:"blank"`
		Filled           string `mapstructure:"filled"`
		Left             string `mapstructure:"left"`
		Right            string `mapstructure:"right"`
		Prefix           string `mapstructure:"prefix"`
		Suffix           string `mapstructure:"suffix"`
		FillBeforeAction bool   `mapstructure:"fill_before_action"`
	}
)

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "color")
	v.SetDefault("bar.width", timerbar.DefaultWidth)
	v.SetDefault("bar.blank", timerbar.DefaultBlank)
	v.SetDefault("bar.filled", timerbar.DefaultFilled)
	v.SetDefault("bar.left", timerbar.DefaultLeftBorder)
	v.SetDefault("bar.right", timerbar.DefaultRightBorder)
	v.SetDefault("bar.prefix", "")
	v.SetDefault("bar.suffix", "")
	v.SetDefault("bar.fill_before_action", false)
}

// Read loads the config file at path. With an empty path it looks for
// .timerbar.yaml in $HOME and the working directory and is fine with
// finding nothing.
func Read(v *viper.Viper, path string) error {
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")
	v.SetConfigName(configName)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load resolves the final configuration from v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Timerbar returns the bar configuration for a process of totalSteps.
func (b Bar) Timerbar(totalSteps int) timerbar.Config {
	return timerbar.Config{
		TotalSteps:       totalSteps,
		BarWidth:         b.Width,
		BlankGlyph:       b.Blank,
		FilledGlyph:      b.Filled,
		LeftBorder:       b.Left,
		RightBorder:      b.Right,
		PrefixText:       b.Prefix,
		SuffixText:       b.Suffix,
		FillBeforeAction: b.FillBeforeAction,
	}
}
