package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Defaults returns the hard-coded settings tier
func Defaults() Settings {
	return Settings{
		Interval:          DefaultInterval,
		VerifyCertificate: DefaultVerifyCertificate,
	}
}

// LoadFile reads the config file tier. A missing, unreadable or malformed
// file is logged and treated as an empty layer.
func LoadFile(configPath string, logger zerolog.Logger) Layer {
	if configPath == "" {
		return Layer{}
	}

	if _, err := os.Stat(configPath); err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Config file does not exist")
		return Layer{}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if !isSupportedExt(configPath) {
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load config file")
		return Layer{}
	}

	var layer Layer
	if err := v.Unmarshal(&layer); err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to parse config file")
		return Layer{}
	}

	logger.Debug().Str("path", v.ConfigFileUsed()).Msg("Loaded config file")
	return layer
}

// isSupportedExt reports whether viper can infer the format from the file extension
func isSupportedExt(configPath string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(configPath), "."))
	return ext != "" && slices.Contains(viper.SupportedExts, ext)
}

// Build merges defaults, the config file and command-line overrides, in that order
func Build(defaults Settings, file, overrides Layer) Settings {
	settings := defaults
	file.applyTo(&settings)
	overrides.applyTo(&settings)
	settings.Host = strings.TrimSpace(settings.Host)
	return settings
}

// Validate checks if the settings are usable
func (s Settings) Validate() error {
	if s.Host == "" {
		return ErrHostRequired
	}

	if s.Interval < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidInterval, s.Interval)
	}

	return nil
}
