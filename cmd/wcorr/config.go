// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel = "info"
	defaultFormat   = formatYAML
)

const (
	formatYAML = "yaml"
	formatText = "text"
)

// Config holds the CLI settings that may come from a YAML file.
type Config struct {
	LogLevel string  `yaml:"log_level"`
	Format   string  `yaml:"format"`
	Header   bool    `yaml:"header"`
	Alpha    float64 `yaml:"alpha"`
}

// LoadConfig reads path when it is non-empty, applies WCORR_* environment
// overrides and fills defaults. A missing file is an error only when a path
// was given explicitly.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.Format == "" {
		cfg.Format = defaultFormat
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if lvl := os.Getenv("WCORR_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if format := os.Getenv("WCORR_FORMAT"); format != "" {
		cfg.Format = format
	}
	if alpha := os.Getenv("WCORR_ALPHA"); alpha != "" {
		val, err := strconv.ParseFloat(alpha, 64)
		if err != nil {
			log.Warn().Err(err).Str("WCORR_ALPHA", alpha).Msg("ignoring malformed env override")
			return
		}
		cfg.Alpha = val
	}
}

var errUnknownFormat = errors.New("wcorr: unknown output format")

func (c *Config) validate() error {
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case formatYAML, formatText:
		return nil
	default:
		return fmt.Errorf("%w %q (want %s|%s)", errUnknownFormat, c.Format, formatYAML, formatText)
	}
}
