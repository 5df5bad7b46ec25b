// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("WCORR_LOG_LEVEL", "")
	t.Setenv("WCORR_FORMAT", "")
	t.Setenv("WCORR_ALPHA", "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, &Config{LogLevel: defaultLogLevel, Format: formatYAML}, cfg)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "log_level: debug\nformat: TEXT\nheader: true\nalpha: 0.1\n")
	t.Setenv("WCORR_LOG_LEVEL", "")
	t.Setenv("WCORR_FORMAT", "")
	t.Setenv("WCORR_ALPHA", "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, &Config{LogLevel: "debug", Format: formatText, Header: true, Alpha: 0.1}, cfg)

	t.Setenv("WCORR_LOG_LEVEL", "warn")
	t.Setenv("WCORR_FORMAT", "yaml")
	t.Setenv("WCORR_ALPHA", "0.05")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, formatYAML, cfg.Format)
	require.Equal(t, 0.05, cfg.Alpha)
	require.True(t, cfg.Header)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv("WCORR_FORMAT", "")

	_, err := LoadConfig(writeFile(t, "bad.yaml", "alpha: [not a number\n"))
	require.ErrorContains(t, err, "failed to parse config file")

	_, err = LoadConfig(writeFile(t, "fmt.yaml", "format: csv\n"))
	require.ErrorIs(t, err, errUnknownFormat)

	_, err = LoadConfig("/nonexistent/wcorr.yaml")
	require.ErrorContains(t, err, "failed to read config file")
}

func TestFlagsOverrideConfig(t *testing.T) {
	t.Setenv("WCORR_FORMAT", "")
	path := writeFile(t, "cfg.yaml", "format: text\nheader: true\n")

	out, err := run(t, sampleCSV, "--config", path, "compute", "--data", "-")
	require.NoError(t, err)
	require.Contains(t, out, "CORRELATION")

	out, err = run(t, sampleCSV, "--config", path, "compute", "--data", "-", "--format", "yaml")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, decode(t, out).Variables)
}

func TestLoadConfigMalformedAlphaEnv(t *testing.T) {
	var buf bytes.Buffer
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	t.Setenv("WCORR_LOG_LEVEL", "")
	t.Setenv("WCORR_FORMAT", "")
	t.Setenv("WCORR_ALPHA", "0,05")

	cfg, err := LoadConfig(writeFile(t, "cfg.yaml", "alpha: 0.1\n"))
	require.NoError(t, err)
	require.Equal(t, 0.1, cfg.Alpha, "file value survives a malformed override")
	require.Contains(t, buf.String(), `"level":"warn"`)
	require.Contains(t, buf.String(), "WCORR_ALPHA")
	require.Contains(t, buf.String(), "0,05")
}
