package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HANGMAN_LOG_LEVEL", "")
	t.Setenv("HANGMAN_LOG_FORMAT", "")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.Equal(t, FormatConsole, cfg.LogFormat)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("HANGMAN_LOG_LEVEL", "DEBUG")
	t.Setenv("HANGMAN_LOG_FORMAT", "json")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("HANGMAN_LOG_LEVEL", "error")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "", "")
	flags.String("log-format", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level=info"}))

	v := New()
	require.NoError(t, BindFlags(v, flags))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
		errMsg string
	}{
		{name: "bad level", level: "loud", format: "console", errMsg: KeyLogLevel},
		{name: "bad format", level: "info", format: "xml", errMsg: "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HANGMAN_LOG_LEVEL", tt.level)
			t.Setenv("HANGMAN_LOG_FORMAT", tt.format)

			_, err := Load(New())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
