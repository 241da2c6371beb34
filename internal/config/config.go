// internal/config/config.go
//
// Runtime settings for the hangman binary.
//
// Sources, highest precedence first:
//   1. command-line flags bound with BindFlags
//   2. HANGMAN_* environment variables (a .env file is loaded into the
//      environment by main before Load runs)
//   3. defaults below

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "HANGMAN"

	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds validated settings.
type Config struct {
	LogLevel  zerolog.Level
	LogFormat string
}

// New returns a viper instance with defaults and env bindings applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, FormatConsole)
	return v
}

// BindFlags binds --log-level and --log-format to their keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		KeyLogLevel:  "log-level",
		KeyLogFormat: "log-format",
	} {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(v.GetString(KeyLogLevel)))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyLogLevel, err)
	}
	format := strings.ToLower(v.GetString(KeyLogFormat))
	switch format {
	case FormatConsole, FormatJSON:
	default:
		return Config{}, fmt.Errorf("config: %s: unknown format %q (want %s or %s)", KeyLogFormat, format, FormatConsole, FormatJSON)
	}
	return Config{LogLevel: lvl, LogFormat: format}, nil
}
