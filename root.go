package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/words"
)

// newRootCmd builds the single command of the binary. Any arguments other
// than the flags below are ignored and the game starts.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var verbose bool
	v := config.New()

	cmd := &cobra.Command{
		Use:     programName,
		Short:   "Guess the secret word one letter at a time",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = zerolog.DebugLevel
			}
			setupLogging(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := words.Init(); err != nil {
				return err
			}
			s := session.New(
				console.NewStdio(in, out),
				words.CryptoSource{},
				session.WithLogger(log.Logger),
			)
			res, err := s.Run()
			if err != nil {
				return err
			}
			log.Info().
				Str("outcome", string(res.Outcome)).
				Int("turns", res.Turns).
				Msg("game over")
			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.SetOut(out)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	cmd.Flags().String("log-format", config.FormatConsole, "log output format (console, json)")

	// cobra answers a true "help" flag with usage text; this one never reads true,
	// so --help and -h start the game like any other unknown argument.
	help := cmd.Flags().VarPF(discardBool{}, "help", "h", "")
	help.NoOptDefVal = "true"
	help.Hidden = true

	return cmd
}

// discardBool is a bool flag value that accepts and drops every setting.
type discardBool struct{}

func (discardBool) String() string   { return "false" }
func (discardBool) Set(string) error { return nil }
func (discardBool) Type() string     { return "bool" }

// setupLogging points the global zerolog logger at stderr.
func setupLogging(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogFormat == config.FormatJSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
