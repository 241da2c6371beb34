package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X main.version=1.2.0"
var (
	programName = "hangman"
	version     = "0.1.0-dev"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		log.Fatal().Err(err).Msg("hangman exited")
	}
}
