package console

import (
	"fmt"

	"github.com/robalobadob/hangman/internal/game"
)

const (
	NamePrompt   = "What's your name?"
	GuessPrompt  = "What's your next guess?"
	InvalidInput = "Invalid input, please try again."
)

// PromptName asks for the player's name until a non-empty line is entered.
func PromptName(c Console) (game.PlayerName, error) {
	return promptUntil(c, NamePrompt, game.NewPlayerName)
}

// PromptGuess asks for a single letter until a valid one is entered.
func PromptGuess(c Console) (game.Letter, error) {
	return promptUntil(c, GuessPrompt, game.NewLetter)
}

// promptUntil retries without bound on validation failures.
// I/O errors end the loop.
func promptUntil[T any](c Console, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		if err := c.WriteLine(prompt); err != nil {
			return zero, fmt.Errorf("prompt: %w", err)
		}
		line, err := c.ReadLine()
		if err != nil {
			return zero, fmt.Errorf("prompt: %w", err)
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		if err := c.WriteLine(InvalidInput); err != nil {
			return zero, fmt.Errorf("prompt: %w", err)
		}
	}
}
