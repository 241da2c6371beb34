// internal/session/session.go
//
// Drives one interactive game from name prompt to win or loss.
//
// Turn procedure while playing:
//   render → read guess → add guess → classify → message → next turn.
//
// The session owns exactly one game.State at a time and replaces it every
// turn; earlier states are never consulted again.

package session

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/render"
	"github.com/robalobadob/hangman/internal/words"
)

// Result is the terminal outcome of a session.
type Result struct {
	Outcome game.Outcome // OutcomeWon or OutcomeLost
	Final   game.State
	Turns   int
}

// Session wires the game to its I/O capabilities.
type Session struct {
	console console.Console
	source  words.IndexSource
	log     zerolog.Logger
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the logger used for turn diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New constructs a Session. Logging is disabled unless WithLogger is given.
func New(c console.Console, src words.IndexSource, opts ...Option) *Session {
	s := &Session{console: c, source: src, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run asks for the player's name, picks the secret word and plays until the
// game is won or lost. The word list must already be loaded (words.Init).
func (s *Session) Run() (Result, error) {
	name, err := console.PromptName(s.console)
	if err != nil {
		return Result{}, err
	}
	word, err := words.Pick(s.source)
	if err != nil {
		return Result{}, err
	}
	s.log.Debug().Int("word_len", word.Len()).Msg("game started")
	return s.Play(game.NewState(name, word))
}

// Play runs turns starting from state until a terminal outcome.
func (s *Session) Play(state game.State) (Result, error) {
	for turn := 1; ; turn++ {
		if err := render.Render(s.console, state); err != nil {
			return Result{}, err
		}
		guess, err := console.PromptGuess(s.console)
		if err != nil {
			return Result{}, err
		}

		next := state.AddGuess(guess)
		outcome := game.Classify(state, next, guess)
		state = next

		s.log.Debug().
			Int("turn", turn).
			Str("outcome", string(outcome)).
			Int("failures", state.FailuresCount()).
			Msg("guess applied")

		switch outcome {
		case game.OutcomeWon:
			err = s.console.WriteLine(fmt.Sprintf("Congratulations %s, you guessed the word!", state.Player()))
			return Result{Outcome: outcome, Final: state, Turns: turn}, err
		case game.OutcomeLost:
			if err := s.console.WriteLine(fmt.Sprintf("Sorry %s, you lost! The word was %s.", state.Player(), state.Word())); err != nil {
				return Result{}, err
			}
			err = render.Render(s.console, state)
			return Result{Outcome: outcome, Final: state, Turns: turn}, err
		case game.OutcomeCorrect:
			err = s.console.WriteLine("Correct!")
		case game.OutcomeIncorrect:
			err = s.console.WriteLine("Wrong guess!")
		case game.OutcomeUnchanged:
			err = s.console.WriteLine(fmt.Sprintf("You already guessed '%s'.", guess))
		}
		if err != nil {
			return Result{}, err
		}
	}
}
