// internal/game/types.go
//
// Core value types for the hangman engine.
// Defines:
//   - PlayerName: non-empty name entered at the start of a session.
//   - Letter:     a single lowercase ASCII letter guessed by the player.
//   - SecretWord: the lowercase alphabetic word the player must reveal.
//   - Outcome:    classification of a single guess (won/lost/correct/...).
//
// The zero values of PlayerName, Letter and SecretWord are never produced by
// the constructors; use NewPlayerName, NewLetter and NewSecretWord.

package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidName   = errors.New("invalid player name")
	ErrInvalidLetter = errors.New("invalid letter")
	ErrInvalidWord   = errors.New("invalid secret word")
)

// PlayerName is the name the player entered. It is stored as typed.
type PlayerName struct {
	value string
}

// NewPlayerName accepts any non-empty string. No trimming is performed.
func NewPlayerName(s string) (PlayerName, error) {
	if s == "" {
		return PlayerName{}, ErrInvalidName
	}
	return PlayerName{value: s}, nil
}

func (n PlayerName) String() string { return n.value }

// Letter is a single guessed letter, always lowercase a–z.
type Letter struct {
	value rune
}

// NewLetter accepts exactly one ASCII letter (either case) and lowercases it.
func NewLetter(s string) (Letter, error) {
	if utf8.RuneCountInString(s) != 1 {
		return Letter{}, ErrInvalidLetter
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !isLetter(r) {
		return Letter{}, ErrInvalidLetter
	}
	return Letter{value: toLower(r)}, nil
}

func (l Letter) Rune() rune     { return l.value }
func (l Letter) String() string { return string(l.value) }

// SecretWord is a non-empty, all-alphabetic, lowercase word.
type SecretWord struct {
	value string
}

// NewSecretWord rejects empty input or any non-letter, then lowercases s.
func NewSecretWord(s string) (SecretWord, error) {
	if s == "" || !isAlpha(s) {
		return SecretWord{}, ErrInvalidWord
	}
	return SecretWord{value: strings.ToLower(s)}, nil
}

func (w SecretWord) String() string { return w.value }

// Len reports the number of letters in the word.
func (w SecretWord) Len() int { return len(w.value) }

// Contains reports whether l occurs at least once in the word.
func (w SecretWord) Contains(l Letter) bool {
	return strings.ContainsRune(w.value, l.value)
}

// Letters returns the word's letters in order, duplicates included.
func (w SecretWord) Letters() []Letter {
	out := make([]Letter, 0, len(w.value))
	for _, r := range w.value {
		out = append(out, Letter{value: r})
	}
	return out
}

// Distinct returns the set of distinct letters in the word.
func (w SecretWord) Distinct() map[Letter]struct{} {
	set := make(map[Letter]struct{}, len(w.value))
	for _, r := range w.value {
		set[Letter{value: r}] = struct{}{}
	}
	return set
}

// Outcome classifies the effect of a single guess.
type Outcome string

const (
	OutcomeWon       Outcome = "won"
	OutcomeLost      Outcome = "lost"
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeUnchanged Outcome = "unchanged"
)

// isLetter reports whether r is an ASCII letter of either case.
// Non-ASCII letters are rejected.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// isAlpha checks that a string consists only of ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if !isLetter(r) {
			return false
		}
	}
	return true
}
