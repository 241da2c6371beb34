package render

import (
	"strings"

	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
)

// Render writes the full screen for s: gallows, revealed word, the blank
// template and the letters guessed so far.
func Render(c console.Console, s game.State) error {
	for _, line := range Lines(s) {
		if err := c.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the screen for s, one entry per output line.
func Lines(s game.State) []string {
	lines := strings.Split(Stage(s.FailuresCount()), "\n")
	return append(lines, WordLine(s), TemplateLine(s.Word()), GuessedLine(s))
}

// WordLine shows each guessed letter padded by spaces and three spaces for
// each letter still hidden.
func WordLine(s game.State) string {
	var b strings.Builder
	for _, l := range s.Word().Letters() {
		if s.HasGuessed(l) {
			b.WriteString(" " + l.String() + " ")
		} else {
			b.WriteString("   ")
		}
	}
	return b.String()
}

// TemplateLine is one " - " per letter of w.
func TemplateLine(w game.SecretWord) string {
	return strings.Repeat(" - ", w.Len())
}

// GuessedLine lists guessed letters in the order they were first guessed.
func GuessedLine(s game.State) string {
	guessed := s.Guessed()
	parts := make([]string, len(guessed))
	for i, l := range guessed {
		parts[i] = l.String()
	}
	return "Guessed: " + strings.Join(parts, ", ")
}
