// internal/words/words.go
//
// Secret word selection.
//
// Responsibilities:
//   - Load the fixed candidate list from the embedded assets/words.txt once.
//   - Validate every candidate as a game.SecretWord.
//   - Pick one candidate using an injected IndexSource.
//
// The list is fixed at build time; there is no runtime override.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/game"
)

var ErrEmptyList = errors.New("words: candidate list is empty")

var (
	initOnce   sync.Once
	candidates []game.SecretWord
	initialErr error
)

// Init loads the candidate list exactly once, logging through the global
// zerolog logger.
func Init() error {
	initOnce.Do(func() {
		candidates, initialErr = load(assets.WordList, log.Logger)
	})
	return initialErr
}

// load validates every entry returned by read.
func load(read func() ([]assets.Entry, error), logger zerolog.Logger) ([]game.SecretWord, error) {
	entries, err := read()
	if err != nil {
		return nil, fmt.Errorf("words: read list: %w", err)
	}
	out := make([]game.SecretWord, 0, len(entries))
	for _, e := range entries {
		w, err := game.NewSecretWord(e.Word)
		if err != nil {
			return nil, fmt.Errorf("words: %s:%d: %q: %w", assets.WordsFile, e.Line, e.Word, err)
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	logger.Debug().Int("candidates", len(out)).Msg("word list loaded")
	return out, nil
}

// Candidates returns a copy of the loaded list (empty before Init).
func Candidates() []game.SecretWord {
	return append([]game.SecretWord(nil), candidates...)
}

// IndexSource yields a pseudo-random index in [0, n) for n > 0.
type IndexSource interface {
	NextIndexBelow(n int) int
}

// CryptoSource draws indices from crypto/rand.
type CryptoSource struct{}

func (CryptoSource) NextIndexBelow(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken.
		panic(fmt.Sprintf("words: crypto/rand: %v", err))
	}
	return int(nBig.Int64())
}

// Pick selects one candidate using src. Init must have succeeded.
func Pick(src IndexSource) (game.SecretWord, error) {
	return pickFrom(candidates, src)
}

func pickFrom(list []game.SecretWord, src IndexSource) (game.SecretWord, error) {
	if len(list) == 0 {
		return game.SecretWord{}, ErrEmptyList
	}
	i := src.NextIndexBelow(len(list))
	if i < 0 || i >= len(list) {
		return game.SecretWord{}, fmt.Errorf("words: index %d out of range [0, %d)", i, len(list))
	}
	return list[i], nil
}
