package assets

import (
	"embed"
	"strings"
)

//go:embed words.txt
var FS embed.FS

// WordsFile is the embedded candidate list, one word per line.
const WordsFile = "words.txt"

// Entry is one candidate word and the 1-based line it came from.
type Entry struct {
	Line int
	Word string
}

// WordList returns the candidate words of words.txt. Blank lines and lines
// starting with '#' are skipped; surrounding whitespace is dropped.
func WordList() ([]Entry, error) {
	data, err := FS.ReadFile(WordsFile)
	if err != nil {
		return nil, err
	}
	return parseEntries(string(data)), nil
}

func parseEntries(text string) []Entry {
	var out []Entry
	for i, raw := range strings.Split(text, "\n") {
		w := strings.TrimSpace(raw)
		if w == "" || w[0] == '#' {
			continue
		}
		out = append(out, Entry{Line: i + 1, Word: w})
	}
	return out
}
