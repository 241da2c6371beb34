// internal/console/console.go
//
// Terminal capability used by the game.
// The game never touches os.Stdin/os.Stdout directly; it is handed a Console
// so tests can script input and capture output.

package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console reads and writes whole lines.
// ReadLine returns io.EOF once the input is exhausted.
type Console interface {
	WriteLine(line string) error
	ReadLine() (string, error)
}

// stdio is a Console over an arbitrary reader/writer pair.
type stdio struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdio builds a Console reading lines from in and writing to out.
func NewStdio(in io.Reader, out io.Writer) Console {
	return &stdio{in: bufio.NewReader(in), out: out}
}

func (s *stdio) WriteLine(line string) error {
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

// ReadLine returns the next line without its terminator. Lines have no
// length limit. A trailing \r (CRLF terminals) is dropped; nothing else is
// trimmed. A final line without a newline is returned before io.EOF.
func (s *stdio) ReadLine() (string, error) {
	line, err := s.in.ReadString('\n')
	switch {
	case err == io.EOF && line == "":
		return "", io.EOF
	case err != nil && err != io.EOF:
		return "", fmt.Errorf("read line: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
