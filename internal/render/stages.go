// internal/render/stages.go
//
// ASCII-art gallows, one stage per failure count (0 through 6).

package render

import "fmt"

// Stages is indexed by failure count. Stage 0 is the empty gallows and the
// last stage is the complete figure.
var Stages = [...]string{
	`  +---+
  |   |
      |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// Stage returns the art for the given failure count.
// A count outside the table means the loss rule was bypassed; it panics.
func Stage(failures int) string {
	if failures < 0 || failures >= len(Stages) {
		panic(fmt.Sprintf("render: no stage for failure count %d (have %d stages)", failures, len(Stages)))
	}
	return Stages[failures]
}
