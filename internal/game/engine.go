// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Hold an immutable snapshot of (player, word, guessed letters).
//   - Derive failure count and win/loss from the snapshot.
//   - Produce a new snapshot per guess; the old one stays valid.
//   - Classify a transition (old state, new state, guess) into an Outcome.
//
// Notes:
//   - The game is lost once more than MaxFailures distinct wrong letters
//     have been guessed, so FailuresCount never exceeds MaxFailures+1 in a
//     running game.
package game

// MaxFailures is the number of wrong letters a player may guess and still
// be in the game. The next wrong letter loses.
const MaxFailures = 5

// State is a value snapshot of one point in a game. Copying a State is safe;
// AddGuess never writes to the receiver's backing storage.
type State struct {
	player  PlayerName
	word    SecretWord
	guessed []Letter // insertion order, no duplicates
}

// NewState returns the initial state with an empty guess set.
func NewState(player PlayerName, word SecretWord) State {
	return State{player: player, word: word}
}

func (s State) Player() PlayerName { return s.player }
func (s State) Word() SecretWord   { return s.word }

// Guessed returns a copy of the guessed letters in the order they were first guessed.
func (s State) Guessed() []Letter {
	out := make([]Letter, len(s.guessed))
	copy(out, s.guessed)
	return out
}

// HasGuessed reports whether l is already in the guess set.
func (s State) HasGuessed(l Letter) bool {
	for _, g := range s.guessed {
		if g == l {
			return true
		}
	}
	return false
}

// AddGuess returns a new state with l added to the guess set.
// Guessing a letter twice leaves the set unchanged.
func (s State) AddGuess(l Letter) State {
	if s.HasGuessed(l) {
		return s
	}
	next := make([]Letter, len(s.guessed), len(s.guessed)+1)
	copy(next, s.guessed)
	return State{
		player:  s.player,
		word:    s.word,
		guessed: append(next, l),
	}
}

// FailuresCount is the number of guessed letters that are not in the word.
func (s State) FailuresCount() int {
	n := 0
	for _, g := range s.guessed {
		if !s.word.Contains(g) {
			n++
		}
	}
	return n
}

// PlayerWon reports whether every distinct letter of the word has been guessed.
func (s State) PlayerWon() bool {
	for l := range s.word.Distinct() {
		if !s.HasGuessed(l) {
			return false
		}
	}
	return true
}

// PlayerLost reports whether the failure threshold has been exceeded.
func (s State) PlayerLost() bool {
	return s.FailuresCount() > MaxFailures
}

// Classify maps a transition to its Outcome. The checks run in a fixed order:
// a repeated guess is judged against the old state, win and loss against the
// new one.
func Classify(prev, next State, guess Letter) Outcome {
	switch {
	case prev.HasGuessed(guess):
		return OutcomeUnchanged
	case next.PlayerWon():
		return OutcomeWon
	case next.PlayerLost():
		return OutcomeLost
	case prev.word.Contains(guess):
		return OutcomeCorrect
	default:
		return OutcomeIncorrect
	}
}
