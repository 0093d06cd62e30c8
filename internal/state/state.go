package state

import (
	"slices"
	"strings"
	"unicode"
)

// MaxIncorrectGuesses is the number of wrong letters that ends a game.
const MaxIncorrectGuesses = 8

// Placeholder replaces unrevealed letters in a masked word.
const Placeholder = '_'

// Alphabet is the fixed set of letters a player may guess, in order.
var Alphabet = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// Phase is the coarse lifecycle stage of a single game.
type Phase string

const (
	PhaseSetup    Phase = "setup"    // before the game has started
	PhaseRunning  Phase = "running"  // while the game is running
	PhaseFinished Phase = "finished" // won or lost, terminal
)

func (p Phase) String() string {
	return string(p)
}

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseSetup, PhaseRunning, PhaseFinished:
		return true
	}
	return false
}

// GuessAction is a single letter guess.
type GuessAction struct {
	Letter string `json:"letter"`
}

// GameState is the complete record of one game. It is mutated only by the
// engine in internal/game; callers get copies.
type GameState struct {
	WordToGuess      string   `json:"word_to_guess"`
	Phase            Phase    `json:"phase"`
	Guesses          []string `json:"guesses"`
	IncorrectGuesses []string `json:"incorrect_guesses"`
}

// Clone returns a deep copy of s.
func (s GameState) Clone() GameState {
	c := s
	c.Guesses = append([]string{}, s.Guesses...)
	c.IncorrectGuesses = append([]string{}, s.IncorrectGuesses...)
	return c
}

// HasGuessed reports whether letter (already uppercase) has been guessed.
func (s GameState) HasGuessed(letter string) bool {
	return slices.Contains(s.Guesses, letter)
}

// InWord reports whether letter occurs in the word, ignoring case.
func (s GameState) InWord(letter string) bool {
	return letter != "" && strings.Contains(strings.ToUpper(s.WordToGuess), strings.ToUpper(letter))
}

// Covered reports whether every letter of the word has been guessed.
// Characters outside the alphabet (spaces, hyphens) never need guessing.
func (s GameState) Covered() bool {
	for _, r := range s.WordToGuess {
		if !unicode.IsLetter(r) {
			continue
		}
		if !s.HasGuessed(strings.ToUpper(string(r))) {
			return false
		}
	}
	return true
}

// Won reports a finished game where the word was fully uncovered.
func (s GameState) Won() bool {
	return s.Phase == PhaseFinished && len(s.IncorrectGuesses) < MaxIncorrectGuesses && s.Covered()
}

// Lost reports a finished game that was not won.
func (s GameState) Lost() bool {
	return s.Phase == PhaseFinished && !s.Won()
}

// Masked returns the word with every unguessed letter replaced by Placeholder.
func (s GameState) Masked() string {
	var b strings.Builder
	for _, r := range s.WordToGuess {
		if unicode.IsLetter(r) && !s.HasGuessed(strings.ToUpper(string(r))) {
			b.WriteRune(Placeholder)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsLetter reports whether ch is a single letter from Alphabet.
func IsLetter(ch string) bool {
	return len(ch) == 1 && ch[0] >= 'A' && ch[0] <= 'Z'
}
