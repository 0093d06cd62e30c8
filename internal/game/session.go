package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNoMoreWords is returned by NextGame once every word has been played.
var ErrNoMoreWords = errors.New("no more words")

// Session plays several words in a row and keeps score.
type Session struct {
	Words        []string
	CurrentIndex int
	CurrentGame  *Game

	Wins   int
	Losses int
}

// NewSession starts a session on the first of words. When rng is non-nil the
// words are shuffled first.
func NewSession(words []string, rng *rand.Rand) (*Session, error) {
	s := &Session{
		Words: append([]string{}, words...),
	}

	if rng != nil {
		rng.Shuffle(len(s.Words), func(i, j int) {
			s.Words[i], s.Words[j] = s.Words[j], s.Words[i]
		})
	}

	if err := s.NextGame(); err != nil {
		return nil, err
	}

	return s, nil
}

// NextGame starts a new game for the word at CurrentIndex.
func (s *Session) NextGame() error {
	if s.CurrentIndex >= len(s.Words) {
		return ErrNoMoreWords
	}

	g, err := NewWithWord(s.Words[s.CurrentIndex])
	if err != nil {
		return fmt.Errorf("word #%d: %w", s.CurrentIndex+1, err)
	}

	s.CurrentGame = g
	return nil
}

// Update records the result of a finished game and moves on to the next
// word. It does nothing while the current game is still running.
func (s *Session) Update() error {
	if s.CurrentGame == nil || !s.CurrentGame.Finished() {
		return nil
	}

	if s.CurrentGame.State().Won() {
		s.Wins++
	} else {
		s.Losses++
	}

	s.CurrentIndex++
	if s.IsFinished() {
		return nil
	}
	return s.NextGame()
}

// IsFinished reports whether every word has been played.
func (s *Session) IsFinished() bool {
	return s.CurrentIndex >= len(s.Words)
}

// Rounds is the number of words in the session.
func (s *Session) Rounds() int {
	return len(s.Words)
}
