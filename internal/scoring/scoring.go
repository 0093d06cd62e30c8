package scoring

import (
	"sort"
)

// Event is something during a round that changes the score.
type Event string

const (
	RightLetter Event = "rightLetter"
	WrongLetter Event = "wrongLetter"
	WordBonus   Event = "wordBonus"
)

// Round is the result of one finished word.
type Round struct {
	Word  string
	Score int
	Won   bool
}

// Scoring keeps the points of the word being played and of every finished
// word in a session. Nothing is stored between sessions.
type Scoring struct {
	// public
	CurrentScore int
	ErrorCount   int
	Rounds       []Round
	// private
	scoreTable map[Event]int
}

// New returns an empty score sheet.
func New() *Scoring {
	return &Scoring{
		scoreTable: getScoreTable(),
	}
}

// ScoreEvent updates the current score for a given event.
func (s *Scoring) ScoreEvent(event Event) {
	if event == WrongLetter {
		s.ErrorCount++
	}
	s.CurrentScore += s.scoreTable[event]
}

// FinishRound records the current score for word and resets it for the next
// one. A solved word earns the word bonus plus a bonus per unused miss.
func (s *Scoring) FinishRound(word string, won bool, missesLeft int) Round {
	if won {
		s.ScoreEvent(WordBonus)
		s.CurrentScore += missesLeft * s.scoreTable[RightLetter]
	}

	r := Round{Word: word, Score: s.CurrentScore, Won: won}
	s.Rounds = append(s.Rounds, r)

	s.CurrentScore = 0
	s.ErrorCount = 0
	return r
}

// Total is the sum of all finished rounds.
func (s *Scoring) Total() int {
	total := 0
	for _, r := range s.Rounds {
		total += r.Score
	}
	return total
}

// GetHighScore returns the best finished round, or nil before the first one.
func (s *Scoring) GetHighScore() *Round {
	top := s.GetNRounds(1)
	if len(top) == 0 {
		return nil
	}
	return &top[0]
}

// GetNRounds returns the top n rounds, best first.
func (s *Scoring) GetNRounds(n int) []Round {
	// Make a copy to avoid reordering the session log.
	rounds := make([]Round, len(s.Rounds))
	copy(rounds, s.Rounds)

	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].Score > rounds[j].Score
	})

	if len(rounds) < n {
		return rounds
	}
	return rounds[:n]
}

// getScoreTable returns the predefined values for different scoring events.
func getScoreTable() map[Event]int {
	return map[Event]int{
		RightLetter: 25,
		WrongLetter: -50,
		WordBonus:   250,
	}
}
