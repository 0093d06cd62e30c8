// Package player holds strategies that pick the next guess from the legal
// actions of a game.
package player

import (
	"errors"
	"fmt"
	"go-hangman/internal/state"
	"math/rand"
	"slices"
	"strings"
)

// ErrNoActions is returned when a player is asked to choose from nothing.
var ErrNoActions = errors.New("there are no actions to choose from")

// Player selects one of the legal actions for the observed (masked) state.
type Player interface {
	SelectAction(view state.GameState, actions []state.GuessAction) (state.GuessAction, error)
}

// Random picks uniformly among the legal actions.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random player drawing from src.
func NewRandom(src rand.Source) *Random {
	return &Random{rng: rand.New(src)}
}

func (p *Random) SelectAction(_ state.GameState, actions []state.GuessAction) (state.GuessAction, error) {
	if len(actions) == 0 {
		return state.GuessAction{}, ErrNoActions
	}
	return actions[p.rng.Intn(len(actions))], nil
}

// letterFrequency orders the alphabet by how often letters appear in English text.
const letterFrequency = "ETAOINSHRDLCUMWFGYPBVKJXQZ"

// Frequency guesses the most common English letter still available.
type Frequency struct{}

func (Frequency) SelectAction(_ state.GameState, actions []state.GuessAction) (state.GuessAction, error) {
	if len(actions) == 0 {
		return state.GuessAction{}, ErrNoActions
	}
	for _, r := range letterFrequency {
		i := slices.IndexFunc(actions, func(a state.GuessAction) bool {
			return strings.EqualFold(a.Letter, string(r))
		})
		if i >= 0 {
			return actions[i], nil
		}
	}
	return actions[0], nil
}

// ByName returns the strategy called name ("random" or "frequency").
func ByName(name string, src rand.Source) (Player, error) {
	switch strings.ToLower(name) {
	case "random", "":
		return NewRandom(src), nil
	case "frequency":
		return Frequency{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}
