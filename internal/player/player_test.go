package player

import (
	"errors"
	"go-hangman/internal/state"
	"math/rand"
	"slices"
	"testing"
)

func runningView() state.GameState {
	return state.GameState{
		WordToGuess:      "_E_O_S",
		Phase:            state.PhaseRunning,
		Guesses:          []string{"E", "O", "S", "A"},
		IncorrectGuesses: []string{"A"},
	}
}

func remaining(view state.GameState) []state.GuessAction {
	var actions []state.GuessAction
	for _, l := range state.Alphabet {
		if !slices.Contains(view.Guesses, l) {
			actions = append(actions, state.GuessAction{Letter: l})
		}
	}
	return actions
}

func TestRandom_SelectAction_ReturnsValidChoice(t *testing.T) {
	view := runningView()
	actions := remaining(view)
	p := NewRandom(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		selected, err := p.SelectAction(view, actions)
		if err != nil {
			t.Fatalf("SelectAction returned error: %v", err)
		}
		if !slices.Contains(actions, selected) {
			t.Fatalf("Selected %v is not one of the legal actions", selected)
		}
	}
}

func TestRandom_SelectAction_Deterministic(t *testing.T) {
	view := runningView()
	actions := remaining(view)

	a := NewRandom(rand.NewSource(42))
	b := NewRandom(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		x, _ := a.SelectAction(view, actions)
		y, _ := b.SelectAction(view, actions)
		if x != y {
			t.Fatalf("Same seed gave different picks at turn %d: %v vs %v", i, x, y)
		}
	}
}

func TestRandom_SelectAction_NoActions(t *testing.T) {
	p := NewRandom(rand.NewSource(1))

	_, err := p.SelectAction(runningView(), nil)
	if !errors.Is(err, ErrNoActions) {
		t.Errorf("Expected ErrNoActions, got %v", err)
	}
	if err.Error() != "there are no actions to choose from" {
		t.Errorf("Unexpected error message: %q", err.Error())
	}
}

func TestFrequency_SelectAction(t *testing.T) {
	view := runningView()
	actions := remaining(view)

	selected, err := Frequency{}.SelectAction(view, actions)
	if err != nil {
		t.Fatalf("SelectAction returned error: %v", err)
	}
	// E, O, S and A are gone; T is the next most common letter.
	if selected.Letter != "T" {
		t.Errorf("Expected 'T', got %q", selected.Letter)
	}

	only := []state.GuessAction{{Letter: "Q"}, {Letter: "Z"}}
	selected, _ = Frequency{}.SelectAction(view, only)
	if selected.Letter != "Q" {
		t.Errorf("Expected 'Q' before 'Z', got %q", selected.Letter)
	}

	if _, err := (Frequency{}).SelectAction(view, nil); !errors.Is(err, ErrNoActions) {
		t.Errorf("Expected ErrNoActions, got %v", err)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"random", false},
		{"", false},
		{"Frequency", false},
		{"genius", true},
	}

	for _, tt := range tests {
		p, err := ByName(tt.name, rand.NewSource(1))
		if (err != nil) != tt.wantErr {
			t.Errorf("ByName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if !tt.wantErr && p == nil {
			t.Errorf("ByName(%q) returned nil player", tt.name)
		}
	}
}
