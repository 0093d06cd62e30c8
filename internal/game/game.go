package game

import (
	"context"
	"errors"
	"fmt"
	"go-hangman/internal/state"
	"slices"
	"strings"
	"unicode"

	"github.com/looplab/fsm"
)

var (
	// ErrInvalidGuess is returned for a letter outside the alphabet or one
	// that has already been guessed.
	ErrInvalidGuess = errors.New("invalid or repeated guess")
	// ErrGameFinished is returned when a guess is applied to a finished game.
	ErrGameFinished = errors.New("game is finished")
	// ErrInvalidState is returned by SetState for a malformed state.
	ErrInvalidState = errors.New("invalid game state")
)

const defaultWord = "DEFAULT"

// Game owns exactly one GameState and is the only thing allowed to mutate it.
// A Game is not safe for concurrent use; each session creates its own.
type Game struct {
	state state.GameState
	fsm   *fsm.FSM
}

// New returns a game in the setup phase. The secret word is chosen by the
// caller and installed with SetState.
func New() *Game {
	g := &Game{
		state: state.GameState{
			WordToGuess:      defaultWord,
			Phase:            state.PhaseSetup,
			Guesses:          []string{},
			IncorrectGuesses: []string{},
		},
	}
	g.fsm = fsm.NewFSM(
		string(state.PhaseSetup),
		getPhaseTransitions(),
		getPhaseCallbacks(g),
	)
	return g
}

// NewWithWord returns a running game for word.
func NewWithWord(word string) (*Game, error) {
	g := New()
	err := g.SetState(state.GameState{
		WordToGuess: word,
		Phase:       state.PhaseRunning,
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func getPhaseTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "start", Src: []string{string(state.PhaseSetup)}, Dst: string(state.PhaseRunning)},
		{Name: "finish", Src: []string{string(state.PhaseSetup), string(state.PhaseRunning)}, Dst: string(state.PhaseFinished)},
	}
}

func getPhaseCallbacks(g *Game) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			g.state.Phase = state.Phase(e.Dst)
		},
	}
}

// State returns a copy of the full, unmasked state.
func (g *Game) State() state.GameState {
	return g.state.Clone()
}

// Phase returns the current phase.
func (g *Game) Phase() state.Phase {
	return g.state.Phase
}

// Finished reports whether the game has reached its terminal phase.
func (g *Game) Finished() bool {
	return g.state.Phase == state.PhaseFinished
}

// SetState replaces the owned state after checking that it is well formed.
// Nil guess lists are treated as empty. An incorrect-guess list that misses
// some wrong guesses is accepted; Apply repairs it on the next guess.
func (g *Game) SetState(s state.GameState) error {
	if err := validate(s); err != nil {
		return err
	}
	g.state = s.Clone()
	g.fsm.SetState(string(s.Phase))
	return nil
}

func validate(s state.GameState) error {
	if !s.Phase.Valid() {
		return fmt.Errorf("%w: unknown phase %q", ErrInvalidState, s.Phase)
	}
	if !strings.ContainsFunc(s.WordToGuess, unicode.IsLetter) {
		return fmt.Errorf("%w: word %q has no letters", ErrInvalidState, s.WordToGuess)
	}
	for i, l := range s.Guesses {
		if !state.IsLetter(l) {
			return fmt.Errorf("%w: guess %q is not an uppercase letter", ErrInvalidState, l)
		}
		if slices.Contains(s.Guesses[:i], l) {
			return fmt.Errorf("%w: duplicate guess %q", ErrInvalidState, l)
		}
	}
	for i, l := range s.IncorrectGuesses {
		if !slices.Contains(s.Guesses, l) {
			return fmt.Errorf("%w: incorrect guess %q was never guessed", ErrInvalidState, l)
		}
		if slices.Contains(s.IncorrectGuesses[:i], l) {
			return fmt.Errorf("%w: duplicate incorrect guess %q", ErrInvalidState, l)
		}
	}

	// Count wrong letters from the guesses, since the incorrect list may
	// still be short.
	wrong := 0
	for _, l := range s.Guesses {
		if !s.InWord(l) {
			wrong++
		}
	}
	if wrong > state.MaxIncorrectGuesses {
		return fmt.Errorf("%w: %d wrong guesses, at most %d allowed", ErrInvalidState, wrong, state.MaxIncorrectGuesses)
	}
	if s.Phase != state.PhaseFinished && (wrong == state.MaxIncorrectGuesses || s.Covered()) {
		return fmt.Errorf("%w: a decided game must be in phase %q", ErrInvalidState, state.PhaseFinished)
	}
	return nil
}

// LegalActions returns one action per alphabet letter not yet guessed, in
// alphabet order. It does not look at the phase.
func (g *Game) LegalActions() []state.GuessAction {
	actions := make([]state.GuessAction, 0, len(state.Alphabet))
	for _, letter := range state.Alphabet {
		if !g.state.HasGuessed(letter) {
			actions = append(actions, state.GuessAction{Letter: letter})
		}
	}
	return actions
}

// Apply applies a single guess. The state is left untouched when the guess
// is rejected.
func (g *Game) Apply(action state.GuessAction) error {
	letter := strings.ToUpper(action.Letter)

	if !state.IsLetter(letter) || g.state.HasGuessed(letter) {
		return fmt.Errorf("%w: %q", ErrInvalidGuess, action.Letter)
	}
	if g.Finished() {
		return ErrGameFinished
	}

	// A seeded state may list wrong guesses without recording them as
	// incorrect.
	g.reconcile()

	g.state.Guesses = append(g.state.Guesses, letter)
	if !g.state.InWord(letter) {
		g.state.IncorrectGuesses = append(g.state.IncorrectGuesses, letter)
	}

	if len(g.state.IncorrectGuesses) >= state.MaxIncorrectGuesses || g.state.Covered() {
		if err := g.fsm.Event(context.Background(), "finish"); err != nil {
			return fmt.Errorf("finish game: %w", err)
		}
	}
	return nil
}

func (g *Game) reconcile() {
	for _, l := range g.state.Guesses {
		if !g.state.InWord(l) && !slices.Contains(g.state.IncorrectGuesses, l) {
			g.state.IncorrectGuesses = append(g.state.IncorrectGuesses, l)
		}
	}
}

// Start moves a game from setup to running.
func (g *Game) Start() error {
	return g.fsm.Event(context.Background(), "start")
}

// PlayerView returns a copy of the state that is safe to show the guessing
// player: unguessed letters of the word are replaced with '_'. The guess
// history is public. observer is reserved for multiple observers and does
// not change the result.
func (g *Game) PlayerView(observer int) state.GameState {
	view := g.state.Clone()
	view.WordToGuess = g.state.Masked()
	return view
}
