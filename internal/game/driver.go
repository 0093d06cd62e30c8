package game

import (
	"context"
	"fmt"
	"go-hangman/internal/player"
	"go-hangman/internal/state"
)

// NotifyFunc receives the masked view and the legal actions before every
// turn and once more when the game is over.
type NotifyFunc func(view state.GameState, actions []state.GuessAction) error

// Play runs the turn loop for g until it is finished or no legal action is
// left: show the view, let p choose, apply the choice. Errors from the
// player or the engine end the loop.
func Play(ctx context.Context, g *Game, p player.Player, observer int, notify NotifyFunc) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		view := g.PlayerView(observer)
		actions := g.LegalActions()

		if notify != nil {
			if err := notify(view, actions); err != nil {
				return fmt.Errorf("notify: %w", err)
			}
		}

		if view.Phase == state.PhaseFinished || len(actions) == 0 {
			return nil
		}

		action, err := p.SelectAction(view, actions)
		if err != nil {
			return fmt.Errorf("select action: %w", err)
		}

		if err := g.Apply(action); err != nil {
			return fmt.Errorf("apply %q: %w", action.Letter, err)
		}
	}
}
