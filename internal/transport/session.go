// Package transport relays a single game to a remote client: every turn the
// client receives the masked state and the legal actions, and answers with
// the letter it wants to guess.
package transport

import (
	"context"
	"fmt"
	"go-hangman/internal/game"
	"go-hangman/internal/player"
	"go-hangman/internal/state"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Conn is a JSON message connection. *websocket.Conn satisfies it.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
}

// Message types.
const (
	TypeUpdate = "update"
	TypeAction = "action"
	TypeError  = "error"
)

// ViewState is the masked game state plus what the client may do next.
type ViewState struct {
	state.GameState
	ObserverIndex int                 `json:"observer_index"`
	LegalActions  []state.GuessAction `json:"legal_actions"`
}

// UpdateMessage is sent before every turn and once the game is over.
type UpdateMessage struct {
	Type  string    `json:"type"` // "update"
	State ViewState `json:"state"`
}

// ClientMessage is what the client sends; only "action" is understood.
type ClientMessage struct {
	Type   string             `json:"type"`
	Action *state.GuessAction `json:"action,omitempty"`
}

// ErrorMessage tells the client its last action was not accepted.
type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

// Serve plays g with the client on conn until the game is finished, the
// client goes away or ctx is cancelled.
func Serve(ctx context.Context, conn Conn, g *game.Game, observer int, logger zerolog.Logger) error {
	remote := &remotePlayer{ctx: ctx, conn: conn, logger: logger}

	err := game.Play(ctx, g, remote, observer, func(view state.GameState, actions []state.GuessAction) error {
		return conn.WriteJSON(UpdateMessage{
			Type: TypeUpdate,
			State: ViewState{
				GameState:     view,
				ObserverIndex: observer,
				LegalActions:  actions,
			},
		})
	})
	if err != nil {
		return err
	}

	s := g.State()
	logger.Info().
		Str("word", s.WordToGuess).
		Bool("won", s.Won()).
		Int("guesses", len(s.Guesses)).
		Msg("game finished")
	return nil
}

// remotePlayer waits for the client to pick one of the legal actions.
type remotePlayer struct {
	ctx    context.Context
	conn   Conn
	logger zerolog.Logger
}

func (p *remotePlayer) SelectAction(_ state.GameState, actions []state.GuessAction) (state.GuessAction, error) {
	if len(actions) == 0 {
		return state.GuessAction{}, player.ErrNoActions
	}

	for {
		if err := p.ctx.Err(); err != nil {
			return state.GuessAction{}, err
		}

		var msg ClientMessage
		if err := p.conn.ReadJSON(&msg); err != nil {
			return state.GuessAction{}, fmt.Errorf("read action: %w", err)
		}

		if msg.Type != TypeAction || msg.Action == nil {
			p.logger.Debug().Str("type", msg.Type).Msg("ignoring message")
			continue
		}

		action := state.GuessAction{Letter: strings.ToUpper(strings.TrimSpace(msg.Action.Letter))}
		if !slices.Contains(actions, action) {
			p.logger.Debug().Str("letter", msg.Action.Letter).Msg("rejected guess")
			err := p.conn.WriteJSON(ErrorMessage{
				Type:    TypeError,
				Message: fmt.Sprintf("%q is not a letter you can guess", msg.Action.Letter),
			})
			if err != nil {
				return state.GuessAction{}, fmt.Errorf("write error: %w", err)
			}
			continue
		}

		p.logger.Debug().Str("letter", action.Letter).Msg("guess")
		return action, nil
	}
}
