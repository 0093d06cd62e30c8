package main

import (
	"context"
	"fmt"
	"go-hangman/internal/game"
	"go-hangman/internal/player"
	"go-hangman/internal/state"
	"go-hangman/internal/words"
	"io"

	"github.com/rs/zerolog"
)

// runAuto lets a computer player guess cfg.rounds words, printing the board
// after every guess.
func runAuto(ctx context.Context, cfg *Config, out io.Writer, logger zerolog.Logger) error {
	list, err := cfg.wordList()
	if err != nil {
		return err
	}

	rng := cfg.rng()
	picked, err := words.PickN(list, cfg.rounds, rng)
	if err != nil {
		return err
	}

	p, err := player.ByName(cfg.strategy, rng)
	if err != nil {
		return err
	}

	var wins int
	for i, word := range picked {
		g := game.New()
		err := g.SetState(state.GameState{WordToGuess: word, Phase: state.PhaseSetup})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, g.PlayerView(0))

		if err := g.Start(); err != nil {
			return err
		}

		turn := 0
		err = game.Play(ctx, g, p, 0, func(view state.GameState, actions []state.GuessAction) error {
			if turn > 0 {
				fmt.Fprintf(out, "%s\n\n", view)
			}
			turn++
			logger.Debug().Int("turn", turn).Str("word", view.WordToGuess).Int("legal", len(actions)).Msg("turn")
			return nil
		})
		if err != nil {
			return err
		}

		s := g.State()
		if s.Won() {
			wins++
			fmt.Fprintf(out, "Solved %q with %d wrong guesses.\n\n", s.WordToGuess, len(s.IncorrectGuesses))
		} else {
			fmt.Fprintf(out, "Hanged! The word was %q.\n\n", s.WordToGuess)
		}
		logger.Info().Int("round", i+1).Str("word", s.WordToGuess).Bool("won", s.Won()).Msg("round finished")
	}

	if len(picked) > 1 {
		fmt.Fprintf(out, "%s solved %d of %d words.\n", cfg.strategy, wins, len(picked))
	}
	return nil
}
