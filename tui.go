package main

import (
	"context"
	"errors"
	"fmt"
	"go-hangman/internal/game"
	"go-hangman/internal/scoring"
	"go-hangman/internal/state"
	"go-hangman/internal/words"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

var (
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // wrong letters, losses
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // right letters, wins
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
	gallowsStyle = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
)

type model struct {
	session *game.Session
	score   *scoring.Scoring
	input   textinput.Model
	message string
}

func newModel(sess *game.Session) *model {
	ti := textinput.New()
	ti.Placeholder = "?"
	ti.Prompt = "Your guess: "
	ti.CharLimit = 1
	ti.Width = 2
	ti.Focus()

	return &model{
		session: sess,
		score:   scoring.New(),
		input:   ti,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

		// Any key leaves the summary.
		if m.session.IsFinished() {
			return m, tea.Quit
		}

		// Any key moves on from a finished word.
		if m.session.CurrentGame.Finished() {
			if err := m.session.Update(); err != nil {
				m.message = err.Error()
			} else {
				m.message = ""
			}
			m.input.Reset()
			return m, nil
		}

		if msg.Type == tea.KeyEnter {
			m.guess()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) guess() {
	letter := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if letter == "" {
		return
	}

	g := m.session.CurrentGame
	err := g.Apply(state.GuessAction{Letter: letter})
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		m.message = redStyle.Render(fmt.Sprintf("%q is not a letter you can guess.", letter))
		return
	case err != nil:
		m.message = redStyle.Render(err.Error())
		return
	}

	s := g.State()
	if s.InWord(letter) {
		m.score.ScoreEvent(scoring.RightLetter)
	} else {
		m.score.ScoreEvent(scoring.WrongLetter)
	}

	if g.Finished() {
		m.score.FinishRound(s.WordToGuess, s.Won(), state.MaxIncorrectGuesses-len(s.IncorrectGuesses))
	}

	switch {
	case s.Won():
		m.message = greenStyle.Render("You got it! Press any key to continue.")
	case s.Lost():
		m.message = redStyle.Render(fmt.Sprintf("Hanged! The word was %s. Press any key to continue.", s.WordToGuess))
	case s.InWord(letter):
		m.message = greenStyle.Render(fmt.Sprintf("%s is in the word.", strings.ToUpper(letter)))
	default:
		m.message = redStyle.Render(fmt.Sprintf("No %s.", strings.ToUpper(letter)))
	}
}

func (m *model) View() string {
	if m.session.IsFinished() {
		summary := fmt.Sprintf("Words: %d | Solved: %d | Hanged: %d | Score: %d",
			m.session.Rounds(), m.session.Wins, m.session.Losses, m.score.Total())
		style := greenStyle
		if m.session.Losses > m.session.Wins {
			style = redStyle
		}

		var b strings.Builder
		b.WriteString(style.Render(summary))
		b.WriteString("\n")
		if best := m.score.GetHighScore(); best != nil && m.session.Rounds() > 1 {
			b.WriteString(fmt.Sprintf("Best word: %s (%d)\n", best.Word, best.Score))
		}
		b.WriteString("Press any key to quit.\n")
		return b.String()
	}

	g := m.session.CurrentGame
	view := g.PlayerView(0)
	if g.Finished() {
		view = g.State()
	}

	var b strings.Builder

	b.WriteString(boldStyle.Render(fmt.Sprintf("HANGMAN  word %d/%d", m.session.CurrentIndex+1, m.session.Rounds())))
	b.WriteString("\n")
	b.WriteString(gallowsStyle.Render(strings.TrimRight(state.Gallows(len(view.IncorrectGuesses)), "\n")))
	b.WriteString("\n\n")
	b.WriteString(boldStyle.Render(strings.Join(strings.Split(view.WordToGuess, ""), " ")))
	b.WriteString("\n\n")
	b.WriteString("Guessed: " + m.renderGuesses(view))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("WRONG: %d/%d | SCORE: %d | SOLVED: %d | HANGED: %d",
		len(view.IncorrectGuesses), state.MaxIncorrectGuesses, m.score.CurrentScore, m.session.Wins, m.session.Losses)))
	b.WriteString("\n\n")

	if !g.Finished() {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(m.message)
		b.WriteString("\n")
	}

	return b.String()
}

func (m *model) renderGuesses(view state.GameState) string {
	letters := make([]string, 0, len(view.Guesses))
	for _, l := range view.Guesses {
		if slices.Contains(view.IncorrectGuesses, l) {
			letters = append(letters, redStyle.Render(l))
		} else {
			letters = append(letters, greenStyle.Render(l))
		}
	}
	return strings.Join(letters, " ")
}

func runPlay(ctx context.Context, cfg *Config, logger zerolog.Logger) error {
	list, err := cfg.wordList()
	if err != nil {
		return err
	}

	picked, err := words.PickN(list, cfg.rounds, cfg.rng())
	if err != nil {
		return err
	}

	sess, err := game.NewSession(picked, nil)
	if err != nil {
		return err
	}

	m := newModel(sess)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}

	logger.Debug().
		Int("words", sess.Rounds()).
		Int("solved", sess.Wins).
		Int("hanged", sess.Losses).
		Int("score", m.score.Total()).
		Msg("session ended")
	return nil
}
