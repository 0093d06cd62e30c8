package state

import (
	"fmt"
	"strings"
)

// String draws the state as plain text: phase, word, the gallows for the
// current number of wrong guesses and both guess listings. The output is
// stable for a given state.
func (s GameState) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Phase: %s\nWord to guess: %s\n", s.Phase, s.WordToGuess)
	b.WriteString(Gallows(len(s.IncorrectGuesses)))
	fmt.Fprintf(&b, "All guesses: %s\n", strings.Join(s.Guesses, " "))
	fmt.Fprintf(&b, "Incorrect guesses: %s\n", strings.Join(s.IncorrectGuesses, " "))

	return b.String()
}

// Gallows returns the stick figure for wrong incorrect guesses. Body parts
// appear one by one from the second wrong guess on; the rope is drawn last.
func Gallows(wrong int) string {
	if wrong == 0 {
		return "\n\n\n\n\n\n _\n"
	}

	part := func(min int, ch string) string {
		if wrong > min {
			return ch
		}
		return " "
	}

	var b strings.Builder
	b.WriteString(" _______\n")
	if wrong > 7 {
		b.WriteString(" |/    |\n")
	} else {
		b.WriteString(" |/\n")
	}
	if wrong > 1 {
		b.WriteString(" |     O\n")
	} else {
		b.WriteString(" |\n")
	}
	fmt.Fprintf(&b, " |    %s%s%s\n", part(3, "/"), part(2, "|"), part(4, `\`))
	fmt.Fprintf(&b, " |    %s %s\n", part(5, "/"), part(6, `\`))
	b.WriteString(" |_\n")

	return b.String()
}
