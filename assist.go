// assist.go
//
// CLI assist mode for a game played elsewhere (a real board, a friend's
// puzzle): the solver prints its suggested guess, the user types the
// feedback the game showed, and the loop continues until the game ends.
//
// Feedback is entered as one glyph per letter: G = green, Y = yellow,
// . = grey. Typos are re-prompted; q or EOF aborts.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/liliblazquez/wordlesolver/internal/solver"
)

// runAssist drives one interactive assisted game on stdin/stdout.
func runAssist(sv *solver.Solver) {
	reader := bufio.NewReader(os.Stdin)
	run := sv.NewRun()

	fmt.Printf("Assist mode: enter feedback as %d glyphs (G=green, Y=yellow, .=grey), q to quit.\n", sv.Length())

	for run.State() == solver.StateGuessing {
		colorstring.Printf("Round %d — try [bold]%s[reset]\n", run.Round()+1, strings.ToUpper(run.Guess()))

		fb, ok := readFeedback(reader, sv.Length())
		if !ok {
			run.MarkStuck()
			break
		}
		if err := run.Advance(fb); err != nil {
			if errors.Is(err, solver.ErrBadFeedback) {
				fmt.Printf("Expected %d glyphs from G, Y, . — try again.\n", sv.Length())
				continue
			}
			// Inconsistent with a confirmed position; nothing sensible left to suggest.
			fmt.Println("That feedback contradicts an earlier round. Stopping.")
			break
		}
		if n := run.Remaining(); n > 0 && n <= 8 && run.State() == solver.StateGuessing {
			fmt.Printf("%d candidates left: %s\n", n, strings.Join(run.Candidates(), ", "))
		}
	}

	switch run.State() {
	case solver.StateSolved:
		colorstring.Printf("[green]Solved[reset] in %d rounds.\n", run.Round())
	case solver.StateExhausted:
		colorstring.Println("[red]Out of rounds.")
	default:
		colorstring.Println("[red]Stuck — no consistent guesses remain.")
	}
}

// readFeedback reads and normalizes one feedback line. Returns ok=false on
// quit or EOF.
func readFeedback(reader *bufio.Reader, n int) (solver.Feedback, bool) {
	fmt.Print("Feedback: ")
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false
	}
	line = strings.TrimSpace(line)
	if line == "" || strings.EqualFold(line, "q") {
		return "", false
	}
	// Be forgiving about case and common grey glyphs.
	line = strings.ToUpper(line)
	line = strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', 'B', 'X':
			return '.'
		}
		return r
	}, line)
	return solver.Feedback(line), true
}
