// play.go
//
// CLI play mode: the solver plays one full game against the local engine
// and the board is printed round by round with colored feedback.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/rs/zerolog/log"

	"github.com/liliblazquez/wordlesolver/internal/bench"
	"github.com/liliblazquez/wordlesolver/internal/game"
	"github.com/liliblazquez/wordlesolver/internal/solver"
	"github.com/liliblazquez/wordlesolver/internal/words"
)

// runPlay solves one game against a hidden answer and prints the board.
func runPlay(sv *solver.Solver, answer string) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if !words.IsAllowed(answer) {
		log.Fatal().Str("answer", answer).Msg("answer not in word list")
	}

	client := game.NewLocal(answer)
	res, err := sv.Play(context.Background(), client)
	if err != nil {
		log.Error().Err(err).Msg("game ended stuck")
	}

	for i, rd := range res.History {
		fmt.Printf("%d  %s  (%d candidates left)\n", i+1, colorBoardRow(rd.Guess, rd.Feedback), rd.Remaining)
	}
	switch res.Outcome {
	case solver.StateSolved:
		colorstring.Printf("[green]Solved[reset] %q in %d rounds\n", answer, res.Rounds)
	case solver.StateExhausted:
		colorstring.Printf("[red]Out of rounds[reset] — the answer was %q\n", answer)
	default:
		colorstring.Printf("[red]Stuck[reset] after %d rounds — the answer was %q\n", res.Rounds, answer)
	}
}

// colorBoardRow renders one guess with Wordle tile colors.
func colorBoardRow(guess string, fb solver.Feedback) string {
	var b strings.Builder
	for i := 0; i < len(guess); i++ {
		letter := strings.ToUpper(string(guess[i]))
		switch fb[i] {
		case solver.MarkHit:
			b.WriteString(colorstring.Color("[green]" + letter))
		case solver.MarkPresent:
			b.WriteString(colorstring.Color("[yellow]" + letter))
		default:
			b.WriteString(colorstring.Color("[dark_gray]" + letter))
		}
	}
	return b.String()
}

// printBenchSummary renders the bench mode result.
func printBenchSummary(sum *bench.Summary) {
	fmt.Printf("run %s: %d played, %d solved, %d exhausted, %d stuck\n",
		sum.RunID, sum.Played, sum.Solved, sum.Exhausted, sum.Stuck)
	if sum.Solved > 0 {
		fmt.Printf("average rounds per solve: %.3f\n", sum.AvgRounds)
	}
}
