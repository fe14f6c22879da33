// internal/bench/bench.go
//
// Benchmark runner: plays the solver against every answer in the vocabulary
// using the local game engine and records per-answer results. Used by
// `-mode bench` and the gated POST /bench/run endpoint.

package bench

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/liliblazquez/wordlesolver/internal/game"
	"github.com/liliblazquez/wordlesolver/internal/solver"
)

// Summary aggregates one benchmark run.
type Summary struct {
	RunID     string  `json:"runId"`
	Played    int     `json:"played"`
	Solved    int     `json:"solved"`
	Exhausted int     `json:"exhausted"`
	Stuck     int     `json:"stuck"`
	AvgRounds float64 `json:"avgRounds"` // over solved games only
}

// Run plays every answer once. Results are stored when st is non-nil; a
// progress bar is shown when progress is set (CLI mode). The context is
// checked between games so a long run can be abandoned.
func Run(ctx context.Context, s *solver.Solver, answers []string, st *Store, progress bool) (*Summary, error) {
	sum := &Summary{RunID: runID()}

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(int64(len(answers)))
	}

	var solvedRounds int
	for _, ans := range answers {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		start := time.Now()
		res, err := s.Play(ctx, game.NewLocal(ans))
		if err != nil {
			log.Warn().Err(err).Str("answer", ans).Msg("benchmark game ended stuck")
		}

		sum.Played++
		switch res.Outcome {
		case solver.StateSolved:
			sum.Solved++
			solvedRounds += res.Rounds
		case solver.StateExhausted:
			sum.Exhausted++
		default:
			sum.Stuck++
		}

		if st != nil {
			r := Result{
				RunID:     sum.RunID,
				Answer:    ans,
				Outcome:   string(res.Outcome),
				Rounds:    res.Rounds,
				ElapsedMs: int(time.Since(start).Milliseconds()),
			}
			if err := st.InsertResult(ctx, r); err != nil {
				log.Warn().Err(err).Str("answer", ans).Msg("insert bench result")
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if sum.Solved > 0 {
		sum.AvgRounds = float64(solvedRounds) / float64(sum.Solved)
	}
	log.Info().
		Str("runId", sum.RunID).
		Int("played", sum.Played).
		Int("solved", sum.Solved).
		Int("exhausted", sum.Exhausted).
		Int("stuck", sum.Stuck).
		Float64("avgRounds", sum.AvgRounds).
		Msg("benchmark finished")
	return sum, nil
}

// runID returns a compact hex identifier for one benchmark run.
func runID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
