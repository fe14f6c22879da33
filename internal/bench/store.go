// internal/bench/store.go
//
// SQLite-backed store for benchmark evaluation results: one row per answer
// played in one benchmark run. This is evaluation data about the solver, not
// game history — live sessions are never persisted.

package bench

import (
	"context"
	"database/sql"
)

// Result is one answer's outcome within a benchmark run.
type Result struct {
	RunID     string `json:"runId"`
	Answer    string `json:"answer"`
	Outcome   string `json:"outcome"` // solved | exhausted | stuck
	Rounds    int    `json:"rounds"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Store wraps the bench_results table.
type Store struct{ db *sql.DB }

// NewStore builds a Store over an opened database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// InsertResult records one answer's result.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bench_results(run_id, answer, outcome, rounds, elapsed_ms)
		 VALUES(?,?,?,?,?)`, r.RunID, r.Answer, r.Outcome, r.Rounds, r.ElapsedMs,
	)
	return err
}

// HardRow is one row of the hardest-words report.
type HardRow struct {
	Answer  string `json:"answer"`
	Outcome string `json:"outcome"`
	Rounds  int    `json:"rounds"`
}

// Hardest returns the words the solver struggled with most across all runs:
// unsolved outcomes first, then by rounds taken, descending.
func (s *Store) Hardest(ctx context.Context, limit int) ([]HardRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT answer, outcome, MAX(rounds) AS r
		 FROM bench_results
		 GROUP BY answer, outcome
		 ORDER BY (outcome = 'solved') ASC, r DESC, answer ASC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []HardRow
	for rows.Next() {
		var r HardRow
		if err := rows.Scan(&r.Answer, &r.Outcome, &r.Rounds); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
