// main.go
//
// Entry point for the Wordle solver.
// Modes (-mode flag):
//   serve  — HTTP service with solve sessions and gated benchmark endpoints.
//   play   — solve one game against the local engine, board printed per round.
//   assist — interactive: prints suggested guesses, reads real-game feedback
//            from stdin.
//   bench  — play every answer in the vocabulary, persist results to SQLite.
//
// Configuration is env-first (godotenv loads .env in development); flags
// cover per-invocation options.

package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/liliblazquez/wordlesolver/internal/bench"
	"github.com/liliblazquez/wordlesolver/internal/httpserver"
	"github.com/liliblazquez/wordlesolver/internal/solver"
	"github.com/liliblazquez/wordlesolver/internal/store"
	"github.com/liliblazquez/wordlesolver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		mode   = flag.String("mode", "play", "serve | play | assist | bench")
		answer = flag.String("answer", "", `hidden answer for play mode: a word, "daily", or empty for random`)
	)
	flag.Parse()

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	sv, err := newSolver()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure solver")
	}

	switch *mode {
	case "serve":
		runServe(sv)
	case "play":
		runPlay(sv, pickAnswer(*answer))
	case "assist":
		runAssist(sv)
	case "bench":
		runBench(sv)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

// newSolver builds the shared Solver from the loaded vocabularies and env
// tuning. Configuration errors are fatal; no game starts on bad lists.
func newSolver() (*solver.Solver, error) {
	var opts []solver.Option
	if v := os.Getenv("OPENING_GUESS"); v != "" {
		opts = append(opts, solver.WithOpening(v))
	}
	if v := os.Getenv("MAX_ROUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatal().Str("MAX_ROUNDS", v).Msg("bad MAX_ROUNDS")
		}
		opts = append(opts, solver.WithMaxRounds(n))
	}
	return solver.New(words.Answers(), words.Allowed(), opts...)
}

// pickAnswer resolves the -answer flag: empty → random, "daily" → today's
// deterministic word, anything else is used as-is.
func pickAnswer(v string) string {
	switch v {
	case "":
		return words.RandomAnswer()
	case "daily":
		return words.DailyAnswer(time.Now(), getEnv("DAILY_SALT", "wordlesolver"))
	default:
		return v
	}
}

// runServe wires the HTTP service. The database is optional: without
// DB_PATH the benchmark endpoints report 503 and everything else works.
func runServe(sv *solver.Solver) {
	var benchStore *bench.Store
	if dsn := os.Getenv("DB_PATH"); dsn != "" {
		db, err := openDB(dsn)
		if err != nil {
			log.Fatal().Err(err).Str("dsn", dsn).Msg("open database")
		}
		if err := migrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
		benchStore = bench.NewStore(db)
	}

	srv := httpserver.New(sv, store.NewMemoryStore(), benchStore)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting solver service")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// runBench plays every answer with a progress bar and persists results when
// DB_PATH is configured.
func runBench(sv *solver.Solver) {
	var st *bench.Store
	if dsn := getEnv("DB_PATH", "./data/solver.db"); dsn != "" {
		db, err := openDB(dsn)
		if err != nil {
			log.Fatal().Err(err).Str("dsn", dsn).Msg("open database")
		}
		if err := migrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
		st = bench.NewStore(db)
	}

	sum, err := bench.Run(context.Background(), sv, words.Answers(), st, true)
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark aborted")
	}
	printBenchSummary(sum)
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
