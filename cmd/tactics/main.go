package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pearstopher/chess/internal/tactic"
	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/engine"
	"github.com/pearstopher/chess/pkg/eval"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

func main() {
	var err = run(os.Args[1:])
	if err != nil {
		logger.Error().Err(err).Msg("tactics failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	var command, config, err = parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}
	weights, err := config.weights()
	if err != nil {
		return err
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	switch command {
	case "tactic":
		return runSolveTactic(ctx, config.TestPath, newEngine(config.Level, weights), config.Depth)
	case "benchmark":
		return runBenchmark(ctx, config.TestPath, newEngine(config.Level, weights), config.Depth)
	case "eval":
		var level, _ = eval.ParseLevel(config.Level)
		return runTraceEval(config.FEN, eval.NewEvaluationService(level, weights))
	}
	return nil
}

func newEngine(level int, weights eval.Weights) *engine.Engine {
	var eng = engine.NewEngine()
	eng.Level = level
	eng.Weights = weights
	eng.Prepare()
	return eng
}

func runSolveTactic(ctx context.Context, path string, eng *engine.Engine, depth int) error {
	logger.Info().Str("filepath", path).Int("depth", depth).Msg("solveTactic started")
	defer logger.Info().Msg("solveTactic finished")

	var tests, err = tactic.LoadEpd(path, logger)
	if err != nil {
		return err
	}
	res, err := tactic.SolveTactic(ctx, tests, eng, depth, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Solved %v of %v\n", res.Solved, res.Total)
	return nil
}

func runBenchmark(ctx context.Context, path string, eng *engine.Engine, depth int) error {
	logger.Info().Str("filepath", path).Int("depth", depth).Msg("benchmark started")
	defer logger.Info().Msg("benchmark finished")

	var tests, err = tactic.LoadEpd(path, logger)
	if err != nil {
		return err
	}
	var start = time.Now()
	res, err := tactic.SolveTactic(ctx, tests, eng, depth, zerolog.Nop())
	if err != nil {
		return err
	}
	var elapsed = time.Since(start)
	fmt.Println("Time", elapsed)
	fmt.Println("Nodes", res.Nodes)
	fmt.Println("kNPS", res.Nodes/(elapsed.Milliseconds()+1))
	return nil
}

func mapPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		curUser, err := user.Current()
		if err != nil {
			return path
		}
		return filepath.Join(curUser.HomeDir, strings.TrimPrefix(path, "~/"))
	}
	if strings.HasPrefix(path, "./") {
		var exePath, err = os.Executable()
		if err != nil {
			return path
		}
		return filepath.Join(filepath.Dir(exePath), strings.TrimPrefix(path, "./"))
	}
	return path
}
