package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/engine"
	"github.com/pearstopher/chess/pkg/eval"
)

type Config struct {
	TestPath string
	Depth    int
	Level    int
	Weights  string
	FEN      string
}

var errNoCommand = errors.New("usage: tactics tactic|benchmark|eval [flags]")

// parseArgs reads "<command> [flags]". Every command has its own flag set,
// so a flag another command owns is an error.
func parseArgs(args []string, output io.Writer) (string, Config, error) {
	if len(args) == 0 {
		return "", Config{}, errNoCommand
	}
	var command = args[0]
	var config = Config{
		TestPath: mapPath("~/chess/tests/tests.epd"),
		Level:    int(eval.LevelMaterial),
	}

	var flagset = flag.NewFlagSet(command, flag.ContinueOnError)
	flagset.SetOutput(output)
	flagset.StringVar(&config.Weights, "weights", "", "JSON file with heuristic divisors")
	switch command {
	case "tactic", "benchmark":
		config.Depth = 3
		if command == "benchmark" {
			config.Depth = 4
		}
		flagset.StringVar(&config.TestPath, "testpath", config.TestPath, "EPD file with best moves")
		flagset.IntVar(&config.Depth, "depth", config.Depth, "search depth in plies")
		flagset.IntVar(&config.Level, "level", config.Level, "heuristic level (1-3)")
	case "eval":
		config.Level = int(eval.LevelMobility)
		flagset.StringVar(&config.FEN, "fen", board.InitialPositionFen, "position to evaluate")
		flagset.IntVar(&config.Level, "level", config.Level, "heuristic level (1-3)")
	default:
		return "", Config{}, fmt.Errorf("unknown command %q: %w", command, errNoCommand)
	}

	if err := flagset.Parse(args[1:]); err != nil {
		return "", Config{}, err
	}
	if flagset.NArg() != 0 {
		return "", Config{}, fmt.Errorf("%v: unexpected arguments %v", command, flagset.Args())
	}
	if _, err := eval.ParseLevel(config.Level); err != nil {
		return "", Config{}, err
	}
	if command != "eval" && (config.Depth < 1 || config.Depth > engine.MaxHeight) {
		return "", Config{}, fmt.Errorf("depth out of range: %v", config.Depth)
	}
	return command, config, nil
}

func (config Config) weights() (eval.Weights, error) {
	if config.Weights == "" {
		return eval.DefaultWeights(), nil
	}
	return eval.LoadWeights(config.Weights)
}
