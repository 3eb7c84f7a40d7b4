package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pearstopher/chess/internal/arena"
	"github.com/pearstopher/chess/pkg/eval"
)

type Config struct {
	PlayerA     arena.PlayerConfig
	PlayerB     arena.PlayerConfig
	Games       int
	Concurrency int
	MaxPlies    int
	Openings    string
	Weights     string
	Output      string
	LogLevel    string
}

var config Config

func main() {
	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	var err = run(logger)
	if err != nil {
		logger.Error().Err(err).Msg("arena failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger) error {
	flag.StringVar(&config.PlayerA.Kind, "a", "minimax", "player A: random, greedy or minimax")
	flag.IntVar(&config.PlayerA.Depth, "adepth", 3, "player A search depth")
	flag.IntVar(&config.PlayerA.Level, "alevel", 1, "player A heuristic level (1-3)")
	flag.StringVar(&config.PlayerB.Kind, "b", "random", "player B: random, greedy or minimax")
	flag.IntVar(&config.PlayerB.Depth, "bdepth", 3, "player B search depth")
	flag.IntVar(&config.PlayerB.Level, "blevel", 1, "player B heuristic level (1-3)")
	flag.IntVar(&config.Games, "games", 10, "number of games")
	flag.IntVar(&config.Concurrency, "concurrency", 4, "number of games played at once")
	flag.IntVar(&config.MaxPlies, "maxplies", 400, "plies after which a game is drawn")
	flag.StringVar(&config.Openings, "openings", "", "file with one starting FEN per line")
	flag.StringVar(&config.Weights, "weights", "", "JSON file with heuristic divisors")
	flag.StringVar(&config.Output, "out", "", "parquet file for game records")
	flag.StringVar(&config.LogLevel, "loglevel", "info", "log level")
	flag.Parse()

	var level, err = zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logger = logger.Level(level)
	logger.Info().Msgf("%+v", config)

	var weights = eval.DefaultWeights()
	if config.Weights != "" {
		weights, err = eval.LoadWeights(config.Weights)
		if err != nil {
			return err
		}
	}

	var openings []string
	if config.Openings != "" {
		openings, err = loadOpenings(config.Openings)
		if err != nil {
			return err
		}
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var a = &arena.Arena{
		PlayerA:     config.PlayerA,
		PlayerB:     config.PlayerB,
		Weights:     weights,
		Games:       config.Games,
		Concurrency: config.Concurrency,
		MaxPlies:    config.MaxPlies,
		Openings:    openings,
		Logger:      logger,
	}
	summary, err := a.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info().
		Int("wins", summary.Wins).
		Int("losses", summary.Losses).
		Int("draws", summary.Draws).
		Msg("player A total")

	if config.Output != "" {
		if err := arena.WriteGameRecords(config.Output, summary.Games); err != nil {
			return err
		}
		logger.Info().Str("path", config.Output).Int("games", len(summary.Games)).Msg("saved game records")
	}
	return nil
}

func loadOpenings(path string) ([]string, error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var result []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if !(line == "" || strings.HasPrefix(line, "//")) {
			result = append(result, line)
		}
	}
	return result, nil
}
