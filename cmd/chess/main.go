package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/pearstopher/chess/pkg/engine"
	"github.com/pearstopher/chess/pkg/eval"
	"github.com/pearstopher/chess/pkg/uci"
)

const (
	name   = "Pear"
	author = "pearstopher"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgDepth    int
	flgLevel    int
	flgWeights  string
	flgLogLevel string
)

func main() {
	flag.IntVar(&flgDepth, "depth", 3, "default search depth in plies")
	flag.IntVar(&flgLevel, "level", 1, "heuristic level (1-3)")
	flag.StringVar(&flgWeights, "weights", "", "JSON file with heuristic divisors")
	flag.StringVar(&flgLogLevel, "loglevel", "info", "log level")
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(flgLogLevel); err == nil {
		logger = logger.Level(level)
	} else {
		logger.Warn().Err(err).Msg("bad log level")
	}

	logger.Info().
		Str("VersionName", versionName).
		Str("BuildDate", buildDate).
		Str("GitRevision", gitRevision).
		Str("RuntimeVersion", runtime.Version()).
		Str("GOARCH", runtime.GOARCH).
		Str("GOOS", runtime.GOOS).
		Msg(name)

	var eng = engine.NewEngine()
	eng.Depth = flgDepth
	eng.Level = flgLevel
	eng.Logger = logger
	if flgWeights != "" {
		var w, err = eval.LoadWeights(flgWeights)
		if err != nil {
			logger.Fatal().Err(err).Msg("load weights")
		}
		eng.Weights = w
	}
	if _, err := eval.ParseLevel(eng.Level); err != nil {
		logger.Fatal().Err(err).Msg("bad level")
	}

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Depth", Min: 1, Max: 10, Value: &eng.Depth},
			&uci.IntOption{Name: "Heuristic", Min: 1, Max: 3, Value: &eng.Level},
			&uci.BoolOption{Name: "MoveOrdering", Value: &eng.MoveOrdering},
			&uci.BoolOption{Name: "Pruning", Value: &eng.Pruning},
			&uci.StringOption{Name: "WeightsFile", Default: flgWeights, Apply: func(value string) error {
				if value == "" {
					eng.Weights = eval.DefaultWeights()
					return nil
				}
				var w, err = eval.LoadWeights(value)
				if err != nil {
					return err
				}
				eng.Weights = w
				return nil
			}},
		},
	)
	protocol.Run(logger)
}
