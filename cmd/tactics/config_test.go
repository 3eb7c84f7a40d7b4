package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/eval"
)

func TestParseArgs(t *testing.T) {
	var tests = []struct {
		args    []string
		command string
		want    Config
	}{
		{
			[]string{"tactic", "-testpath", "a.epd"},
			"tactic",
			Config{TestPath: "a.epd", Depth: 3, Level: 1},
		},
		{
			[]string{"benchmark", "-testpath", "b.epd", "-depth", "5", "-level", "2", "-weights", "w.json"},
			"benchmark",
			Config{TestPath: "b.epd", Depth: 5, Level: 2, Weights: "w.json"},
		},
		{
			[]string{"eval", "-fen", "7k/8/5K2/8/8/8/8/7R b - - 0 1"},
			"eval",
			Config{FEN: "7k/8/5K2/8/8/8/8/7R b - - 0 1", Level: 3},
		},
	}
	for _, test := range tests {
		var command, config, err = parseArgs(test.args, io.Discard)
		if err != nil {
			t.Error(test.args, err)
			continue
		}
		if test.command == "eval" {
			// test path keeps its default, it is not an eval flag
			config.TestPath = ""
		}
		if command != test.command || config != test.want {
			t.Error(test.args, command, config, test.want)
		}
	}

	var _, config, err = parseArgs([]string{"eval"}, io.Discard)
	if err != nil || config.FEN != board.InitialPositionFen {
		t.Error("eval default fen", config.FEN, err)
	}
}

func TestParseArgsErrors(t *testing.T) {
	var tests = [][]string{
		nil,
		{"quality"},
		{"tactic", "-depth", "x"},
		{"tactic", "-depth", "0"},
		{"benchmark", "-depth", "500"},
		{"tactic", "-level", "4"},
		{"eval", "-depth", "3"},
		{"tactic", "-fen", "8/8/8/8/8/8/8/8 w - - 0 1"},
		{"tactic", "extra"},
	}
	for _, args := range tests {
		if _, _, err := parseArgs(args, io.Discard); err == nil {
			t.Error(args, "expected error")
		}
	}
	if _, _, err := parseArgs(nil, io.Discard); !errors.Is(err, errNoCommand) {
		t.Error(err)
	}
}

func TestConfigWeights(t *testing.T) {
	var w, err = Config{}.weights()
	if err != nil || w != eval.DefaultWeights() {
		t.Error(w, err)
	}
	var path = filepath.Join(t.TempDir(), "weights.json")
	if err := os.WriteFile(path, []byte(`{"activity_divisor": 20}`), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err = Config{Weights: path}.weights()
	if err != nil || w.Activity != 20 {
		t.Error(w, err)
	}
}

func TestRunEval(t *testing.T) {
	if err := run([]string{"eval", "-fen", "7k/8/5K2/8/8/8/8/7R b - - 0 1", "-level", "2"}); err != nil {
		t.Error(err)
	}
	if err := run([]string{"eval", "-fen", "not a fen"}); err == nil {
		t.Error("expected error")
	}
}

func TestRunTactic(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "tests.epd")
	var epd = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - bm Ra8#;\n"
	if err := os.WriteFile(path, []byte(epd), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, command := range []string{"tactic", "benchmark"} {
		if err := run([]string{command, "-testpath", path, "-depth", "2"}); err != nil {
			t.Error(command, err)
		}
	}
}
