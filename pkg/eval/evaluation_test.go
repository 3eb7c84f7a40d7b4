package eval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pearstopher/chess/pkg/board"
)

var testFENs = []string{
	board.InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
}

const (
	foolsMateFen = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFen = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	// smothered mate: black has three queens and a rook against a knight
	richMatedFen = "6rk/5Npp/8/8/8/7K/8/qqq5 b - - 0 1"
)

func mustPosition(t *testing.T, fen string) *board.Position {
	t.Helper()
	var p, err = board.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestMatrixOrientation(t *testing.T) {
	var p = board.NewPosition()
	if err := p.PushLAN("e2e4"); err != nil {
		t.Fatal(err)
	}
	var m = ToMatrix(p)
	var tests = []struct {
		row, col int
		want     string
	}{
		{0, 0, "br"},
		{0, 3, "bq"},
		{7, 4, "wk"},
		{4, 4, "wp"},
		{6, 4, "--"},
		{3, 3, "--"},
	}
	for _, test := range tests {
		if got := m[test.row][test.col].String(); got != test.want {
			t.Error(test.row, test.col, got, test.want)
		}
	}
	if MatrixSquare(4, 4) != board.SquareE4 || MatrixSquare(3, 3) != board.SquareD5 {
		t.Error("MatrixSquare")
	}
}

func TestMatrixIsSnapshot(t *testing.T) {
	var p = board.NewPosition()
	var before = ToMatrix(p)
	if err := p.PushLAN("g1f3"); err != nil {
		t.Fatal(err)
	}
	if before[7][6].String() != "wn" || before[5][5].String() != "--" {
		t.Error("snapshot changed after move", before.String())
	}
}

func TestMaterialZeroSum(t *testing.T) {
	for _, fen := range testFENs {
		var m = ToMatrix(mustPosition(t, fen))
		var white, black = Material(&m, board.White), Material(&m, board.Black)
		if white != -black {
			t.Error(fen, white, black)
		}
	}
}

func TestMaterial(t *testing.T) {
	// white is a rook and a pawn up
	var m = ToMatrix(mustPosition(t, "4k3/8/8/8/8/8/P7/R3K3 w - - 0 1"))
	if got := Material(&m, board.White); got != Points(6) {
		t.Error(got)
	}
}

func TestTerminalPrecedence(t *testing.T) {
	for _, level := range []Level{LevelMaterial, LevelPositional, LevelMobility} {
		var e = NewEvaluationService(level, DefaultWeights())
		var mated = mustPosition(t, foolsMateFen)
		if got := e.Evaluate(mated, board.White); got != -Checkmate {
			t.Error(level, "mated side", got)
		}
		if got := e.Evaluate(mated, board.Black); got != Checkmate {
			t.Error(level, "mating side", got)
		}
		var rich = mustPosition(t, richMatedFen)
		var m = ToMatrix(rich)
		if Material(&m, board.Black) < Points(30) {
			t.Fatal("mated side should be far ahead", Material(&m, board.Black))
		}
		if got := e.Evaluate(rich, board.Black); got != -Checkmate {
			t.Error(level, "rich mated side", got)
		}
		if got := e.Evaluate(rich, board.White); got != Checkmate {
			t.Error(level, "poor mating side", got)
		}
		var stalemate = mustPosition(t, stalemateFen)
		if got := e.Evaluate(stalemate, board.White); got != Stalemate {
			t.Error(level, "stalemate", got)
		}
	}
}

func TestDiagonals(t *testing.T) {
	var m = ToMatrix(mustPosition(t, "4k3/8/8/8/3QB3/8/8/4K3 w - - 0 1"))
	if got := Diagonals(&m, board.White); got != Points(6) {
		t.Error("white", got)
	}
	if got := Diagonals(&m, board.Black); got != 0 {
		t.Error("black", got)
	}
}

func TestCenter(t *testing.T) {
	var p = board.NewPosition()
	var m = ToMatrix(p)
	if got := Center(&m, board.White); got != 0 {
		t.Error("initial", got)
	}
	if err := p.PushLAN("e2e4"); err != nil {
		t.Fatal(err)
	}
	m = ToMatrix(p)
	if got := Center(&m, board.White); got != Points(2) {
		t.Error("after e4", got)
	}

	m = ToMatrix(mustPosition(t, "4k3/8/8/8/4N3/5N2/8/4K3 w - - 0 1"))
	if got := Center(&m, board.White); got != Points(4) {
		t.Error("knights", got)
	}
}

func TestCenterIsSymmetric(t *testing.T) {
	var white = ToMatrix(mustPosition(t, "4k3/8/8/8/3PP3/2N5/8/4K3 w - - 0 1"))
	var black = ToMatrix(mustPosition(t, "4k3/8/2n5/3pp3/8/8/8/4K3 w - - 0 1"))
	if Center(&white, board.White) != Center(&black, board.Black) {
		t.Error(Center(&white, board.White), Center(&black, board.Black))
	}
}

func TestMobility(t *testing.T) {
	var p = board.NewPosition()
	if got := Mobility(p, board.White); got != Points(20) {
		t.Error(got)
	}
	if got := Mobility(p, board.Black); got != -Points(20) {
		t.Error(got)
	}
}

func TestActivityCapture(t *testing.T) {
	var p = board.NewPosition()
	for _, lan := range []string{"e2e4", "d7d5", "e4d5"} {
		if err := p.PushLAN(lan); err != nil {
			t.Fatal(err)
		}
	}
	var fen = p.FEN()
	if got := Activity(p, board.White); got != Points(1) {
		t.Error("white", got)
	}
	if p.FEN() != fen || p.Depth() != 3 {
		t.Error("position not restored", p.FEN())
	}
	if got := Activity(p, board.Black); got != -Points(1) {
		t.Error("black", got)
	}
}

func TestActivityRays(t *testing.T) {
	var p = mustPosition(t, "4k3/N7/8/8/4p3/8/8/R3K3 w - - 0 1")
	if got := Activity(p, board.White); got != 0 {
		t.Error("no last move", got)
	}
	if err := p.PushLAN("a1a4"); err != nil {
		t.Fatal(err)
	}
	if got := Activity(p, board.White); got != Points(4) {
		t.Error(got)
	}
}

func TestActivityPieceReach(t *testing.T) {
	var tests = []struct {
		fen  string
		move string
		side board.Side
		want Score
	}{
		// knight on f3 reaches the rook on e5, the queen on h4 and nothing else
		{"4k3/8/8/4r3/7q/8/8/K5N1 w - - 0 1", "g1f3", board.White, Points(15)},
		// king on e2 defends the rook on d1 and the pawn on f2
		{"4k3/8/8/8/8/8/5P2/3RK3 w - - 0 1", "e1e2", board.White, Points(6)},
		// black pawn on d3 attacks c2 and e2, not c4 and e4
		{"4k3/8/8/8/3p4/2P1P3/2N1B3/4K3 b - - 0 1", "d4d3", board.White, -Points(6)},
		{"4k3/8/8/8/3p4/2P1P3/2N1B3/4K3 b - - 0 1", "d4d3", board.Black, Points(6)},
	}
	for _, test := range tests {
		var p = mustPosition(t, test.fen)
		if err := p.PushLAN(test.move); err != nil {
			t.Fatal(test.fen, err)
		}
		if got := Activity(p, test.side); got != test.want {
			t.Error(test.fen, test.move, test.side, got, test.want)
		}
	}
}

func TestLevels(t *testing.T) {
	var p = board.NewPosition()
	var tests = []struct {
		level Level
		want  Score
	}{
		{LevelMaterial, 0},
		{LevelPositional, 0},
		{LevelMobility, Points(20) / 30},
	}
	for _, test := range tests {
		var e = NewEvaluationService(test.level, DefaultWeights())
		if got := e.Evaluate(p, board.White); got != test.want {
			t.Error(test.level, got, test.want)
		}
		if got := e.Evaluate(p, board.Black); got != -test.want {
			t.Error(test.level, got, -test.want)
		}
	}
}

func TestTraceMatchesEvaluate(t *testing.T) {
	var e = NewEvaluationService(LevelMobility, DefaultWeights())
	for _, fen := range testFENs {
		var p = mustPosition(t, fen)
		var sum Score
		for _, ts := range e.Trace(p, board.White) {
			sum += ts.Score
		}
		if got := e.Evaluate(p, board.White); got != sum {
			t.Error(fen, got, sum)
		}
	}
}

func TestLoadWeights(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "weights.json")
	if err := os.WriteFile(path, []byte(`{"center_divisor": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var w, err = LoadWeights(path)
	if err != nil {
		t.Fatal(err)
	}
	var want = DefaultWeights()
	want.Center = 5
	if w != want {
		t.Error(w, want)
	}

	if err := os.WriteFile(path, []byte(`{"mobility_divisor": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWeights(path); err == nil {
		t.Error("expected error for zero divisor")
	}
}

func TestScoreString(t *testing.T) {
	if s := (Points(3) + 25).String(); s != "3.25" {
		t.Error(s)
	}
	if s := (-Unit / 2).String(); s != "-0.50" {
		t.Error(s)
	}
}
