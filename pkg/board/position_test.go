package board

import (
	"errors"
	"testing"
)

var testFENs = []string{
	InitialPositionFen,
	// Kiwipete
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	// underpromotion
	"8/p1P5/P7/3p4/5p1p/3p1P1P/K2p2pp/3R2nk w - - 0 1",
	// en passant
	"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
}

func TestPushPopRestores(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		var before = p.FEN()
		for _, m := range p.LegalMoves() {
			p.Push(m)
			for _, reply := range p.LegalMoves() {
				p.Push(reply)
				p.Pop()
			}
			if p.Pop() != m {
				t.Error(fen, "pop returned another move", m)
			}
			if p.FEN() != before {
				t.Error(fen, m, p.FEN())
			}
		}
		if p.Depth() != 0 {
			t.Error(fen, "unbalanced history", p.Depth())
		}
	}
}

func TestPopWithoutPushPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewPosition().Pop()
}

func TestInvalidFEN(t *testing.T) {
	for _, fen := range []string{"", "not a fen", "rnbqkbnr/pppppppp/8/8 w KQkq - 0 1"} {
		var _, err = NewPositionFromFEN(fen)
		if !errors.Is(err, ErrInvalidFEN) {
			t.Error(fen, err)
		}
	}
}

func TestInitialPosition(t *testing.T) {
	var p = NewPosition()
	if n := len(p.LegalMoves()); n != 20 {
		t.Error("legal moves", n)
	}
	if p.SideToMove() != White {
		t.Error("side to move", p.SideToMove())
	}
	var tests = []struct {
		sq   Square
		want Piece
	}{
		{SquareE1, Piece{White, King}},
		{SquareD8, Piece{Black, Queen}},
		{SquareB1, Piece{White, Knight}},
		{SquareH7, Piece{Black, Pawn}},
		{SquareE4, NoPiece},
	}
	for _, test := range tests {
		if got := p.PieceAt(test.sq); got != test.want {
			t.Error(test.sq, got, test.want)
		}
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	var tests = []struct {
		fen       string
		checkmate bool
		stalemate bool
	}{
		// fool's mate
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, false},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false, true},
		{InitialPositionFen, false, false},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if p.IsCheckmate() != test.checkmate {
			t.Error(test.fen, "checkmate", p.IsCheckmate())
		}
		if p.IsStalemate() != test.stalemate {
			t.Error(test.fen, "stalemate", p.IsStalemate())
		}
	}
}

func TestParseMove(t *testing.T) {
	var p = NewPosition()
	if err := p.PushLAN("e2e4"); err != nil {
		t.Fatal(err)
	}
	var last, ok = p.LastMove()
	if !ok || last.From() != SquareE2 || last.To() != SquareE4 {
		t.Error("last move", last)
	}
	if got := p.PieceAt(SquareE4); got != (Piece{White, Pawn}) {
		t.Error("e4", got)
	}
	if _, err := p.ParseMove("e2e4"); !errors.Is(err, ErrIllegalMove) {
		t.Error("expected illegal move", err)
	}
}

func TestParsePromotion(t *testing.T) {
	var p, err = NewPositionFromFEN("1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		lan  string
		kind Kind
	}{
		{"a7a8q", Queen},
		{"a7a8n", Knight},
		{"a7b8r", Rook},
		{"a7b8b", Bishop},
	}
	for _, test := range tests {
		var m, err = p.ParseMove(test.lan)
		if err != nil {
			t.Error(test.lan, err)
			continue
		}
		if m.Promotion() != test.kind || m.String() != test.lan {
			t.Error(test.lan, m.Promotion(), m)
		}
	}
	if m, err := p.ParseMove("e1e2"); err != nil || m.Promotion() != Empty {
		t.Error("quiet move", m, err)
	}
}

func TestSquare(t *testing.T) {
	var sq, err = ParseSquare("e4")
	if err != nil || sq != SquareE4 {
		t.Error(sq, err)
	}
	if MakeSquare(FileH, Rank8) != SquareH8 || MakeSquare(8, 0) != SquareNone {
		t.Error("MakeSquare")
	}
	if SquareA1.String() != "a1" || SquareNone.String() != "-" {
		t.Error("String")
	}
}
