package board

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

type Side int

const (
	White Side = iota
	Black
)

func (s Side) Opposite() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

type Kind int

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	return string(kindNames[k])
}

const kindNames = "-pnbrqk"

type Piece struct {
	Side Side
	Kind Kind
}

var NoPiece = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// String gives the two character cell code: side letter and kind, "--" for empty.
func (p Piece) String() string {
	if p.Kind == Empty {
		return "--"
	}
	var side = "w"
	if p.Side == Black {
		side = "b"
	}
	return side + p.Kind.String()
}

// Move is a legal transition produced by the rules oracle.
// Two moves are equal when the oracle encodes them the same way.
type Move struct {
	raw dragon.Move
}

var MoveEmpty = Move{}

func (m Move) From() Square {
	return Square(m.raw.From())
}

func (m Move) To() Square {
	return Square(m.raw.To())
}

func (m Move) Promotion() Kind {
	return Kind(m.raw.Promote())
}

// String returns long algebraic (UCI) notation, "0000" for MoveEmpty.
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	return m.raw.String()
}
