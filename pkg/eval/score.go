package eval

import (
	"fmt"

	"github.com/pearstopher/chess/pkg/board"
)

// Score is fixed point: Unit of them make one point (one pawn).
type Score int

const Unit Score = 100

const (
	Checkmate Score = 1000 * Unit
	Stalemate Score = 0
)

var pieceValues = [...]int{
	board.Empty:  0,
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  10,
	board.King:   0,
}

// PieceValue returns the material value of a piece kind in points.
func PieceValue(kind board.Kind) int {
	return pieceValues[kind]
}

func Points(n int) Score {
	return Score(n) * Unit
}

func (s Score) String() string {
	var sign = ""
	var v = int(s)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/int(Unit), v%int(Unit))
}
