package eval

import (
	"github.com/pearstopher/chess/pkg/board"
)

type offset struct {
	file, rank int
}

var (
	orthogonalDirections = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirections   = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets        = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets          = []offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	pawnOffsets          = [2][]offset{
		board.White: {{-1, 1}, {1, 1}},
		board.Black: {{-1, -1}, {1, -1}},
	}
)

func shift(sq board.Square, o offset) board.Square {
	return board.MakeSquare(sq.File()+o.file, sq.Rank()+o.rank)
}

// reachedSquares returns the occupied squares piece attacks or defends from sq.
func reachedSquares(m *Matrix, sq board.Square, piece board.Piece) []board.Square {
	var result []board.Square
	switch piece.Kind {
	case board.Rook:
		result = appendRays(result, m, sq, orthogonalDirections)
	case board.Bishop:
		result = appendRays(result, m, sq, diagonalDirections)
	case board.Queen:
		result = appendRays(result, m, sq, orthogonalDirections)
		result = appendRays(result, m, sq, diagonalDirections)
	case board.Knight:
		result = appendSteps(result, m, sq, knightOffsets)
	case board.King:
		result = appendSteps(result, m, sq, kingOffsets)
	case board.Pawn:
		result = appendSteps(result, m, sq, pawnOffsets[piece.Side])
	}
	return result
}

func appendRays(result []board.Square, m *Matrix, from board.Square, directions []offset) []board.Square {
	for _, dir := range directions {
		for sq := shift(from, dir); sq != board.SquareNone; sq = shift(sq, dir) {
			if !m.At(sq).IsEmpty() {
				result = append(result, sq)
				break
			}
		}
	}
	return result
}

func appendSteps(result []board.Square, m *Matrix, from board.Square, offsets []offset) []board.Square {
	for _, o := range offsets {
		var sq = shift(from, o)
		if sq != board.SquareNone && !m.At(sq).IsEmpty() {
			result = append(result, sq)
		}
	}
	return result
}

func knightSquaresAttacking(targets []board.Square) []board.Square {
	var seen = make(map[board.Square]bool)
	var result []board.Square
	for _, target := range targets {
		for _, o := range knightOffsets {
			var sq = shift(target, o)
			if sq == board.SquareNone || seen[sq] {
				continue
			}
			seen[sq] = true
			result = append(result, sq)
		}
	}
	return result
}
