package eval

import (
	"strings"

	"github.com/pearstopher/chess/pkg/board"
)

// Matrix is an 8x8 snapshot of the board. Row 0 is rank 8 and column 0 is
// file a, the order in which FEN lists the squares. So d5 is [3][3], e5 is
// [3][4], d4 is [4][3] and e4 is [4][4].
type Matrix [8][8]board.Piece

type PieceReader interface {
	PieceAt(sq board.Square) board.Piece
}

func ToMatrix(p PieceReader) Matrix {
	var m Matrix
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			m[row][col] = p.PieceAt(MatrixSquare(row, col))
		}
	}
	return m
}

func MatrixSquare(row, col int) board.Square {
	return board.MakeSquare(col, board.Rank8-row)
}

func matrixIndex(sq board.Square) (row, col int) {
	return board.Rank8 - sq.Rank(), sq.File()
}

func (m *Matrix) At(sq board.Square) board.Piece {
	if !sq.IsValid() {
		return board.NoPiece
	}
	var row, col = matrixIndex(sq)
	return m[row][col]
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for row := range m {
		for col := range m[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
