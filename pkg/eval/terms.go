package eval

import (
	"github.com/pearstopher/chess/pkg/board"
)

// Position is the part of the rules oracle the evaluator reads.
type Position interface {
	PieceReader
	SideToMove() board.Side
	LegalMoves() []board.Move
	IsCheck() bool
	LastMove() (board.Move, bool)
	Push(m board.Move)
	Pop() board.Move
}

// Terminal scores checkmate and stalemate. ok is false when the side to move
// has a legal move.
func Terminal(p Position, side board.Side) (score Score, ok bool) {
	if len(p.LegalMoves()) != 0 {
		return 0, false
	}
	return terminalScore(p, side), true
}

func terminalScore(p Position, side board.Side) Score {
	if !p.IsCheck() {
		return Stalemate
	}
	if p.SideToMove() == side {
		return -Checkmate
	}
	return Checkmate
}

func Material(m *Matrix, side board.Side) Score {
	var score = 0
	for row := range m {
		for _, cell := range m[row] {
			if cell.Kind == board.Empty {
				continue
			}
			if cell.Side == side {
				score += pieceValues[cell.Kind]
			} else {
				score -= pieceValues[cell.Kind]
			}
		}
	}
	return Points(score)
}

const diagonalBonus = 3

// Diagonals rewards bishops and queens of side standing on a8-h1 or a1-h8.
func Diagonals(m *Matrix, side board.Side) Score {
	var score = 0
	for i := 0; i < 8; i++ {
		if controlsDiagonal(m[i][i], side) {
			score += diagonalBonus
		}
		if controlsDiagonal(m[7-i][i], side) {
			score += diagonalBonus
		}
	}
	return Points(score)
}

func controlsDiagonal(cell board.Piece, side board.Side) bool {
	return cell.Side == side && (cell.Kind == board.Bishop || cell.Kind == board.Queen)
}

var (
	centralSquares = []board.Square{board.SquareD4, board.SquareE4, board.SquareD5, board.SquareE5}

	pawnSupportSquares = [2][]board.Square{
		board.White: {
			board.SquareC3, board.SquareD3, board.SquareE3, board.SquareF3,
			board.SquareC4, board.SquareD4, board.SquareE4, board.SquareF4,
		},
		board.Black: {
			board.SquareC6, board.SquareD6, board.SquareE6, board.SquareF6,
			board.SquareC5, board.SquareD5, board.SquareE5, board.SquareF5,
		},
	}

	knightSupportSquares = knightSquaresAttacking(centralSquares)
)

const (
	centralPawnBonus   = 1
	centralKnightBonus = 2
	supportPawnBonus   = 1
	supportKnightBonus = 2
)

// Center rewards pawns and knights of side that occupy d4, e4, d5, e5 or
// stand where they attack one of them.
func Center(m *Matrix, side board.Side) Score {
	var score = 0
	for _, sq := range centralSquares {
		var cell = m.At(sq)
		if cell.Side != side {
			continue
		}
		switch cell.Kind {
		case board.Pawn:
			score += centralPawnBonus
		case board.Knight:
			score += centralKnightBonus
		}
	}
	for _, sq := range pawnSupportSquares[side] {
		if m.At(sq) == (board.Piece{Side: side, Kind: board.Pawn}) {
			score += supportPawnBonus
		}
	}
	for _, sq := range knightSupportSquares {
		if m.At(sq) == (board.Piece{Side: side, Kind: board.Knight}) {
			score += supportKnightBonus
		}
	}
	return Points(score)
}

// Mobility counts the legal moves of the side to move.
func Mobility(p Position, side board.Side) Score {
	var n = len(p.LegalMoves())
	if p.SideToMove() != side {
		n = -n
	}
	return Points(n)
}

// Activity sums the values of the pieces attacked or defended by the piece
// that made the last move, plus the piece it captured. The captured piece is
// read by taking the last move back and replaying it.
func Activity(p Position, side board.Side) Score {
	var move, ok = p.LastMove()
	if !ok {
		return 0
	}
	var m = ToMatrix(p)
	var to = move.To()
	var mover = m.At(to)
	if mover.Kind == board.Empty {
		return 0
	}

	var score = 0
	for _, target := range reachedSquares(&m, to, mover) {
		score += pieceValues[m.At(target).Kind]
	}

	p.Pop()
	var captured = p.PieceAt(to)
	p.Push(move)
	if captured.Kind != board.Empty && captured.Side != mover.Side {
		score += pieceValues[captured.Kind]
	}

	if mover.Side != side {
		score = -score
	}
	return Points(score)
}
