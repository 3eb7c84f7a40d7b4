package engine

import (
	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/eval"
)

type orderedMove struct {
	Move board.Move
	Key  int32
}

const (
	keyQuiet   = 0
	keyCapture = 1
)

// orderMoves puts captures before quiet moves. Moves keep the oracle's
// order inside each group.
func orderMoves(p eval.PieceReader, ml []board.Move, buffer []orderedMove) []orderedMove {
	buffer = buffer[:0]
	for _, m := range ml {
		var key int32 = keyQuiet
		if isCapture(p, m) {
			key = keyCapture
		}
		buffer = append(buffer, orderedMove{Move: m, Key: key})
	}
	sortMoves(buffer)
	for i := range buffer {
		ml[i] = buffer[i].Move
	}
	return buffer
}

func isCapture(p eval.PieceReader, m board.Move) bool {
	return !p.PieceAt(m.To()).IsEmpty()
}

// insertion sort, stable for equal keys
func sortMoves(moves []orderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}

func isSorted(moves []orderedMove) bool {
	for i := 1; i < len(moves); i++ {
		if moves[i-1].Key < moves[i].Key {
			return false
		}
	}
	return true
}
