package engine

import (
	"time"

	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/eval"
)

// Position is the rules oracle as seen by the search. The search borrows it
// and leaves it as it found it on every exit path.
type Position interface {
	eval.Position
}

type Evaluator interface {
	Evaluate(p eval.Position, side board.Side) eval.Score
}

// MaxHeight bounds the search depth. Scores within MaxHeight of Checkmate
// are mates found by the search.
const MaxHeight = 128

// MatePlies returns the distance in plies from the root to the mate that
// score announces.
func MatePlies(score eval.Score) (int, bool) {
	var abs = score
	if abs < 0 {
		abs = -abs
	}
	if abs > eval.Checkmate || abs < eval.Checkmate-MaxHeight {
		return 0, false
	}
	return int(eval.Checkmate - abs), true
}

type SearchParams struct {
	Position Position
	// Depth in plies. Zero or less means the engine default.
	Depth    int
	Progress func(SearchInfo)
}

type Status int

const (
	StatusFound Status = iota
	StatusRandom
	StatusNoMove
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusRandom:
		return "random"
	case StatusNoMove:
		return "nomove"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

type SearchInfo struct {
	Move    board.Move
	Score   eval.Score
	Status  Status
	Depth   int
	Nodes   int64
	Cutoffs int64
	Time    time.Duration
}

// HasMove is false when the game is already over or the search was cancelled.
func (si SearchInfo) HasMove() bool {
	return si.Status == StatusFound || si.Status == StatusRandom
}
