package eval

import (
	"fmt"

	"github.com/pearstopher/chess/pkg/board"
)

// Level selects how many heuristic terms are summed. Each level adds to
// the previous one and costs more per node.
type Level int

const (
	LevelMaterial   Level = 1
	LevelPositional Level = 2
	LevelMobility   Level = 3
)

func ParseLevel(n int) (Level, error) {
	var level = Level(n)
	if level < LevelMaterial || level > LevelMobility {
		return 0, fmt.Errorf("bad heuristic level %v", n)
	}
	return level, nil
}

type leaf struct {
	position Position
	matrix   Matrix
}

type term struct {
	name    string
	divisor int
	score   func(l *leaf, side board.Side) Score
}

type TermScore struct {
	Name  string
	Score Score
}

type EvaluationService struct {
	level   Level
	weights Weights
	terms   []term
}

func NewEvaluationService(level Level, weights Weights) *EvaluationService {
	if err := weights.Validate(); err != nil {
		panic(err)
	}
	var terms = []term{
		{name: "material", divisor: 1, score: func(l *leaf, side board.Side) Score {
			return Material(&l.matrix, side)
		}},
	}
	if level >= LevelPositional {
		terms = append(terms,
			term{name: "diagonals", divisor: weights.Diagonal, score: func(l *leaf, side board.Side) Score {
				return Diagonals(&l.matrix, side) - Diagonals(&l.matrix, side.Opposite())
			}},
			term{name: "center", divisor: weights.Center, score: func(l *leaf, side board.Side) Score {
				return Center(&l.matrix, side) - Center(&l.matrix, side.Opposite())
			}},
		)
	}
	if level >= LevelMobility {
		terms = append(terms,
			term{name: "mobility", divisor: weights.Mobility, score: func(l *leaf, side board.Side) Score {
				return Mobility(l.position, side)
			}},
			term{name: "activity", divisor: weights.Activity, score: func(l *leaf, side board.Side) Score {
				return Activity(l.position, side)
			}},
		)
	}
	return &EvaluationService{
		level:   level,
		weights: weights,
		terms:   terms,
	}
}

func (e *EvaluationService) Level() Level {
	return e.level
}

// Evaluate scores p from the point of view of side. Checkmate and stalemate
// override every other term.
func (e *EvaluationService) Evaluate(p Position, side board.Side) Score {
	if score, ok := Terminal(p, side); ok {
		return score
	}
	var l = leaf{position: p, matrix: ToMatrix(p)}
	var total Score
	for i := range e.terms {
		var t = &e.terms[i]
		total += t.score(&l, side) / Score(t.divisor)
	}
	return total
}

// Trace returns the scaled contribution of every term.
func (e *EvaluationService) Trace(p Position, side board.Side) []TermScore {
	if score, ok := Terminal(p, side); ok {
		return []TermScore{{Name: "terminal", Score: score}}
	}
	var l = leaf{position: p, matrix: ToMatrix(p)}
	var result = make([]TermScore, 0, len(e.terms))
	for i := range e.terms {
		var t = &e.terms[i]
		result = append(result, TermScore{Name: t.name, Score: t.score(&l, side) / Score(t.divisor)})
	}
	return result
}
