package engine

import (
	"errors"

	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/eval"
)

var errSearchCancelled = errors.New("search cancelled")

// Outside the reachable [-Checkmate, Checkmate] range.
const valueInfinity = 10 * eval.Checkmate

type searcher struct {
	position  Position
	evaluator Evaluator
	side      board.Side
	gate      Gate
	ordering  bool
	pruning   bool
	rootDepth int
	nodes     int64
	cutoffs   int64
	buffers   [][]orderedMove
}

// alphaBeta returns the minimax value of the current position and the move
// that reached it. Only the root caller uses the move.
func (s *searcher) alphaBeta(depth int, alpha, beta eval.Score, maximizing bool) (eval.Score, board.Move) {
	s.incNodes()
	if depth <= 0 {
		return s.evaluate(depth), board.MoveEmpty
	}
	var ml = s.position.LegalMoves()
	if len(ml) == 0 {
		return s.evaluate(depth), board.MoveEmpty
	}
	if s.ordering {
		s.orderMoves(depth, ml)
	}

	var bestMove = board.MoveEmpty
	if maximizing {
		var best = -valueInfinity
		for _, move := range ml {
			var score = s.searchChild(move, depth-1, alpha, beta, false)
			if score > best {
				best = score
				bestMove = move
			}
			if s.pruning {
				if best >= beta {
					s.cutoffs++
					break
				}
				if best > alpha {
					alpha = best
				}
			}
		}
		return best, bestMove
	}

	var best = valueInfinity
	for _, move := range ml {
		var score = s.searchChild(move, depth-1, alpha, beta, true)
		if score < best {
			best = score
			bestMove = move
		}
		if s.pruning {
			if best <= alpha {
				s.cutoffs++
				break
			}
			if best < beta {
				beta = best
			}
		}
	}
	return best, bestMove
}

// evaluate prefers the shortest mate: a mate found height plies below the
// root is worth Checkmate-height.
func (s *searcher) evaluate(depth int) eval.Score {
	var score = s.evaluator.Evaluate(s.position, s.side)
	var height = eval.Score(s.rootDepth - depth)
	if score >= eval.Checkmate {
		return eval.Checkmate - height
	}
	if score <= -eval.Checkmate {
		return -eval.Checkmate + height
	}
	return score
}

// searchChild pops move on every way out, including cancellation.
func (s *searcher) searchChild(move board.Move, depth int, alpha, beta eval.Score, maximizing bool) eval.Score {
	s.position.Push(move)
	defer s.position.Pop()
	var score, _ = s.alphaBeta(depth, alpha, beta, maximizing)
	return score
}

func (s *searcher) incNodes() {
	s.nodes++
	if s.gate.ShouldAbort() {
		panic(errSearchCancelled)
	}
}

func (s *searcher) orderMoves(depth int, ml []board.Move) {
	for len(s.buffers) <= depth {
		s.buffers = append(s.buffers, nil)
	}
	s.buffers[depth] = orderMoves(s.position, ml, s.buffers[depth])
}
