package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/eval"
)

type Engine struct {
	Depth        int
	Level        int
	MoveOrdering bool
	Pruning      bool
	Weights      eval.Weights
	Logger       zerolog.Logger
	evaluator    Evaluator
	evalLevel    int
	evalWeights  eval.Weights
}

func NewEngine() *Engine {
	return &Engine{
		Depth:        3,
		Level:        int(eval.LevelMaterial),
		MoveOrdering: true,
		Pruning:      true,
		Weights:      eval.DefaultWeights(),
		Logger:       zerolog.Nop(),
	}
}

// WithEvaluator replaces the heuristic evaluator; Level and Weights are then ignored.
func (e *Engine) WithEvaluator(evaluator Evaluator) *Engine {
	e.evaluator = evaluator
	e.evalLevel = -1
	return e
}

func (e *Engine) Prepare() {
	if e.evalLevel == -1 {
		return
	}
	if e.evaluator == nil || e.evalLevel != e.Level || e.evalWeights != e.Weights {
		var level, err = eval.ParseLevel(e.Level)
		if err != nil {
			panic(err)
		}
		e.evaluator = eval.NewEvaluationService(level, e.Weights)
		e.evalLevel = e.Level
		e.evalWeights = e.Weights
	}
}

func (e *Engine) Clear() {}

func (e *Engine) Evaluator() Evaluator {
	e.Prepare()
	return e.evaluator
}

// Search looks for the best move for the side to move. Cancelling ctx
// aborts the search and yields a result with StatusCancelled.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	var depth = searchParams.Depth
	if depth <= 0 {
		depth = e.Depth
	}
	if depth > MaxHeight {
		depth = MaxHeight
	}
	var p = searchParams.Position
	var si = e.SearchPosition(p, depth, p.SideToMove(), NewContextGate(ctx))
	if searchParams.Progress != nil {
		searchParams.Progress(si)
	}
	return si
}

// SearchPosition runs a fixed depth alpha-beta search maximizing the score of side.
func (e *Engine) SearchPosition(p Position, depth int, side board.Side, gate Gate) SearchInfo {
	e.Prepare()
	var start = time.Now()
	var s = &searcher{
		position:  p,
		evaluator: e.evaluator,
		side:      side,
		gate:      gate,
		ordering:  e.MoveOrdering,
		pruning:   e.Pruning,
		rootDepth: depth,
	}
	var si = s.run()
	si.Time = time.Since(start)
	e.Logger.Debug().
		Str("move", si.Move.String()).
		Str("score", si.Score.String()).
		Stringer("status", si.Status).
		Int("depth", si.Depth).
		Int64("nodes", si.Nodes).
		Int64("cutoffs", si.Cutoffs).
		Dur("time", si.Time).
		Msg("search")
	return si
}

func (s *searcher) run() (si SearchInfo) {
	si.Depth = s.rootDepth
	defer func() {
		si.Nodes = s.nodes
		si.Cutoffs = s.cutoffs
		if r := recover(); r != nil {
			if r == errSearchCancelled {
				si.Move = board.MoveEmpty
				si.Score = 0
				si.Status = StatusCancelled
				return
			}
			panic(r)
		}
	}()

	var maximizing = s.position.SideToMove() == s.side
	var score, move = s.alphaBeta(s.rootDepth, -valueInfinity, valueInfinity, maximizing)
	si.Score = score
	if move != board.MoveEmpty {
		si.Move = move
		si.Status = StatusFound
		return
	}
	var ml = s.position.LegalMoves()
	if len(ml) == 0 {
		si.Status = StatusNoMove
		return
	}
	si.Move = ml[frand.Intn(len(ml))]
	si.Status = StatusRandom
	return
}
