package arena

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/engine"
	"github.com/pearstopher/chess/pkg/eval"
)

var errNoMove = errors.New("player has no move")

type randomPlayer struct{}

func (randomPlayer) Name() string { return "random" }
func (randomPlayer) Clear()       {}

func (randomPlayer) ChooseMove(ctx context.Context, p *board.Position) (board.Move, error) {
	var ml = p.LegalMoves()
	if len(ml) == 0 {
		return board.MoveEmpty, errNoMove
	}
	return ml[frand.Intn(len(ml))], nil
}

type enginePlayer struct {
	name   string
	engine *engine.Engine
}

func (pl *enginePlayer) Name() string { return pl.name }
func (pl *enginePlayer) Clear()       { pl.engine.Clear() }

func (pl *enginePlayer) ChooseMove(ctx context.Context, p *board.Position) (board.Move, error) {
	var si = pl.engine.Search(ctx, engine.SearchParams{Position: p})
	if si.Status == engine.StatusCancelled {
		return board.MoveEmpty, ctx.Err()
	}
	if !si.HasMove() {
		return board.MoveEmpty, errNoMove
	}
	return si.Move, nil
}

// NewPlayer builds a player. Engine players own their engine, so a player
// must not be shared between concurrent games.
func NewPlayer(config PlayerConfig, weights eval.Weights, logger zerolog.Logger) (Player, error) {
	var depth int
	switch config.Kind {
	case "random":
		return randomPlayer{}, nil
	case "greedy":
		depth = 1
	case "minimax":
		depth = config.Depth
		if depth < 1 {
			return nil, fmt.Errorf("minimax depth must be positive: %v", depth)
		}
	default:
		return nil, fmt.Errorf("unknown player %q", config.Kind)
	}
	var level, err = eval.ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	var eng = engine.NewEngine()
	eng.Depth = depth
	eng.Level = int(level)
	eng.Weights = weights
	eng.Logger = logger
	eng.Prepare()
	return &enginePlayer{
		name:   fmt.Sprintf("%v-d%v-h%v", config.Kind, depth, config.Level),
		engine: eng,
	}, nil
}
