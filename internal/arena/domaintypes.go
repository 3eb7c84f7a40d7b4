package arena

import (
	"context"

	"github.com/notnil/chess"

	"github.com/pearstopher/chess/pkg/board"
)

type Player interface {
	Name() string
	Clear()
	ChooseMove(ctx context.Context, p *board.Position) (board.Move, error)
}

type PlayerConfig struct {
	Kind  string // random, greedy or minimax
	Depth int
	Level int
}

type gameInfo struct {
	opening      string
	playerAWhite bool
	gameNumber   int
}

type GameResult struct {
	Number  int
	White   string
	Black   string
	Opening string
	Outcome chess.Outcome
	Comment string
	Plies   int
	PGN     string
	// PlayerAWhite tells from which side the score of player A is counted.
	PlayerAWhite bool
}

type Summary struct {
	Wins   int
	Losses int
	Draws  int
	Games  []GameResult
}
