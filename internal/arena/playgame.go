package arena

import (
	"context"
	"fmt"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"github.com/pearstopher/chess/pkg/board"
)

const commentPlyLimit = "ply limit"

// playGame keeps the authoritative game record in a chess.Game and hands each
// player a fresh board.Position built from its FEN.
func playGame(
	ctx context.Context,
	playerA, playerB Player,
	maxPlies int,
	info gameInfo,
	logger zerolog.Logger,
) (GameResult, error) {

	logger.Debug().Int("game", info.gameNumber).Msg("started game")

	playerA.Clear()
	playerB.Clear()

	var white, black = playerA, playerB
	if !info.playerAWhite {
		white, black = playerB, playerA
	}

	var fenOption, err = chess.FEN(info.opening)
	if err != nil {
		return GameResult{}, fmt.Errorf("game %v: %w", info.gameNumber, err)
	}
	var game = chess.NewGame(fenOption, chess.UseNotation(chess.UCINotation{}))

	var result = GameResult{
		Number:       info.gameNumber,
		White:        white.Name(),
		Black:        black.Name(),
		Opening:      info.opening,
		PlayerAWhite: info.playerAWhite,
	}

	for game.Outcome() == chess.NoOutcome {
		if claimDraw(game) {
			break
		}
		if len(game.Moves()) >= maxPlies {
			result.Comment = commentPlyLimit
			break
		}
		var pos, err = board.NewPositionFromFEN(game.Position().String())
		if err != nil {
			return GameResult{}, fmt.Errorf("game %v: %w", info.gameNumber, err)
		}
		var player = white
		if pos.SideToMove() == board.Black {
			player = black
		}
		move, err := player.ChooseMove(ctx, pos)
		if err != nil {
			return GameResult{}, fmt.Errorf("game %v: %v: %w", info.gameNumber, player.Name(), err)
		}
		if err := game.MoveStr(move.String()); err != nil {
			return GameResult{}, fmt.Errorf("game %v: %v played bad move %v: %w",
				info.gameNumber, player.Name(), move, err)
		}
	}

	result.Outcome = game.Outcome()
	if result.Comment == commentPlyLimit {
		result.Outcome = chess.Draw
	} else {
		result.Comment = game.Method().String()
	}
	result.Plies = len(game.Moves())
	result.PGN = game.String()
	return result, nil
}

// claimDraw ends the game on threefold repetition or the fifty move rule,
// which chess.Game only offers as claims.
func claimDraw(game *chess.Game) bool {
	for _, method := range game.EligibleDraws() {
		if method == chess.ThreefoldRepetition || method == chess.FiftyMoveRule {
			return game.Draw(method) == nil
		}
	}
	return false
}
