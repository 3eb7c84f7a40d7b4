package arena

import (
	"context"
	"math"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
)

func showResults(
	ctx context.Context,
	gameResults <-chan GameResult,
	logger zerolog.Logger,
) (Summary, error) {
	var summary Summary
	for gameResult := range gameResults {
		summary.Games = append(summary.Games, gameResult)
		switch {
		case gameResult.Outcome == chess.Draw:
			summary.Draws++
		case gameResult.Outcome == chess.WhiteWon && gameResult.PlayerAWhite ||
			gameResult.Outcome == chess.BlackWon && !gameResult.PlayerAWhite:
			summary.Wins++
		default:
			summary.Losses++
		}
		var stat = computeStat(summary.Wins, summary.Losses, summary.Draws)
		logger.Info().
			Int("game", gameResult.Number).
			Str("white", gameResult.White).
			Str("black", gameResult.Black).
			Str("result", gameResult.Outcome.String()).
			Str("comment", gameResult.Comment).
			Int("plies", gameResult.Plies).
			Msg("finished game")
		logger.Info().
			Int("wins", summary.Wins).
			Int("losses", summary.Losses).
			Int("draws", summary.Draws).
			Float64("score", stat.winningFraction).
			Float64("elo", stat.eloDifference).
			Float64("los", stat.los*100).
			Msg("score")
	}
	return summary, ctx.Err()
}

type gameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) gameStatistics {
	var games = wins + losses + draws
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	return gameStatistics{
		winningFraction: winningFraction,
		eloDifference:   eloDifference,
		los:             los,
	}
}
