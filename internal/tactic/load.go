package tactic

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/engine"
)

type EpdItem struct {
	content   string
	fen       string
	bestMoves []board.Move
}

func LoadEpd(filePath string, logger zerolog.Logger) ([]EpdItem, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadEpd(file, logger)
}

// ReadEpd skips lines it cannot parse, logging each one.
func ReadEpd(r io.Reader, logger zerolog.Logger) ([]EpdItem, error) {
	var result []EpdItem
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var test, err = parseEpdTest(line)
		if err != nil {
			logger.Warn().Err(err).Msg("skip epd")
			continue
		}
		result = append(result, test)
	}
	return result, scanner.Err()
}

// parseEpdTest reads "<fen> bm <san>...;". Half move clock and move number
// are optional.
func parseEpdTest(s string) (EpdItem, error) {
	var bmBegin = strings.Index(s, " bm ")
	if bmBegin == -1 {
		return EpdItem{}, fmt.Errorf("no best move %v", s)
	}
	var bmEnd = strings.Index(s[bmBegin:], ";")
	if bmEnd == -1 {
		bmEnd = len(s)
	} else {
		bmEnd += bmBegin
	}
	var fen = strings.TrimSpace(s[:bmBegin])
	if len(strings.Fields(fen)) == 4 {
		fen += " 0 1"
	}
	var sBestMoves = strings.Fields(s[bmBegin:bmEnd])[1:]

	var fenOption, err = chess.FEN(fen)
	if err != nil {
		return EpdItem{}, err
	}
	var pos = chess.NewGame(fenOption).Position()
	p, err := board.NewPositionFromFEN(fen)
	if err != nil {
		return EpdItem{}, err
	}

	var bestMoves []board.Move
	for _, sBestMove := range sBestMoves {
		var move, err = chess.AlgebraicNotation{}.Decode(pos, sBestMove)
		if err != nil {
			return EpdItem{}, fmt.Errorf("parse move failed %v: %w", s, err)
		}
		bm, err := p.ParseMove(chess.UCINotation{}.Encode(pos, move))
		if err != nil {
			return EpdItem{}, fmt.Errorf("parse move failed %v: %w", s, err)
		}
		bestMoves = append(bestMoves, bm)
	}
	if len(bestMoves) == 0 {
		return EpdItem{}, fmt.Errorf("empty best moves %v", s)
	}

	return EpdItem{
		content:   s,
		fen:       fen,
		bestMoves: bestMoves,
	}, nil
}

type UciEngine interface {
	Search(ctx context.Context, searchParams engine.SearchParams) engine.SearchInfo
}

type SolveResult struct {
	Solved int
	Total  int
	Nodes  int64
}

// SolveTactic searches every test at a fixed depth and counts the tests
// whose best move was found.
func SolveTactic(ctx context.Context, tests []EpdItem, eng UciEngine, depth int, logger zerolog.Logger) (SolveResult, error) {
	var result SolveResult
	for i := range tests {
		var test = &tests[i]
		var p, err = board.NewPositionFromFEN(test.fen)
		if err != nil {
			return result, err
		}
		var si = eng.Search(ctx, engine.SearchParams{
			Position: p,
			Depth:    depth,
		})
		if si.Status == engine.StatusCancelled {
			return result, ctx.Err()
		}
		result.Total++
		result.Nodes += si.Nodes
		var solved = containsMove(test.bestMoves, si.Move)
		if solved {
			result.Solved++
		}
		logger.Info().
			Int("test", i+1).
			Bool("solved", solved).
			Str("move", si.Move.String()).
			Str("score", si.Score.String()).
			Int64("nodes", si.Nodes).
			Str("epd", test.content).
			Msg("tactic")
	}
	return result, nil
}

func containsMove(ml []board.Move, move board.Move) bool {
	for i := range ml {
		if ml[i] == move {
			return true
		}
	}
	return false
}
