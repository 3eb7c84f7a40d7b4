package arena

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type GameRecordRow struct {
	Game    int32  `parquet:"game"`
	White   string `parquet:"white,dict"`
	Black   string `parquet:"black,dict"`
	Opening string `parquet:"opening,dict"`
	Result  string `parquet:"result,dict"`
	Method  string `parquet:"method,dict"`
	Plies   int32  `parquet:"plies"`
	PGN     string `parquet:"pgn,zstd"`
}

func gameRecordRows(games []GameResult) []GameRecordRow {
	var rows = make([]GameRecordRow, 0, len(games))
	for _, g := range games {
		rows = append(rows, GameRecordRow{
			Game:    int32(g.Number),
			White:   g.White,
			Black:   g.Black,
			Opening: g.Opening,
			Result:  g.Outcome.String(),
			Method:  g.Comment,
			Plies:   int32(g.Plies),
			PGN:     g.PGN,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Game < rows[j].Game
	})
	return rows
}

// WriteGameRecords writes one row per game, ordered by game number.
func WriteGameRecords(outPath string, games []GameResult) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Write to a temp file and rename atomically.
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, gameRecordRows(games),
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "arena_game_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
