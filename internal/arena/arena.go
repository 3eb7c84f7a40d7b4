package arena

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pearstopher/chess/pkg/board"
	"github.com/pearstopher/chess/pkg/eval"
)

type Arena struct {
	PlayerA     PlayerConfig
	PlayerB     PlayerConfig
	Weights     eval.Weights
	Games       int
	Concurrency int
	MaxPlies    int
	// Openings are starting FENs used round robin. Empty means the initial position.
	Openings []string
	Logger   zerolog.Logger
}

// Run plays Games games between player A and player B, alternating colours,
// and returns the score of player A.
func (a *Arena) Run(ctx context.Context) (Summary, error) {
	if a.Games <= 0 {
		return Summary{}, errors.New("arena: number of games must be positive")
	}
	if a.MaxPlies <= 0 {
		return Summary{}, errors.New("arena: ply limit must be positive")
	}
	var concurrency = a.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	var openings = a.Openings
	if len(openings) == 0 {
		openings = []string{board.InitialPositionFen}
	}

	a.Logger.Info().
		Int("NumCPU", runtime.NumCPU()).
		Int("GOMAXPROCS", runtime.GOMAXPROCS(0)).
		Int("gameConcurrency", concurrency).
		Int("games", a.Games).
		Msg("arena started")
	defer a.Logger.Info().Msg("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan GameResult)

	g.Go(func() error {
		defer close(gameInfos)
		return loadGames(ctx, openings, a.Games, gameInfos)
	})

	var summary Summary
	g.Go(func() error {
		var err error
		summary, err = showResults(ctx, gameResults, a.Logger)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- GameResult,
) error {
	var playerA, err = NewPlayer(a.PlayerA, a.Weights, a.Logger)
	if err != nil {
		return err
	}
	playerB, err := NewPlayer(a.PlayerB, a.Weights, a.Logger)
	if err != nil {
		return err
	}
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, playerA, playerB, a.MaxPlies, gameInfo, a.Logger)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

// loadGames pairs every opening with both colour assignments.
func loadGames(
	ctx context.Context,
	openings []string,
	games int,
	gameInfos chan<- gameInfo,
) error {
	for i := 0; i < games; i++ {
		var info = gameInfo{
			opening:      openings[(i/2)%len(openings)],
			playerAWhite: i%2 == 0,
			gameNumber:   i + 1,
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- info:
		}
	}
	return nil
}
