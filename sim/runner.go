// Package sim plays batches of games and aggregates their outcomes.
package sim

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/they4kman/minemind/game"
)

// Config describes a batch of games to play.
type Config struct {
	// Game configures each game of the batch. Game.Seed is the base seed;
	// game i plays with Game.Seed+i.
	Game game.Config

	// Games is the number of games to play. Zero or negative plays one.
	Games int

	// Parallelism caps how many games run concurrently. Zero or negative
	// runs games one at a time.
	Parallelism int

	// NewDirector builds a fresh director for each game.
	NewDirector func() game.Director
}

// Stats aggregates the outcomes of a batch. Games which ended neither won
// nor lost count toward Games only.
type Stats struct {
	Games  uint
	Wins   uint
	Losses uint

	Turns    uint64
	Revealed uint64
	Flagged  uint64
}

func (stats *Stats) WinRate() float64 {
	if stats.Games == 0 {
		return 0
	}
	return float64(stats.Wins) / float64(stats.Games)
}

// Run plays config.Games independent games and aggregates their outcomes.
// Seeds derive from the base seed and game index, so a batch is
// reproducible from its configuration. Run stops early if ctx is cancelled
// or any game fails to start.
func Run(ctx context.Context, config Config) (*Stats, error) {
	if config.NewDirector == nil {
		return nil, errors.New("sim: config.NewDirector is required")
	}

	numGames := config.Games
	if numGames <= 0 {
		numGames = 1
	}
	parallelism := config.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}

	var (
		stats     Stats
		statsLock sync.Mutex
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(parallelism)

	for i := 0; i < numGames; i++ {
		gameConfig := config.Game
		gameConfig.Seed = config.Game.Seed + int64(i)
		gameConfig.Director = config.NewDirector()

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := game.Run(gameConfig)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"seed":     result.Seed,
				"state":    result.State,
				"turns":    result.Turns,
				"revealed": result.Revealed,
			}).Debug("game finished")

			statsLock.Lock()
			defer statsLock.Unlock()

			stats.Games++
			switch result.State {
			case game.Won:
				stats.Wins++
			case game.Lost:
				stats.Losses++
			}
			stats.Turns += uint64(result.Turns)
			stats.Revealed += uint64(result.Revealed)
			stats.Flagged += uint64(result.Flagged)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}
