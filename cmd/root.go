package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/they4kman/minemind/director/constraint"
	"github.com/they4kman/minemind/director/random"
	"github.com/they4kman/minemind/game"
	"github.com/they4kman/minemind/sim"
)

var (
	gameConfig   = game.NewConfig()
	numGames     int
	parallelism  int
	directorName string
	snapshotPath string
	logLevel     string
	logFile      string
)

var rootCmd = &cobra.Command{
	Use:   "minemind",
	Short: "Play computer-driven Minesweeper and report the outcomes",
	Long: `minemind plays batches of headless Minesweeper games with a
constraint-propagation player and reports how they went.

Play a single expert board
	minemind

Play a thousand games across eight workers
	minemind -n 1000 -p 8

Replay a saved board with the baseline random player
	minemind --snapshot replay.yaml -d random
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := setupLogging(); err != nil {
			return err
		}

		newDirector, err := directorFactory(directorName)
		if err != nil {
			return err
		}

		if snapshotPath != "" {
			in, err := os.ReadFile(snapshotPath)
			if err != nil {
				return fmt.Errorf("unable to read snapshot: %w", err)
			}
			snapshot, err := game.LoadSnapshot(string(in))
			if err != nil {
				return fmt.Errorf("unable to parse snapshot: %w", err)
			}
			gameConfig.Snapshot = snapshot
		}

		if gameConfig.Seed == 0 {
			gameConfig.Seed = time.Now().UnixNano()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		started := time.Now()
		stats, err := sim.Run(ctx, sim.Config{
			Game:        gameConfig,
			Games:       numGames,
			Parallelism: parallelism,
			NewDirector: newDirector,
		})
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"games":    stats.Games,
			"wins":     stats.Wins,
			"losses":   stats.Losses,
			"win_rate": fmt.Sprintf("%.1f%%", stats.WinRate()*100),
			"turns":    stats.Turns,
			"elapsed":  time.Since(started).Round(time.Millisecond),
		}).Info("simulation complete")

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &log.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to set up log file: %w", err)
		}
		log.AddHook(hook)
	}

	return nil
}

func directorFactory(name string) (func() game.Director, error) {
	switch name {
	case "constraint":
		return func() game.Director { return &constraint.Director{} }, nil
	case "random":
		return func() game.Director { return &random.Director{} }, nil
	}
	return nil, fmt.Errorf("unknown director %q (want constraint or random)", name)
}

type gameModeValue game.GameMode

func newGameModeValue(val game.GameMode, p *game.GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

var gameModes = map[string]game.GameMode{
	"win7":    game.Win7,
	"classic": game.Classic,
}

func (modeVal *gameModeValue) String() string {
	for name, mode := range gameModes {
		if mode == game.GameMode(*modeVal) {
			return name
		}
	}
	return fmt.Sprint(*modeVal)
}

func (modeVal *gameModeValue) Set(value string) error {
	if mode, isValid := gameModes[value]; isValid {
		*modeVal = gameModeValue(mode)
		return nil
	} else {
		return fmt.Errorf("invalid game mode")
	}
}

func (modeVal *gameModeValue) Type() string {
	return "game.GameMode"
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().UintVarP(&gameConfig.Width, "width", "w", 30, "Width of game board, in cells")
	rootCmd.Flags().UintVarP(&gameConfig.Height, "height", "h", 16, "Height of game board, in cells")
	rootCmd.Flags().UintVarP(&gameConfig.NumMines, "mines", "m", 99, "Number of mines to place in the game board")
	rootCmd.Flags().Var(newGameModeValue(game.Win7, &gameConfig.Mode), "mode", `Game mode, controlling behaviour of the first reveal.
win7: all cells surrounding the first-revealed cell are cleared of mines (first reveal never loses)
classic: mines are left as is (first reveal can lose the game)`)
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Base seed for board generation (0 seeds from the current time)")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Play a board loaded from this snapshot file instead of a generated one")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshot-dir", "", "Directory to save final board snapshots to")

	rootCmd.Flags().IntVarP(&numGames, "games", "n", 1, "Number of games to play")
	rootCmd.Flags().IntVarP(&parallelism, "parallel", "p", 1, "Number of games to play concurrently")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "constraint", "Director to play the games (constraint or random)")

	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warning, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Also write logs to this file, with rotation")
}
