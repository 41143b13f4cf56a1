package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	Width, Height uint
	NumMines      uint
	Mode          GameMode

	Seed int64

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	Director Director

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewConfig() Config {
	return Config{
		Width:             30,
		Height:            16,
		NumMines:          99,
		Mode:              Classic,
		Director:          nil,
		Snapshot:          nil,
		LoadSnapshotFresh: true,
	}
}

// Result summarizes a finished game.
type Result struct {
	Seed  int64
	State BoardState

	// Turns is the number of Act rounds the director played.
	Turns uint
	// Revealed is the number of safe cells opened.
	Revealed uint
	// Flagged is the number of flags standing at the end.
	Flagged uint
}

// CreateBoard builds the board a run of this config would play: a freshly
// generated one, or the configured Snapshot.
func (config Config) CreateBoard() (*Board, error) {
	if config.Snapshot == nil {
		if config.Width == 0 || config.Height == 0 {
			return nil, errors.New("game: board dimensions must be positive")
		}
		if config.NumMines > config.Width*config.Height {
			return nil, fmt.Errorf("game: %d mines cannot fit in %d cells",
				config.NumMines, config.Width*config.Height)
		}

		return createFilledBoard(boardConfig{
			Width:    config.Width,
			Height:   config.Height,
			NumMines: config.NumMines,
			Mode:     config.Mode,
			Seed:     config.Seed,
		}), nil
	}

	board := config.Snapshot.CreateBoard(
		boardConfig{
			Mode: config.Mode,
		},
		config.LoadSnapshotFresh,
	)
	if board == nil {
		return nil, errors.New("game: snapshot does not describe a valid board")
	}
	return board, nil
}

// Run plays a single game to completion under config.Director and returns
// its outcome. The game ends when a mine is revealed, when the flagged
// cells exactly match the mines, or when the director runs out of moves.
func Run(config Config) (*Result, error) {
	if config.Director == nil {
		return nil, errors.New("game: config.Director is required")
	}

	board, err := config.CreateBoard()
	if err != nil {
		return nil, err
	}

	director := config.Director
	director.Init(board)
	defer director.End()

	result := &Result{Seed: board.seed}

	for board.canPlay() {
		if board.HasWon() {
			board.win()
			break
		}

		actions := director.Act()
		if len(actions) == 0 {
			log.WithFields(log.Fields{
				"seed":  board.seed,
				"turns": result.Turns,
			}).Warn("director returned no actions; abandoning game")
			break
		}
		result.Turns++

		for _, action := range actions {
			revealed := board.Apply(action)
			if !board.canPlay() {
				break
			}

			for _, cell := range revealed {
				director.CellRevealed(cell)
			}
		}
	}

	result.State = board.state
	result.Revealed = board.numRevealed
	result.Flagged = board.numFlags

	config.saveSnapshot(board)

	return result, nil
}

func (config Config) saveSnapshot(board *Board) {
	if config.SavedSnapshotsDir == "" {
		return
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
				log.WithError(err).Error("unable to create snapshot directory")
				return
			}
		} else {
			log.WithError(err).Error("unable to stat snapshot directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		log.WithField("path", config.SavedSnapshotsDir).
			Error("snapshot path is not a directory; cannot save snapshots to it")
		return
	}

	filename := config.generateReplayFilename(board, time.Now())
	path := filepath.Join(config.SavedSnapshotsDir, filename)

	file, err := os.Create(path)
	if err != nil {
		log.WithError(err).Error("unable to create snapshot file")
		return
	}
	defer file.Close()

	snapshot := board.snapshot()
	if _, err := file.WriteString(snapshot.Serialize()); err != nil {
		log.WithError(err).Error("unable to write snapshot")
		return
	}

	log.WithField("path", path).Debug("saved board snapshot")
}

func (config Config) generateReplayFilename(board *Board, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	filenameBuilder.WriteString(strconv.FormatInt(board.seed, 10))
	filenameBuilder.WriteString("_")

	var stateStr string
	switch board.state {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
