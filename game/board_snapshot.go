package game

import (
	"strings"

	"gopkg.in/yaml.v2"
)

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateBoard rebuilds the snapshotted board. When fresh is true, flags and
// revealed cells are reset, leaving only the mine layout.
func (snapshot *BoardSnapshot) CreateBoard(config boardConfig, fresh bool) *Board {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	config.Height = uint(len(rows))
	config.Width = uint(len(rows[0]))
	if config.Height == 0 || config.Width == 0 {
		return nil
	}

	config.Seed = snapshot.Seed
	board := createBoard(config)

	var mineCells []*Cell
	for y, row := range rows {
		for x, c := range row {
			cell := board.CellAt(uint(x), uint(y))
			if cell == nil || !cell.deserialize(c, fresh) {
				return nil
			}

			if cell.isMine {
				mineCells = append(mineCells, cell)
			}
		}
	}
	board.fillMines(mineCells)
	board.hasRevealed = board.numRevealed > 0

	return board
}

func (board *Board) snapshot() *BoardSnapshot {
	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: board.String() + "\n",
	}
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
