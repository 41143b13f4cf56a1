package game

import (
	"math/rand"
	"strings"
)

type Board struct {
	width, height uint // in number of cells
	numMines      uint
	mode          GameMode
	seed          int64
	cells         [][]Cell

	state       BoardState
	numFlags    uint
	numRevealed uint
	hasRevealed bool

	rand *rand.Rand
}

type boardConfig struct {
	Width, Height uint
	NumMines      uint
	Mode          GameMode
	Seed          int64
}

func (board *Board) Width() uint {
	return board.width
}

func (board *Board) Height() uint {
	return board.height
}

func (board *Board) NumCells() uint {
	return board.width * board.height
}

func (board *Board) NumMines() uint {
	return board.numMines
}

func (board *Board) NumFlags() uint {
	return board.numFlags
}

func (board *Board) NumRevealed() uint {
	return board.numRevealed
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) CellAt(x, y uint) *Cell {
	if x < board.width && y < board.height {
		return &board.cells[y][x]
	}
	return nil
}

func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for y := uint(0); y < board.height; y++ {
		for x := uint(0); x < board.width; x++ {
			cells = append(cells, board.CellAt(x, y))
		}
	}
	return cells
}

// Apply performs a director action, returning every cell newly revealed by
// it.
func (board *Board) Apply(action CellAction) []*Cell {
	if !board.canPlay() || action.cell == nil {
		return nil
	}

	switch action.action {
	case ActionReveal:
		return board.reveal(action.cell)
	case ActionFlag:
		if !action.cell.isRevealed {
			action.cell.toggleFlagged()
		}
	}
	return nil
}

func (board *Board) reveal(cell *Cell) []*Cell {
	if !board.hasRevealed {
		board.hasRevealed = true

		if board.mode == Win7 {
			board.clearSurroundingMines(cell)
		}
	}

	if cell.isRevealed {
		return nil
	}

	if !cell.isMine && cell.numMines == 0 {
		return cell.cascadeEmpty()
	}
	if cell.reveal() {
		return []*Cell{cell}
	}
	return nil
}

// HasWon reports whether the flagged cells are exactly the mined cells:
// every mine flagged, and nothing else.
func (board *Board) HasWon() bool {
	if board.numFlags != board.numMines {
		return false
	}

	for y := range board.cells {
		for x := range board.cells[y] {
			cell := &board.cells[y][x]
			if cell.isMine != cell.isFlagged {
				return false
			}
		}
	}
	return true
}

func (board *Board) canPlay() bool {
	return board.state == Ongoing
}

func (board *Board) win() {
	board.state = Won
}

func (board *Board) lose() {
	board.state = Lost
}

func (board *Board) markRevealed(cell *Cell) {
	board.numRevealed++
}

// clearSurroundingMines relocates any mines in the 3x3 block around cell to
// free cells elsewhere on the board.
func (board *Board) clearSurroundingMines(cell *Cell) {
	blocked := map[uint]struct{}{cell.idx: {}}
	var displaced []*Cell

	if cell.isMine {
		displaced = append(displaced, cell)
	}
	for _, neighbor := range cell.Neighbors() {
		blocked[neighbor.idx] = struct{}{}
		if neighbor.isMine {
			displaced = append(displaced, neighbor)
		}
	}
	if len(displaced) == 0 {
		return
	}

	var free []*Cell
	for y := uint(0); y < board.height; y++ {
		for x := uint(0); x < board.width; x++ {
			candidate := board.CellAt(x, y)
			if candidate.isMine {
				continue
			}
			if _, isBlocked := blocked[candidate.idx]; isBlocked {
				continue
			}
			free = append(free, candidate)
		}
	}

	board.rand.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})

	// On very dense boards there may not be room for every displaced mine.
	for i, mine := range displaced {
		if i >= len(free) {
			break
		}
		mine.setMine(false)
		free[i].setMine(true)
	}
}

func (board *Board) String() string {
	rows := make([]string, board.height)
	for y := uint(0); y < board.height; y++ {
		row := strings.Builder{}
		for x := uint(0); x < board.width; x++ {
			row.WriteRune(board.CellAt(x, y).serialize())
		}
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}

// createBoard builds a mineless board from config. Mines are placed
// afterwards with fillMines.
func createBoard(config boardConfig) *Board {
	board := Board{
		state:  Ongoing,
		width:  config.Width,
		height: config.Height,
		mode:   config.Mode,
		seed:   config.Seed,
		cells:  make([][]Cell, config.Height),
		rand:   rand.New(rand.NewSource(config.Seed)),
	}

	cellIdx := uint(0)
	for y := uint(0); y < config.Height; y++ {
		row := make([]Cell, config.Width)
		board.cells[y] = row

		for x := uint(0); x < config.Width; x++ {
			cell := &board.cells[y][x]
			cell.board = &board
			cell.idx = cellIdx
			cell.x, cell.y = x, y
			cellIdx++
		}
	}

	return &board
}

func createFilledBoard(config boardConfig) *Board {
	board := createBoard(config)

	// Store cell indexes, to shuffle and fill mines from
	cellIndexes := make([]uint, board.NumCells())
	for i := range cellIndexes {
		cellIndexes[i] = uint(i)
	}

	board.rand.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	mineCells := make([]*Cell, 0, config.NumMines)
	for i := uint(0); i < config.NumMines; i++ {
		cellIdx := cellIndexes[i]
		y, x := cellIdx/board.width, cellIdx%board.width
		mineCells = append(mineCells, board.CellAt(x, y))
	}
	board.fillMines(mineCells)

	return board
}

func (board *Board) fillMines(mineCells []*Cell) {
	for _, cell := range mineCells {
		cell.isMine = true
		for _, neighbor := range cell.Neighbors() {
			neighbor.numMines++
		}
	}
	board.numMines = uint(len(mineCells))
}
