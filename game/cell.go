package game

import (
	"fmt"
)

type Cell struct {
	board *Board

	x, y     uint
	idx      uint
	numMines uint

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) serialize() rune {
	switch {
	case cell.isMine:
		switch {
		case cell.isLosingMine:
			return '*'
		case cell.isFlagged:
			return 'F'
		default:
			return 'O'
		}
	case cell.isFlagged:
		return 'f'
	case cell.isRevealed:
		return '.'
	default:
		return '#'
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	switch c {
	case '*', 'F', 'O':
		cell.isMine = true

		switch c {
		case '*':
			if !fresh {
				cell.isLosingMine = true
				cell.isRevealed = true
			}
		case 'F':
			if !fresh {
				cell.setFlagged(true)
			}
		}
	case 'f':
		if !fresh {
			cell.setFlagged(true)
		}
	case '.':
		if !fresh {
			cell.isRevealed = true
			cell.board.markRevealed(cell)
		}
	case '#':
	default:
		return false
	}

	return true
}

func (cell *Cell) X() uint {
	return cell.x
}

func (cell *Cell) Y() uint {
	return cell.y
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// NumMines returns the number of mines neighbouring the cell.
func (cell *Cell) NumMines() uint {
	return cell.numMines
}

func (cell *Cell) Neighbors() []*Cell {
	board := cell.board
	neighbors := make([]*Cell, 0, 8)

	isAtTopBorder := cell.y < 1
	isAtBottomBorder := cell.y >= board.height-1

	if cell.x >= 1 {
		neighbors = append(neighbors, board.CellAt(cell.x-1, cell.y))

		if !isAtTopBorder {
			neighbors = append(neighbors, board.CellAt(cell.x-1, cell.y-1))
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, board.CellAt(cell.x-1, cell.y+1))
		}
	}

	if cell.x < board.width-1 {
		neighbors = append(neighbors, board.CellAt(cell.x+1, cell.y))

		if !isAtTopBorder {
			neighbors = append(neighbors, board.CellAt(cell.x+1, cell.y-1))
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, board.CellAt(cell.x+1, cell.y+1))
		}
	}

	if !isAtTopBorder {
		neighbors = append(neighbors, board.CellAt(cell.x, cell.y-1))
	}
	if !isAtBottomBorder {
		neighbors = append(neighbors, board.CellAt(cell.x, cell.y+1))
	}

	return neighbors
}

// Reveal returns an action which opens the cell.
func (cell *Cell) Reveal() CellAction {
	return CellAction{
		cell:   cell,
		action: ActionReveal,
	}
}

// Flag returns an action which toggles the cell's flag.
func (cell *Cell) Flag() CellAction {
	return CellAction{
		cell:   cell,
		action: ActionFlag,
	}
}

func (cell *Cell) toggleFlagged() {
	cell.setFlagged(!cell.isFlagged)
}

func (cell *Cell) setFlagged(isFlagged bool) {
	if cell.isFlagged == isFlagged {
		return
	}
	cell.isFlagged = isFlagged

	if cell.isFlagged {
		cell.board.numFlags++
	} else {
		cell.board.numFlags--
	}
}

func (cell *Cell) setMine(isMine bool) {
	if isMine == cell.isMine {
		return
	}
	cell.isMine = isMine

	for _, neighbor := range cell.Neighbors() {
		if isMine {
			neighbor.numMines++
		} else {
			neighbor.numMines--
		}
	}
}

// reveal opens the single cell, reporting whether its state changed.
// Revealing a mine loses the game.
func (cell *Cell) reveal() bool {
	if cell.isFlagged || cell.isRevealed {
		return false
	}
	cell.isRevealed = true

	if cell.isMine {
		cell.isLosingMine = true
		cell.board.lose()
	} else {
		cell.board.markRevealed(cell)
	}

	return true
}

// cascadeEmpty opens the cell together with the zero-mine region around it,
// returning every cell newly opened.
func (cell *Cell) cascadeEmpty() []*Cell {
	var revealed []*Cell

	flood(
		cell,
		func(cell *Cell) {
			if cell.reveal() {
				revealed = append(revealed, cell)
			}
		},
		func(cell *Cell) []*Cell {
			return cell.Neighbors()
		},
	)

	return revealed
}
