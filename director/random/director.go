// Package random provides a baseline director which reveals cells in a
// random order, with no reasoning at all.
package random

import (
	"github.com/they4kman/minemind/game"
)

type Director struct {
	game.BaseDirector

	board *game.Board
	cells []*game.Cell
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.cells = board.Cells()

	board.Rand().Shuffle(len(director.cells), func(i, j int) {
		director.cells[i], director.cells[j] = director.cells[j], director.cells[i]
	})
}

func (director *Director) Act() []game.CellAction {
	for _, cell := range director.cells {
		if !cell.IsRevealed() && !cell.IsFlagged() {
			return []game.CellAction{cell.Reveal()}
		}
	}
	return nil
}
