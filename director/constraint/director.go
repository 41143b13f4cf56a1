// Package constraint provides a director which plays with a
// constraint-propagation knowledge base. Every revealed count becomes a
// constraint over its hidden neighbours, constraints are narrowed against
// each other until no new facts appear, and moves prefer cells proven safe.
package constraint

import (
	log "github.com/sirupsen/logrus"

	"github.com/they4kman/minemind/game"
	"github.com/they4kman/minemind/knowledge"
)

type Director struct {
	game.BaseDirector

	board *game.Board
	base  *knowledge.Base
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.base = knowledge.NewBase(board.Width(), board.Height(), board.Rand())
}

func (director *Director) CellRevealed(cell *game.Cell) {
	director.base.Observe(
		knowledge.Cell{X: cell.X(), Y: cell.Y()},
		int(cell.NumMines()),
	)
}

// Act plays a cell proven safe when one exists, falls back to a random
// unplayed cell, and once no cell is left to play, flags every remaining
// cell as a mine.
func (director *Director) Act() []game.CellAction {
	if cell, ok := director.base.SafeMove(); ok {
		log.WithField("cell", cell).Debug("making safe move")
		return []game.CellAction{director.cellAt(cell).Reveal()}
	}

	if cell, ok := director.base.RandomMove(director.board.NumCells()); ok {
		log.WithFields(log.Fields{
			"cell":        cell,
			"constraints": director.base.NumConstraints(),
		}).Debug("no known safe moves, making random move")
		return []game.CellAction{director.cellAt(cell).Reveal()}
	}

	// No moves left to make: every unplayed cell is a known mine.
	var actions []game.CellAction
	for cell := range director.base.Mines() {
		boardCell := director.cellAt(cell)
		if !boardCell.IsFlagged() {
			actions = append(actions, boardCell.Flag())
		}
	}
	log.WithField("flags", len(actions)).Debug("no moves left, flagging mines")
	return actions
}

func (director *Director) cellAt(cell knowledge.Cell) *game.Cell {
	return director.board.CellAt(cell.X, cell.Y)
}
