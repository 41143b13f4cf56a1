package game

type CellActionType int

const (
	ActionReveal CellActionType = iota
	ActionFlag
)

// CellAction is a single move a director wants played: revealing or
// flagging one cell. Actions are built with Cell.Reveal and Cell.Flag and
// performed by Board.Apply.
type CellAction struct {
	cell   *Cell
	action CellActionType
}

func (action CellAction) Cell() *Cell {
	return action.cell
}

type Director interface {
	/**
	 * Initialize the director with the board it will play
	 */
	Init(*Board)

	/**
	 * Return the actions for a single turn. An empty return means the
	 * director has no moves left to make.
	 */
	Act() []CellAction

	/**
	 * Observe a newly revealed cell, including cells opened by a cascade
	 */
	CellRevealed(*Cell)

	/**
	 * Stop acting; the game is over
	 */
	End()
}

// BaseDirector provides no-op defaults for the optional Director callbacks.
type BaseDirector struct{}

func (director *BaseDirector) CellRevealed(*Cell) {}

func (director *BaseDirector) End() {}
