package knowledge

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gammazero/deque"
	"github.com/they4kman/minemind/util/collections"
)

// Base accumulates everything the player can prove about a board: which
// cells were played, which are certainly safe, which are certainly mines,
// and the open constraints still being narrowed. All knowledge only ever
// grows; no operation retracts a proven cell.
//
// A Base is not safe for concurrent use. Every operation runs to completion
// on the caller's goroutine, and callers running games in parallel must give
// each game its own Base.
type Base struct {
	width, height uint

	movesMade collections.Set[Cell]
	mines     collections.Set[Cell]
	safes     collections.Set[Cell]

	constraints []Constraint

	rand *rand.Rand
}

// NewBase returns an empty knowledge base for a width×height board. rng
// drives RandomMove; passing nil falls back to a time-seeded source.
func NewBase(width, height uint, rng *rand.Rand) *Base {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Base{
		width:     width,
		height:    height,
		movesMade: make(collections.Set[Cell]),
		mines:     make(collections.Set[Cell]),
		safes:     make(collections.Set[Cell]),
		rand:      rng,
	}
}

// MarkMine records cell as a proven mine and narrows every stored
// constraint with it. Marking an already-known mine is a no-op.
func (base *Base) MarkMine(cell Cell) {
	if base.mines.Contains(cell) {
		return
	}
	if base.safes.Contains(cell) {
		panic(fmt.Sprintf("knowledge: cell %s proven both safe and mine", cell))
	}

	base.mines.Add(cell)
	for i := range base.constraints {
		base.constraints[i].MarkMine(cell)
	}
	base.prune()
}

// MarkSafe records cell as proven safe and narrows every stored constraint
// with it. Marking an already-known safe cell is a no-op.
func (base *Base) MarkSafe(cell Cell) {
	if base.safes.Contains(cell) {
		return
	}
	if base.mines.Contains(cell) {
		panic(fmt.Sprintf("knowledge: cell %s proven both safe and mine", cell))
	}

	base.safes.Add(cell)
	for i := range base.constraints {
		base.constraints[i].MarkSafe(cell)
	}
	base.prune()
}

// Observe folds one revealed cell into the base: the cell itself is safe,
// and exactly count of its unresolved neighbors are mines. Deductions run
// to a fixpoint, then a single subset-elimination pass derives follow-up
// constraints. Observing the same cell twice is a no-op.
func (base *Base) Observe(cell Cell, count int) {
	if base.movesMade.Contains(cell) {
		return
	}

	base.movesMade.Add(cell)
	base.MarkSafe(cell)

	cells := make(collections.Set[Cell])
	for _, neighbor := range base.neighbors(cell) {
		switch {
		case base.mines.Contains(neighbor):
			count--
		case base.safes.Contains(neighbor):
		default:
			cells.Add(neighbor)
		}
	}
	base.addConstraint(NewConstraint(cells, count))

	base.propagate()
	base.eliminate()
}

// SafeMove returns a cell proven safe that has not been played yet. Cells
// are scanned in row-major order, so runs with the same seed replay
// identically.
func (base *Base) SafeMove() (Cell, bool) {
	for y := uint(0); y < base.height; y++ {
		for x := uint(0); x < base.width; x++ {
			cell := Cell{X: x, Y: y}
			if base.safes.Contains(cell) && !base.movesMade.Contains(cell) {
				return cell, true
			}
		}
	}
	return Cell{}, false
}

// RandomMove returns a uniformly random cell that has been neither played
// nor proven a mine. It returns false when the played and proven-mine cells
// already cover the board.
func (base *Base) RandomMove(totalCells uint) (Cell, bool) {
	if uint(base.movesMade.Len()+base.mines.Len()) >= totalCells {
		return Cell{}, false
	}

	candidates := make([]Cell, 0, totalCells)
	for y := uint(0); y < base.height; y++ {
		for x := uint(0); x < base.width; x++ {
			cell := Cell{X: x, Y: y}
			if !base.movesMade.Contains(cell) && !base.mines.Contains(cell) {
				candidates = append(candidates, cell)
			}
		}
	}
	if len(candidates) == 0 {
		panic(fmt.Sprintf(
			"knowledge: %d moves and %d known mines do not cover %d cells, yet no candidate remains",
			base.movesMade.Len(), base.mines.Len(), totalCells,
		))
	}

	return candidates[base.rand.Intn(len(candidates))], true
}

// Mines returns a copy of the proven-mine cells.
func (base *Base) Mines() collections.Set[Cell] {
	return base.mines.Copy()
}

// Safes returns a copy of the proven-safe cells.
func (base *Base) Safes() collections.Set[Cell] {
	return base.safes.Copy()
}

// MovesMade returns a copy of the played cells.
func (base *Base) MovesMade() collections.Set[Cell] {
	return base.movesMade.Copy()
}

// NumConstraints returns the number of open constraints.
func (base *Base) NumConstraints() int {
	return len(base.constraints)
}

// resolution is one queued deduction waiting to be applied to the whole
// base.
type resolution struct {
	cell Cell
	mine bool
}

// propagate applies known-mine/known-safe deductions until one full scan
// over the constraints yields nothing new. Resolutions found during a scan
// are queued and applied afterwards, so the scan never mutates the
// constraints it is reading. Every applied resolution removes its cell from
// each constraint covering it, which strictly shrinks the finite pool of
// unresolved cells: the loop terminates.
func (base *Base) propagate() {
	var pending deque.Deque[resolution]
	for {
		for i := range base.constraints {
			constraint := &base.constraints[i]
			for cell := range constraint.KnownMines() {
				pending.PushBack(resolution{cell: cell, mine: true})
			}
			for cell := range constraint.KnownSafes() {
				pending.PushBack(resolution{cell: cell, mine: false})
			}
		}

		if pending.Len() == 0 {
			return
		}

		for pending.Len() > 0 {
			next := pending.PopFront()
			if next.mine {
				base.MarkMine(next.cell)
			} else {
				base.MarkSafe(next.cell)
			}
		}
	}
}

// eliminate runs one subset-elimination pass: every pair where one
// constraint's cells are contained in another's yields the difference
// constraint (superset minus subset, counts subtracted). Derivations are
// collected first and appended after the scan; they are not eliminated
// against each other until a later pass.
func (base *Base) eliminate() {
	var derived []Constraint
	for i := 0; i < len(base.constraints); i++ {
		for j := i + 1; j < len(base.constraints); j++ {
			first := &base.constraints[i]
			second := &base.constraints[j]

			if _, isSubset := first.cells.IntersectionEx(second.cells); isSubset {
				derived = append(derived, Constraint{
					cells: second.cells.Difference(first.cells),
					count: second.count - first.count,
				})
			} else if _, isSubset := second.cells.IntersectionEx(first.cells); isSubset {
				derived = append(derived, Constraint{
					cells: first.cells.Difference(second.cells),
					count: first.count - second.count,
				})
			}
		}
	}

	for _, constraint := range derived {
		base.addConstraint(constraint)
	}
}

// addConstraint stores a constraint unless it is empty or a structural
// duplicate of one already stored. Reports whether it was added.
func (base *Base) addConstraint(constraint Constraint) bool {
	if constraint.cells.Len() == 0 {
		return false
	}
	for i := range base.constraints {
		if base.constraints[i].Equal(&constraint) {
			return false
		}
	}

	base.constraints = append(base.constraints, constraint)
	return true
}

// prune drops constraints that carry no information: emptied ones, and
// duplicates of an earlier entry.
func (base *Base) prune() {
	kept := base.constraints[:0]
	for i := range base.constraints {
		constraint := &base.constraints[i]
		if constraint.cells.Len() == 0 {
			continue
		}

		duplicate := false
		for j := range kept {
			if kept[j].Equal(constraint) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, *constraint)
		}
	}
	base.constraints = kept
}

// neighbors returns the in-bounds cells surrounding cell, excluding cell
// itself.
func (base *Base) neighbors(cell Cell) []Cell {
	neighbors := make([]Cell, 0, 8)

	isAtTopBorder := cell.Y < 1
	isAtBottomBorder := cell.Y >= base.height-1

	if cell.X >= 1 {
		neighbors = append(neighbors, Cell{X: cell.X - 1, Y: cell.Y})

		if !isAtTopBorder {
			neighbors = append(neighbors, Cell{X: cell.X - 1, Y: cell.Y - 1})
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, Cell{X: cell.X - 1, Y: cell.Y + 1})
		}
	}

	if cell.X < base.width-1 {
		neighbors = append(neighbors, Cell{X: cell.X + 1, Y: cell.Y})

		if !isAtTopBorder {
			neighbors = append(neighbors, Cell{X: cell.X + 1, Y: cell.Y - 1})
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, Cell{X: cell.X + 1, Y: cell.Y + 1})
		}
	}

	if !isAtTopBorder {
		neighbors = append(neighbors, Cell{X: cell.X, Y: cell.Y - 1})
	}
	if !isAtBottomBorder {
		neighbors = append(neighbors, Cell{X: cell.X, Y: cell.Y + 1})
	}

	return neighbors
}
