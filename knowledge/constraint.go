package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/they4kman/minemind/util/collections"
)

// Constraint is a single statement of board knowledge: exactly count of the
// cells it covers are mines. Constraints narrow in place as cells are
// resolved, and the zero-cell constraint carries no information (the Base
// prunes it).
type Constraint struct {
	cells collections.Set[Cell]
	count int
}

// NewConstraint builds a constraint over a copy of cells. count == 0 and
// count == len(cells) are both legal; they are the shapes deductions
// come from.
func NewConstraint(cells collections.Set[Cell], count int) Constraint {
	return Constraint{
		cells: cells.Copy(),
		count: count,
	}
}

// KnownMines returns the cells this constraint proves to be mines: all of
// them, when the mine count equals the number of cells. Otherwise nothing is
// certain and the result is empty.
func (constraint *Constraint) KnownMines() collections.Set[Cell] {
	if constraint.count > 0 && constraint.count == constraint.cells.Len() {
		return constraint.cells.Copy()
	}
	return make(collections.Set[Cell])
}

// KnownSafes returns the cells this constraint proves to be safe: all of
// them, when the mine count is zero.
func (constraint *Constraint) KnownSafes() collections.Set[Cell] {
	if constraint.count == 0 {
		return constraint.cells.Copy()
	}
	return make(collections.Set[Cell])
}

// MarkMine narrows the constraint with the fact that cell is a mine: the
// cell leaves the set and the count drops by one. Reports whether the
// constraint changed.
func (constraint *Constraint) MarkMine(cell Cell) bool {
	if !constraint.cells.Contains(cell) {
		return false
	}
	constraint.cells.Remove(cell)
	constraint.count--
	return true
}

// MarkSafe narrows the constraint with the fact that cell is safe: the cell
// leaves the set and the count stands. Reports whether the constraint
// changed.
func (constraint *Constraint) MarkSafe(cell Cell) bool {
	if !constraint.cells.Contains(cell) {
		return false
	}
	constraint.cells.Remove(cell)
	return true
}

// Equal reports structural equivalence: same cell set, same count.
func (constraint *Constraint) Equal(other *Constraint) bool {
	return constraint.count == other.count && constraint.cells.Equal(other.cells)
}

func (constraint Constraint) String() string {
	cells := make([]Cell, 0, constraint.cells.Len())
	for cell := range constraint.cells {
		cells = append(cells, cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	var cellsRepr strings.Builder
	for i, cell := range cells {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(cell.String())
	}

	return fmt.Sprintf("{%s} = %d", cellsRepr.String(), constraint.count)
}
