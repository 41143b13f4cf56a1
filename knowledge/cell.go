package knowledge

import "fmt"

// Cell identifies a single board square by column (X) and row (Y). Cells are
// plain values: they compare with == and key maps/sets directly.
type Cell struct {
	X, Y uint
}

func (cell Cell) String() string {
	return fmt.Sprintf("(%d, %d)", cell.X, cell.Y)
}
