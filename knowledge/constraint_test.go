package knowledge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/they4kman/minemind/util/collections"
)

func cells(pairs ...[2]uint) collections.Set[Cell] {
	set := make(collections.Set[Cell], len(pairs))
	for _, pair := range pairs {
		set.Add(Cell{X: pair[0], Y: pair[1]})
	}
	return set
}

func TestConstraintKnownMines(t *testing.T) {
	tests := []struct {
		name  string
		cells collections.Set[Cell]
		count int
		mines collections.Set[Cell]
	}{
		{
			name:  "count matching cells proves all mines",
			cells: cells([2]uint{0, 0}, [2]uint{1, 0}),
			count: 2,
			mines: cells([2]uint{0, 0}, [2]uint{1, 0}),
		},
		{
			name:  "count below cells proves nothing",
			cells: cells([2]uint{0, 0}, [2]uint{1, 0}),
			count: 1,
			mines: cells(),
		},
		{
			name:  "zero count proves nothing about mines",
			cells: cells([2]uint{0, 0}),
			count: 0,
			mines: cells(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraint := NewConstraint(tt.cells, tt.count)
			assert.True(t, constraint.KnownMines().Equal(tt.mines))
		})
	}
}

func TestConstraintCertaintyOnRandomShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		size := 1 + rng.Intn(8)
		cells := make(collections.Set[Cell])
		for cells.Len() < size {
			cells.Add(Cell{X: uint(rng.Intn(30)), Y: uint(rng.Intn(16))})
		}

		full := NewConstraint(cells, size)
		assert.True(t, full.KnownMines().Equal(cells))
		assert.Equal(t, 0, full.KnownSafes().Len())

		empty := NewConstraint(cells, 0)
		assert.True(t, empty.KnownSafes().Equal(cells))
		assert.Equal(t, 0, empty.KnownMines().Len())

		if size > 1 {
			partial := NewConstraint(cells, 1+rng.Intn(size-1))
			assert.Equal(t, 0, partial.KnownMines().Len())
			assert.Equal(t, 0, partial.KnownSafes().Len())
		}
	}
}

func TestConstraintKnownSafes(t *testing.T) {
	zero := NewConstraint(cells([2]uint{0, 0}, [2]uint{1, 0}), 0)
	assert.True(t, zero.KnownSafes().Equal(cells([2]uint{0, 0}, [2]uint{1, 0})))

	nonzero := NewConstraint(cells([2]uint{0, 0}, [2]uint{1, 0}), 1)
	assert.Equal(t, 0, nonzero.KnownSafes().Len())
}

func TestConstraintMarkMine(t *testing.T) {
	constraint := NewConstraint(cells([2]uint{0, 0}, [2]uint{1, 0}, [2]uint{2, 0}), 2)

	assert.True(t, constraint.MarkMine(Cell{X: 1, Y: 0}))
	assert.True(t, constraint.cells.Equal(cells([2]uint{0, 0}, [2]uint{2, 0})))
	assert.Equal(t, 1, constraint.count)

	// A cell outside the constraint leaves it untouched
	assert.False(t, constraint.MarkMine(Cell{X: 9, Y: 9}))
	assert.Equal(t, 1, constraint.count)
}

func TestConstraintMarkSafe(t *testing.T) {
	constraint := NewConstraint(cells([2]uint{0, 0}, [2]uint{1, 0}, [2]uint{2, 0}), 1)

	assert.True(t, constraint.MarkSafe(Cell{X: 0, Y: 0}))
	assert.True(t, constraint.cells.Equal(cells([2]uint{1, 0}, [2]uint{2, 0})))
	assert.Equal(t, 1, constraint.count)

	assert.False(t, constraint.MarkSafe(Cell{X: 0, Y: 0}))
}

func TestConstraintNarrowingToCertainty(t *testing.T) {
	// {a, b, c} = 2: marking a as a mine leaves {b, c} = 1; marking b safe
	// leaves {c} = 1, which proves c is a mine.
	constraint := NewConstraint(cells([2]uint{0, 0}, [2]uint{1, 0}, [2]uint{2, 0}), 2)

	constraint.MarkMine(Cell{X: 0, Y: 0})
	constraint.MarkSafe(Cell{X: 1, Y: 0})

	assert.True(t, constraint.KnownMines().Equal(cells([2]uint{2, 0})))
}

func TestConstraintEqual(t *testing.T) {
	a := NewConstraint(cells([2]uint{0, 0}, [2]uint{1, 0}), 1)
	b := NewConstraint(cells([2]uint{1, 0}, [2]uint{0, 0}), 1)
	c := NewConstraint(cells([2]uint{0, 0}, [2]uint{1, 0}), 2)
	d := NewConstraint(cells([2]uint{0, 0}), 1)

	assert.True(t, a.Equal(&b))
	assert.False(t, a.Equal(&c))
	assert.False(t, a.Equal(&d))
}

func TestConstraintStringOrdersCells(t *testing.T) {
	constraint := NewConstraint(cells([2]uint{2, 1}, [2]uint{0, 0}, [2]uint{1, 0}), 1)
	assert.Equal(t, "{(0, 0), (1, 0), (2, 1)} = 1", constraint.String())
}

func TestNewConstraintCopiesCells(t *testing.T) {
	source := cells([2]uint{0, 0})
	constraint := NewConstraint(source, 1)

	source.Add(Cell{X: 5, Y: 5})
	assert.Equal(t, 1, constraint.cells.Len())
}
