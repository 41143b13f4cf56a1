package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddRemoveContains(t *testing.T) {
	set := NewSet(1, 2, 3)

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(4))

	set.Add(4)
	assert.True(t, set.Contains(4))

	set.Remove(2)
	assert.False(t, set.Contains(2))
	assert.Equal(t, 3, set.Len())

	// Removing an absent element is a no-op
	set.Remove(2)
	assert.Equal(t, 3, set.Len())
}

func TestSetCopyIsIndependent(t *testing.T) {
	set := NewSet("a", "b")
	copied := set.Copy()

	copied.Add("c")
	set.Remove("a")

	assert.True(t, copied.Contains("a"))
	assert.False(t, copied.Contains("a") && set.Contains("a"))
	assert.False(t, set.Contains("c"))
}

func TestSetEqual(t *testing.T) {
	assert.True(t, NewSet(1, 2).Equal(NewSet(2, 1)))
	assert.False(t, NewSet(1, 2).Equal(NewSet(1, 2, 3)))
	assert.False(t, NewSet(1, 2).Equal(NewSet(1, 3)))
	assert.True(t, NewSet[int]().Equal(NewSet[int]()))
}

func TestSetDifference(t *testing.T) {
	difference := NewSet(1, 2, 3, 4).Difference(NewSet(2, 4, 6))
	assert.True(t, difference.Equal(NewSet(1, 3)))
}

func TestSetIntersection(t *testing.T) {
	intersection := NewSet(1, 2, 3).Intersection(NewSet(2, 3, 4))
	assert.True(t, intersection.Equal(NewSet(2, 3)))
}

func TestSetIntersectionEx(t *testing.T) {
	tests := []struct {
		name         string
		set, other   Set[int]
		intersection Set[int]
		isSubset     bool
	}{
		{
			name:         "strict subset",
			set:          NewSet(1, 2),
			other:        NewSet(1, 2, 3),
			intersection: NewSet(1, 2),
			isSubset:     true,
		},
		{
			name:         "equal sets",
			set:          NewSet(1, 2),
			other:        NewSet(2, 1),
			intersection: NewSet(1, 2),
			isSubset:     true,
		},
		{
			name:         "overlapping",
			set:          NewSet(1, 2, 3),
			other:        NewSet(2, 3, 4),
			intersection: NewSet(2, 3),
			isSubset:     false,
		},
		{
			name:         "disjoint",
			set:          NewSet(1, 2),
			other:        NewSet(3, 4),
			intersection: NewSet[int](),
			isSubset:     false,
		},
		{
			name:         "empty set is a subset of anything",
			set:          NewSet[int](),
			other:        NewSet(1),
			intersection: NewSet[int](),
			isSubset:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intersection, isSubset := tt.set.IntersectionEx(tt.other)
			assert.True(t, intersection.Equal(tt.intersection))
			assert.Equal(t, tt.isSubset, isSubset)
		})
	}
}
