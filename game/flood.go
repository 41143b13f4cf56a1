package game

import "github.com/gammazero/deque"

type NeighborGetter func(*Cell) []*Cell
type Visitor func(*Cell)

// flood breadth-first walks the board from cell, visiting each reachable
// cell once. Neighbors are expanded only past cells with no adjacent mines,
// so the walk covers a zero-mine region together with its numbered rim.
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(map[uint]struct{})
	var queue deque.Deque[*Cell]

	enqueue := func(cell *Cell) {
		// Don't visit, if already visited
		if _, alreadyVisited := visited[cell.idx]; alreadyVisited {
			return
		}

		visited[cell.idx] = struct{}{}
		queue.PushBack(cell)
	}

	enqueue(cell)
	for queue.Len() > 0 {
		cell := queue.PopFront()
		visit(cell)

		if cell.numMines == 0 {
			for _, neighbor := range getNeighbors(cell) {
				enqueue(neighbor)
			}
		}
	}
}
