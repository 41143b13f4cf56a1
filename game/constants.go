package game

type BoardState int

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}

// GameMode controls the behaviour of the first reveal of a game.
type GameMode int

const (
	// Classic leaves the board as generated. The first reveal can lose.
	Classic GameMode = iota

	// Win7 relocates any mines neighbouring the first-revealed cell, so the
	// first reveal always opens on a mine-free neighbourhood.
	Win7
)
