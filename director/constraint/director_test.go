package constraint_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/minemind/director/constraint"
	"github.com/they4kman/minemind/game"
)

func loadBoard(t *testing.T, serialized string) *game.Board {
	t.Helper()

	snapshot := &game.BoardSnapshot{SerializedBoard: serialized}

	config := game.NewConfig()
	config.Snapshot = snapshot
	board, err := config.CreateBoard()
	require.NoError(t, err)
	return board
}

// play applies an action and reports every newly revealed cell back to the
// director, the way a game run does.
func play(board *game.Board, director game.Director, action game.CellAction) {
	for _, cell := range board.Apply(action) {
		if !cell.IsMine() {
			director.CellRevealed(cell)
		}
	}
}

func TestActWithNoKnowledgeMakesRandomMove(t *testing.T) {
	board := loadBoard(t, "###")

	director := &constraint.Director{}
	director.Init(board)

	actions := director.Act()
	require.Len(t, actions, 1)

	play(board, director, actions[0])
	assert.GreaterOrEqual(t, board.NumRevealed(), uint(1))
}

func TestFlagsProvenMinesWhenNoMovesRemain(t *testing.T) {
	// Mine at (2, 0); revealing (0, 0) cascades to (1, 0), whose count
	// pins the mine.
	board := loadBoard(t, "##O")

	director := &constraint.Director{}
	director.Init(board)

	play(board, director, board.CellAt(0, 0).Reveal())

	actions := director.Act()
	require.Len(t, actions, 1)
	assert.Equal(t, board.CellAt(2, 0), actions[0].Cell())

	play(board, director, actions[0])
	assert.True(t, board.CellAt(2, 0).IsFlagged())
	assert.True(t, board.HasWon())
}

func TestPlaysSafeMovesBeforeGuessing(t *testing.T) {
	// Layout:
	//
	//   1 2 1
	//   X . X
	//
	// After the top row is revealed, subset elimination proves (1, 1) safe
	// and both mines certain. No guess is ever needed.
	board := loadBoard(t, "###\nO#O")

	director := &constraint.Director{}
	director.Init(board)

	play(board, director, board.CellAt(0, 0).Reveal())
	play(board, director, board.CellAt(1, 0).Reveal())
	play(board, director, board.CellAt(2, 0).Reveal())

	actions := director.Act()
	require.Len(t, actions, 1)
	assert.Equal(t, board.CellAt(1, 1), actions[0].Cell())

	play(board, director, actions[0])
	require.True(t, board.CellAt(1, 1).IsRevealed())

	// Only the two mines remain: the director flags them both
	actions = director.Act()
	require.Len(t, actions, 2)
	for _, action := range actions {
		play(board, director, action)
	}

	assert.True(t, board.CellAt(0, 1).IsFlagged())
	assert.True(t, board.CellAt(2, 1).IsFlagged())
	assert.True(t, board.HasWon())
}

func TestRunPlaysGeneratedBoardsToCompletion(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			config := game.NewConfig()
			config.Width, config.Height, config.NumMines = 5, 5, 3
			config.Seed = seed
			config.Director = &constraint.Director{}

			result, err := game.Run(config)
			require.NoError(t, err)

			switch result.State {
			case game.Won:
				assert.Equal(t, uint(22), result.Revealed)
				assert.Equal(t, uint(3), result.Flagged)
			case game.Lost:
				assert.Less(t, result.Revealed, uint(22))
				assert.Equal(t, uint(0), result.Flagged)
			default:
				t.Fatalf("game ended %v", result.State)
			}
		})
	}
}
