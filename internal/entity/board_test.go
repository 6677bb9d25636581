package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Winner(t *testing.T) {
	t.Run("Every line filled with one mark wins for that mark", func(t *testing.T) {
		for _, mark := range []Mark{PlayerX, PlayerO} {
			for _, line := range Lines {
				// Given: a board where only the cells of one line hold the mark
				var board Board
				for _, cell := range line {
					board[cell] = mark
				}

				// When: looking for a winner
				winner := board.Winner()
				found, ok := board.WinningLine()

				// Then: the mark and the line are reported
				assert.Equal(t, mark, winner, "line %v", line)
				assert.True(t, ok)
				assert.Equal(t, line, found)
			}
		}
	})

	t.Run("Line wins among arbitrary non-matching cells", func(t *testing.T) {
		// Given: X fills the left column, O is scattered elsewhere
		board := Board{
			PlayerX, PlayerO, Empty,
			PlayerX, PlayerO, Empty,
			PlayerX, Empty, PlayerO,
		}

		// When: looking for a winner
		winner := board.Winner()

		// Then: X is the winner
		assert.Equal(t, PlayerX, winner)
	})

	t.Run("Full board without a line has no winner", func(t *testing.T) {
		// Given: a drawn board
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		// When: checking the terminal state
		winner := board.Winner()
		_, ok := board.WinningLine()

		// Then: no winner and the board is full
		assert.Equal(t, Empty, winner)
		assert.False(t, ok)
		assert.True(t, board.IsFull())
	})

	t.Run("Ongoing board is neither won nor full", func(t *testing.T) {
		// Given: a board in progress
		board := Board{
			PlayerX, PlayerO, Empty,
			Empty, PlayerX, Empty,
			Empty, Empty, PlayerO,
		}

		// Then: no winner and not full
		assert.Equal(t, Empty, board.Winner())
		assert.False(t, board.IsFull())
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a board with three marks
	board := Board{PlayerX, Empty, Empty, Empty, PlayerO, Empty, Empty, Empty, PlayerX}

	// When: listing empty cells
	cells := board.EmptyCells()

	// Then: they come in ascending order and the count matches
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, cells)
	assert.Equal(t, 3, board.Count())
	assert.Empty(t, Board{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, PlayerX}.EmptyCells())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Board encodes as mark strings", func(t *testing.T) {
		// Given: a board with both marks
		board := Board{PlayerX, Empty, PlayerO}

		// When: encoding it
		data, err := json.Marshal(board)
		require.NoError(t, err)

		// Then: cells become "X", "O" and ""
		assert.JSONEq(t, `["X","","O","","","","","",""]`, string(data))
	})

	t.Run("Unknown mark is rejected", func(t *testing.T) {
		var mark Mark

		err := mark.UnmarshalText([]byte("Z"))

		require.Error(t, err)
	})
}

func TestBoard_String(t *testing.T) {
	board := Board{PlayerX, Empty, PlayerO, Empty, PlayerX, Empty, Empty, Empty, PlayerO}

	assert.Equal(t, "X.O/.X./..O", board.String())
}
