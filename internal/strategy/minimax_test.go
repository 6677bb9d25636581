package strategy

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimax_ChooseMove(t *testing.T) {
	t.Run("Completes the win instead of blocking", func(t *testing.T) {
		// Given: O and X both threaten a row
		board := entity.Board{
			o, o, e,
			x, x, e,
			e, e, e,
		}

		// When: minimax plays O
		move, err := NewMinimax().ChooseMove(&board, o)

		// Then: it wins at once
		require.NoError(t, err)
		assert.Equal(t, 2, move.Cell)
	})

	t.Run("Blocks a threat it cannot outrun", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}

		move, err := NewMinimax().ChooseMove(&board, o)

		require.NoError(t, err)
		assert.Equal(t, 2, move.Cell)
	})

	t.Run("First move on an empty board is never an edge", func(t *testing.T) {
		// Given: an empty board
		var board entity.Board

		// When: minimax opens as O
		move, err := NewMinimax().ChooseMove(&board, o)

		// Then: it takes the center or a corner
		require.NoError(t, err)
		assert.Contains(t, []int{0, 2, 4, 6, 8}, move.Cell)
		assert.NotContains(t, []int{1, 3, 5, 7}, move.Cell)
	})

	t.Run("Answers a corner opening with the center", func(t *testing.T) {
		board := entity.Board{x}

		move, err := NewMinimax().ChooseMove(&board, o)

		require.NoError(t, err)
		assert.Equal(t, 4, move.Cell)
	})

	t.Run("Board is restored after the search", func(t *testing.T) {
		// Given: a position in the middle of a game
		board := entity.Board{
			x, e, e,
			e, o, e,
			e, x, e,
		}
		before := board

		// When: searching
		_, err := NewMinimax().ChooseMove(&board, o)

		// Then: every cell is as it was
		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Metrics are reset for every search", func(t *testing.T) {
		board := entity.Board{x}
		strategy := NewMinimax()

		first, err := strategy.ChooseMove(&board, o)
		require.NoError(t, err)
		second, err := strategy.ChooseMove(&board, o)
		require.NoError(t, err)

		require.NotNil(t, first.Metrics)
		assert.Positive(t, first.Metrics.NodesVisited)
		assert.Equal(t, 7, first.Metrics.MaxDepth)
		assert.Equal(t, first.Metrics, second.Metrics)
	})

	t.Run("Full board has no legal move", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, x}

		_, err := NewMinimax().ChooseMove(&board, o)

		assert.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})
}

func TestMinimax_Score(t *testing.T) {
	t.Run("Empty board is a draw under perfect play", func(t *testing.T) {
		// O moved into the center; X to move
		board := entity.Board{e, e, e, e, o, e, e, e, e}

		assert.Equal(t, 0, NewMinimax().Score(board, o))
	})

	t.Run("Immediate win scores highest", func(t *testing.T) {
		board := entity.Board{o, o, o, x, x, e, e, e, e}

		assert.Equal(t, 10, NewMinimax().Score(board, o))
	})
}

func TestMinimax_SelfPlayIsDraw(t *testing.T) {
	// Given: minimax on both sides from an empty board
	var board entity.Board
	strategy := NewMinimax()
	mark := entity.PlayerX

	// When: the game is played out
	for board.Winner() == entity.Empty && !board.IsFull() {
		before := board
		move, err := strategy.ChooseMove(&board, mark)
		require.NoError(t, err)
		require.Equal(t, before, board)

		board[move.Cell] = mark
		mark = mark.Opponent()
	}

	// Then: nobody wins
	assert.Equal(t, entity.Empty, board.Winner())
	assert.True(t, board.IsFull())
}

func TestMinimax_NeverLoses(t *testing.T) {
	strategy := NewMinimax()

	t.Run("Moving second against every line of play", func(t *testing.T) {
		var board entity.Board
		games := exploreHumanMoves(t, strategy, board)

		assert.Positive(t, games)
	})

	t.Run("Moving first against every line of play", func(t *testing.T) {
		var board entity.Board
		move, err := strategy.ChooseMove(&board, o)
		require.NoError(t, err)
		board[move.Cell] = o

		games := exploreHumanMoves(t, strategy, board)

		assert.Positive(t, games)
	})
}

// exploreHumanMoves tries every X reply and lets minimax answer as O. It fails
// the test if X ever completes a line and returns the number of finished games.
func exploreHumanMoves(t *testing.T, strategy *Minimax, board entity.Board) int {
	t.Helper()

	games := 0
	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = x

		if next.Winner() == x {
			t.Fatalf("X wins on %s", next)
		}

		if next.IsFull() {
			games++
			continue
		}

		move, err := strategy.ChooseMove(&next, o)
		require.NoError(t, err)
		next[move.Cell] = o

		if next.Winner() == o || next.IsFull() {
			games++
			continue
		}

		games += exploreHumanMoves(t, strategy, next)
	}

	return games
}
