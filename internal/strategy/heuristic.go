package strategy

import (
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// preferredCells is center, then corners, then edges.
var preferredCells = [entity.BoardSize]int{4, 0, 2, 6, 8, 1, 3, 5, 7}

// Heuristic looks one ply ahead: win if possible, otherwise block, otherwise
// take the best free square.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (that *Heuristic) ChooseMove(board *entity.Board, mark entity.Mark) (entity.Move, error) {
	metrics := &entity.SearchMetrics{MaxDepth: 1}

	if cell, ok := completingCell(*board, mark, metrics); ok {
		return entity.Move{Cell: cell, Metrics: metrics}, nil
	}

	if cell, ok := completingCell(*board, mark.Opponent(), metrics); ok {
		return entity.Move{Cell: cell, Metrics: metrics}, nil
	}

	for _, cell := range preferredCells {
		if board[cell] == entity.Empty {
			return entity.Move{Cell: cell, Metrics: metrics}, nil
		}
	}

	return entity.Move{}, apperror.ErrNoLegalMove
}

// completingCell finds the lowest empty cell that completes a line for mark.
// board is a copy, so probing never touches the caller's board.
func completingCell(board entity.Board, mark entity.Mark, metrics *entity.SearchMetrics) (int, bool) {
	for _, cell := range board.EmptyCells() {
		probe := board
		probe[cell] = mark
		metrics.NodesVisited++

		if probe.Winner() == mark {
			return cell, true
		}
	}

	return 0, false
}
