package strategy

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// winScore is the value of a win found at depth 0.
const winScore = 10

// Minimax searches the whole game tree with alpha-beta pruning. Faster wins
// and slower losses score higher.
type Minimax struct{}

func NewMinimax() *Minimax {
	return &Minimax{}
}

// search holds the counters of one top-level call.
type search struct {
	me       entity.Mark
	nodes    int
	maxDepth int
}

func (that *Minimax) ChooseMove(board *entity.Board, mark entity.Mark) (entity.Move, error) {
	s := &search{me: mark}

	bestScore := math.MinInt
	bestCell := -1

	for cell := range board {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = mark
		score := s.score(board, 0, false, math.MinInt, math.MaxInt)
		board[cell] = entity.Empty

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	if bestCell < 0 {
		return entity.Move{}, apperror.ErrNoLegalMove
	}

	return entity.Move{
		Cell: bestCell,
		Metrics: &entity.SearchMetrics{
			NodesVisited: s.nodes,
			MaxDepth:     s.maxDepth,
		},
	}, nil
}

// Score returns the minimax value of board for mark when it is mark's
// opponent to move.
func (that *Minimax) Score(board entity.Board, mark entity.Mark) int {
	s := &search{me: mark}

	return s.score(&board, 0, false, math.MinInt, math.MaxInt)
}

func (that *search) score(board *entity.Board, depth int, maximizing bool, alpha, beta int) int {
	that.nodes++
	that.maxDepth = max(that.maxDepth, depth)

	switch board.Winner() {
	case that.me:
		return winScore - depth
	case that.me.Opponent():
		return depth - winScore
	}

	if board.IsFull() {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for cell := range board {
			if board[cell] != entity.Empty {
				continue
			}

			board[cell] = that.me
			score := that.score(board, depth+1, false, alpha, beta)
			board[cell] = entity.Empty

			best = max(best, score)
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for cell := range board {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = that.me.Opponent()
		score := that.score(board, depth+1, true, alpha, beta)
		board[cell] = entity.Empty

		best = min(best, score)
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}

	return best
}
