package strategy

import (
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// Random plays a uniformly random empty cell.
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandom(rnd *rand.Rand) *Random {
	return &Random{rnd: rnd}
}

func (that *Random) ChooseMove(board *entity.Board, _ entity.Mark) (entity.Move, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Move{}, apperror.ErrNoLegalMove
	}

	that.mu.Lock()
	chosenCell := availableCells[that.rnd.Intn(len(availableCells))]
	that.mu.Unlock()

	return entity.Move{Cell: chosenCell}, nil
}
