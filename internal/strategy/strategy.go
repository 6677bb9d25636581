// Package strategy holds the policies the computer uses to pick a cell.
package strategy

import "github.com/rocketscienceinc/tictactoe-solo/internal/entity"

// Strategy chooses an empty cell for mark. Implementations must leave board
// exactly as they found it.
type Strategy interface {
	ChooseMove(board *entity.Board, mark entity.Mark) (entity.Move, error)
}
