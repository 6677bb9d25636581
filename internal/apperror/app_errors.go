package apperror

import "errors"

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")

	// ErrNoLegalMove means a strategy was asked to move on a full board.
	// The controller never does that, so seeing it is a bug.
	ErrNoLegalMove = errors.New("no legal move")

	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownAction     = errors.New("unknown action")
	ErrInvalidPayload    = errors.New("invalid payload")
)
