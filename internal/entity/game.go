package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty received from a client or config.
func ParseDifficulty(level string) (Difficulty, error) {
	switch d := Difficulty(level); d {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, level)
	}
}

type Status string

const (
	StatusPlayerTurn   Status = "player_turn"
	StatusOpponentTurn Status = "opponent_turn"
	StatusPlayerWins   Status = "player_wins"
	StatusOpponentWins Status = "opponent_wins"
	StatusDraw         Status = "draw"
)

type Outcome string

const (
	OutcomeNone        Outcome = ""
	OutcomePlayerWin   Outcome = "player_win"
	OutcomeOpponentWin Outcome = "opponent_win"
	OutcomeDraw        Outcome = "draw"
)

// The human always plays X and moves first.
const (
	HumanMark    = PlayerX
	ComputerMark = PlayerO
)

// GameState is the state of one game against the computer.
type GameState struct {
	Board       Board      `json:"board"`
	Turn        Mark       `json:"turn"`
	Active      bool       `json:"active"`
	Outcome     Outcome    `json:"outcome,omitempty"`
	WinningLine *Line      `json:"winning_line,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
}

func NewGameState(difficulty Difficulty) GameState {
	return GameState{
		Turn:       HumanMark,
		Active:     true,
		Difficulty: difficulty,
	}
}

// Status derives the status shown to the player.
func (that *GameState) Status() Status {
	switch that.Outcome {
	case OutcomePlayerWin:
		return StatusPlayerWins
	case OutcomeOpponentWin:
		return StatusOpponentWins
	case OutcomeDraw:
		return StatusDraw
	}

	if that.Turn == ComputerMark {
		return StatusOpponentTurn
	}

	return StatusPlayerTurn
}

// ValidateMove checks that mark may play cell right now.
func (that *GameState) ValidateMove(mark Mark, cell int) error {
	switch {
	case !that.Active:
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	case !IsValidCell(cell):
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrIllegalMove, apperror.ErrInvalidCell, cell)
	case that.Turn != mark:
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrNotYourTurn)
	case that.Board[cell] != Empty:
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrIllegalMove, apperror.ErrCellOccupied, cell)
	}

	return nil
}

// Apply places mark on cell and settles the outcome or flips the turn.
// It returns true when the move ended the game. The move must be validated first.
func (that *GameState) Apply(mark Mark, cell int) bool {
	that.Board[cell] = mark

	if line, ok := that.Board.WinningLine(); ok {
		that.finish(outcomeFor(that.Board[line[0]]), &line)
		return true
	}

	if that.Board.IsFull() {
		that.finish(OutcomeDraw, nil)
		return true
	}

	that.Turn = mark.Opponent()

	return false
}

func (that *GameState) finish(outcome Outcome, line *Line) {
	// the outcome is decided once
	if !that.Active {
		return
	}

	that.Active = false
	that.Outcome = outcome
	that.WinningLine = line
	that.Turn = Empty
}

func outcomeFor(winner Mark) Outcome {
	if winner == HumanMark {
		return OutcomePlayerWin
	}

	return OutcomeOpponentWin
}
