package entity

import (
	"fmt"
	"strings"
)

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Line is a triple of cell indices that wins when filled with one mark.
type Line [3]int

// Lines holds the eight winning lines: rows, columns, diagonals.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "X":
		*that = PlayerX
	case "O":
		*that = PlayerO
	case "":
		*that = Empty
	default:
		return fmt.Errorf("unknown mark %q", text)
	}

	return nil
}

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Mark

// IsValidCell reports whether cell addresses the board.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// Winner returns the mark that fills a complete line, or Empty.
func (that Board) Winner() Mark {
	line, ok := that.WinningLine()
	if !ok {
		return Empty
	}

	return that[line[0]]
}

// WinningLine returns the first complete line in Lines order.
func (that Board) WinningLine() (Line, bool) {
	for _, line := range Lines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != Empty && a == b && b == c {
			return line, true
		}
	}

	return Line{}, false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// EmptyCells returns the indices of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Count returns the number of occupied cells.
func (that Board) Count() int {
	return BoardSize - len(that.EmptyCells())
}

func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(cell.String())
		}

		if i%3 == 2 && i != BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
