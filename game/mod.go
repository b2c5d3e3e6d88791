package game

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Size is the fixed board dimension.
const Size = 6

var (
	ErrInvalidStone   = errors.New("invalid stone code")
	ErrInvalidSide    = errors.New("invalid side")
	ErrMalformedBoard = errors.New("malformed board")
	ErrIllegalMove    = errors.New("illegal move")
)

// Stone is the content of a single cell. The values match the host's stone codes.
type Stone uint8

const (
	Empty Stone = iota
	BlackStone
	WhiteStone
)

func (s Stone) String() string {
	switch s {
	case BlackStone:
		return "B"
	case WhiteStone:
		return "W"
	default:
		return "."
	}
}

// Side is the colour of a player.
type Side uint8

const (
	Black Side = Side(BlackStone)
	White Side = Side(WhiteStone)
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

// Stone returns the stone this side places.
func (s Side) Stone() Stone {
	return Stone(s)
}

func (s Side) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// ParseSide accepts black/white, b/w or the host codes 1/2.
func ParseSide(value string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "black", "b", "1":
		return Black, nil
	case "white", "w", "2":
		return White, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSide, value)
}

// Cell is a board coordinate, x is the column and y the row.
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Corners are the four corner cells.
var Corners = []Cell{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

// DangerCells are the X- and C-squares next to each corner. Taking one of them
// usually hands the adjacent corner to the opponent.
var DangerCells = []Cell{
	{0, 1}, {1, 0}, {1, 1},
	{0, 4}, {1, 5}, {1, 4},
	{4, 0}, {5, 1}, {4, 1},
	{4, 5}, {5, 4}, {4, 4},
}

// IsCorner reports whether c is one of the four corners.
func IsCorner(c Cell) bool {
	return slices.Contains(Corners, c)
}

// IsDanger reports whether c is one of the danger cells.
func IsDanger(c Cell) bool {
	return slices.Contains(DangerCells, c)
}

// Evaluates a board from side's point of view. Higher is better for side.
type Evaluate func(board Board, side Side) int
