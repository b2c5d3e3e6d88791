package game

import (
	"fmt"
	"strings"
	"unicode"
)

// Board is the grid of stones indexed [y][x]. It is a value: copying a Board copies
// every cell, so methods that change it return a new Board instead.
type Board [Size][Size]Stone

// NewBoard returns the initial position with the central 2x2 block filled.
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = BlackStone, BlackStone
	b[mid-1][mid], b[mid][mid-1] = WhiteStone, WhiteStone
	return b
}

// FromCodes converts a grid of host stone codes (0=empty, 1=black, 2=white).
func FromCodes(codes [Size][Size]int) (Board, error) {
	var b Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			code := codes[y][x]
			if code < int(Empty) || code > int(WhiteStone) {
				return Board{}, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidStone, code, x, y)
			}
			b[y][x] = Stone(code)
		}
	}
	return b, nil
}

// ParseBoard reads Size rows of Size symbols. Empty cells are '.' or '0', black
// stones 'B', 'X' or '1', white stones 'W', 'O' or '2'. Whitespace inside a row is
// ignored and blank lines are skipped.
func ParseBoard(text string) (Board, error) {
	var b Board
	y := 0
	for _, line := range strings.Split(text, "\n") {
		row := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, line)
		if row == "" {
			continue
		}
		if y >= Size {
			return Board{}, fmt.Errorf("%w: more than %d rows", ErrMalformedBoard, Size)
		}
		if len(row) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", ErrMalformedBoard, y, len(row))
		}
		for x, r := range []byte(row) {
			stone, ok := parseStone(r)
			if !ok {
				return Board{}, fmt.Errorf("%w: unknown symbol %q at (%d,%d)", ErrMalformedBoard, r, x, y)
			}
			b[y][x] = stone
		}
		y++
	}
	if y != Size {
		return Board{}, fmt.Errorf("%w: got %d rows, want %d", ErrMalformedBoard, y, Size)
	}
	return b, nil
}

func parseStone(r byte) (Stone, bool) {
	switch r {
	case '.', '0':
		return Empty, true
	case 'B', 'b', 'X', 'x', '1':
		return BlackStone, true
	case 'W', 'w', 'O', 'o', '2':
		return WhiteStone, true
	}
	return Empty, false
}

func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sb.WriteString(b[y][x].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// At returns the stone at (x, y), or Empty when the coordinate is off the board.
func (b Board) At(x, y int) Stone {
	if !InBounds(x, y) {
		return Empty
	}
	return b[y][x]
}

// With returns a copy of the board with (x, y) set to stone.
func (b Board) With(x, y int, stone Stone) Board {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("cell (%d,%d) is off the board", x, y))
	}
	b[y][x] = stone
	return b
}

// Count returns how many cells hold stone.
func (b Board) Count(stone Stone) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] == stone {
				n++
			}
		}
	}
	return n
}

// Empties returns the number of empty cells.
func (b Board) Empties() int {
	return b.Count(Empty)
}

// Codes returns the board as host stone codes.
func (b Board) Codes() [Size][Size]int {
	var codes [Size][Size]int
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			codes[y][x] = int(b[y][x])
		}
	}
	return codes
}
