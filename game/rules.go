package game

// directions are the 8 compass directions scanned from a placed stone.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// bracket returns how many opponent stones, starting next to (x, y) and walking
// towards (dx, dy), would be captured by side. A run only counts when it holds at
// least one opponent stone and ends on a side stone within the board.
func (b Board) bracket(side Side, x, y, dx, dy int) int {
	own, opp := side.Stone(), side.Opponent().Stone()
	run := 0
	nx, ny := x+dx, y+dy
	for InBounds(nx, ny) && b[ny][nx] == opp {
		run++
		nx += dx
		ny += dy
	}
	if run > 0 && InBounds(nx, ny) && b[ny][nx] == own {
		return run
	}
	return 0
}

// IsLegal reports whether side may place a stone at (x, y).
func (b Board) IsLegal(side Side, x, y int) bool {
	if !InBounds(x, y) || b[y][x] != Empty {
		return false
	}
	for _, d := range directions {
		if b.bracket(side, x, y, d[0], d[1]) > 0 {
			return true
		}
	}
	return false
}

// HasLegalMove reports whether side has any legal move.
func (b Board) HasLegalMove(side Side) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.IsLegal(side, x, y) {
				return true
			}
		}
	}
	return false
}

// FlippableCount returns the number of stones side would flip by playing (x, y).
// Occupied and off-board cells flip nothing.
func (b Board) FlippableCount(side Side, x, y int) int {
	if !InBounds(x, y) || b[y][x] != Empty {
		return 0
	}
	total := 0
	for _, d := range directions {
		total += b.bracket(side, x, y, d[0], d[1])
	}
	return total
}

// LegalMoves returns side's legal moves in row-major order (y outer, x inner).
// Every chooser breaks ties by keeping the earliest move of this order.
func (b Board) LegalMoves(side Side) []Cell {
	var moves []Cell
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.IsLegal(side, x, y) {
				moves = append(moves, Cell{X: x, Y: y})
			}
		}
	}
	return moves
}

// IsTerminal reports whether neither side can move.
func (b Board) IsTerminal() bool {
	return !b.HasLegalMove(Black) && !b.HasLegalMove(White)
}
