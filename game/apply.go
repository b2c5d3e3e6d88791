package game

import "fmt"

// Apply returns the board after side places a stone at (x, y) and every bracketed
// run of opponent stones is flipped. The receiver is left untouched.
//
// Apply does not check legality: on an illegal cell the stone is placed without
// flipping anything. Callers must guard with IsLegal.
func (b Board) Apply(side Side, x, y int) Board {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("cannot apply move: cell (%d,%d) is off the board", x, y))
	}

	next := b
	own := side.Stone()
	next[y][x] = own
	for _, d := range directions {
		run := b.bracket(side, x, y, d[0], d[1])
		for i := 1; i <= run; i++ {
			next[y+d[1]*i][x+d[0]*i] = own
		}
	}
	return next
}
