package game

import "fmt"

// State is a position together with the side to move. Like Board it is a value;
// Play and Pass return the next state.
type State struct {
	Board Board
	Turn  Side
}

// NewState returns the initial position with black to move.
func NewState() State {
	return State{Board: NewBoard(), Turn: Black}
}

// LegalMoves returns the legal moves of the side to move.
func (s State) LegalMoves() []Cell {
	return s.Board.LegalMoves(s.Turn)
}

// Play places a stone for the side to move and hands the turn over.
func (s State) Play(c Cell) (State, error) {
	if !s.Board.IsLegal(s.Turn, c.X, c.Y) {
		return s, fmt.Errorf("%w: %s cannot play %s", ErrIllegalMove, s.Turn, c)
	}
	return State{
		Board: s.Board.Apply(s.Turn, c.X, c.Y),
		Turn:  s.Turn.Opponent(),
	}, nil
}

// Pass hands the turn over without placing a stone.
func (s State) Pass() State {
	return State{Board: s.Board, Turn: s.Turn.Opponent()}
}

// IsOver reports whether neither side can move.
func (s State) IsOver() bool {
	return s.Board.IsTerminal()
}

// Winner returns the side with more stones. ok is false on a draw.
func (s State) Winner() (winner Side, ok bool) {
	switch score := Score(s.Board, Black); {
	case score > 0:
		return Black, true
	case score < 0:
		return White, true
	default:
		return 0, false
	}
}
