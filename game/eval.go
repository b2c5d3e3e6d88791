package game

// Score is the material difference: side's stones minus the opponent's. It is the
// default leaf evaluator of the search, so it stays cheap and carries no positional
// knowledge.
func Score(board Board, side Side) int {
	own, opp := side.Stone(), side.Opponent().Stone()
	score := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch board[y][x] {
			case own:
				score++
			case opp:
				score--
			}
		}
	}
	return score
}

// squareWeights favours corners and edges and punishes the cells that give a corner away.
var squareWeights = [Size][Size]int{
	{100, -20, 10, 10, -20, 100},
	{-20, -50, -2, -2, -50, -20},
	{10, -2, 1, 1, -2, 10},
	{10, -2, 1, 1, -2, 10},
	{-20, -50, -2, -2, -50, -20},
	{100, -20, 10, 10, -20, 100},
}

// EvaluatePositional adds the square weights of each side's stones to the material
// difference.
func EvaluatePositional(board Board, side Side) int {
	own, opp := side.Stone(), side.Opponent().Stone()
	score := Score(board, side)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch board[y][x] {
			case own:
				score += squareWeights[y][x]
			case opp:
				score -= squareWeights[y][x]
			}
		}
	}
	return score
}
