package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// slideMoves casts a ray along each direction until the board edge, a
// friendly piece (excluded) or an enemy piece (captured, then stop).
func slideMoves(board *chess.Board, at chess.Coord, piece *chess.Piece, dirs [][2]int) []Move {
	var moves []Move
	for _, dir := range dirs {
		for to := at.Add(dir[0], dir[1]); board.Inside(to); to = to.Add(dir[0], dir[1]) {
			m, ok := moveOnto(board, piece, at, to)
			if !ok {
				break // Own piece
			}
			moves = append(moves, m)
			if m.Kind == Capture {
				break
			}
		}
	}
	return moves
}
