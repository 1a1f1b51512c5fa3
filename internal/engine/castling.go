package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleMoves offers castling towards each side of an unmoved king. The scan
// walks outward along the rank and gives up at the first occupant unless it
// is an unmoved rook of the king's colour. Attacked squares are not
// considered here; the legality filter rejects castling through check.
func castleMoves(board *chess.Board, at chess.Coord, king *chess.Piece) []Move {
	if king.Moved {
		return nil
	}

	var moves []Move
	for _, dx := range []int{1, -1} {
		rookFrom, ok := findCastlingRook(board, at, king.Colour, dx)
		if !ok {
			continue
		}
		kingTo := at.Add(2*dx, 0)
		rookTo := at.Add(dx, 0)
		if !board.Inside(kingTo) || !board.IsEmpty(kingTo) || !board.IsEmpty(rookTo) {
			continue
		}
		moves = append(moves, Move{
			Kind:     Castle,
			Piece:    king,
			From:     at,
			To:       kingTo,
			RookFrom: rookFrom,
			RookTo:   rookTo,
		})
	}
	return moves
}

// findCastlingRook returns the square of the first piece along dx from at
// when that piece is an unmoved rook of the given colour.
func findCastlingRook(board *chess.Board, at chess.Coord, colour chess.Colour, dx int) (chess.Coord, bool) {
	for c := at.Add(dx, 0); board.Inside(c); c = c.Add(dx, 0) {
		p := board.Get(c)
		if p == nil {
			continue
		}
		if p.Is(colour, chess.Rook) && !p.Moved {
			return c, true
		}
		return chess.Coord{}, false
	}
	return chess.Coord{}, false
}

// castleTransit returns the squares the king occupies while castling: its
// start, the square it crosses and its destination.
func castleTransit(m Move) []chess.Coord {
	dx := 1
	if m.To.X < m.From.X {
		dx = -1
	}
	return []chess.Coord{m.From, m.From.Add(dx, 0), m.To}
}
