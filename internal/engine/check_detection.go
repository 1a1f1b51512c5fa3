package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Coord, bool) {
	var at chess.Coord
	found := false
	board.ForEach(func(c chess.Coord, p *chess.Piece) {
		if !found && p.Is(colour, chess.King) {
			at, found = c, true
		}
	})
	return at, found
}

// isSquareAttacked returns true if any piece of byColour has a capturing
// candidate move landing on target. Non-capturing moves never threaten.
func isSquareAttacked(board *chess.Board, target chess.Coord, byColour chess.Colour, last *Move) bool {
	var attackers []chess.Coord
	board.ForEach(func(c chess.Coord, p *chess.Piece) {
		if p.Colour == byColour {
			attackers = append(attackers, c)
		}
	})

	for _, from := range attackers {
		for _, m := range CandidateMoves(board, from, last) {
			if m.IsCapture() && m.To == target {
				return true
			}
		}
	}
	return false
}

// kingSafe reports whether colour's king is free of attack on the current
// board. A side without a king is never in check.
func (e *Engine) kingSafe(colour chess.Colour) bool {
	king, ok := findKing(e.board, colour)
	if !ok {
		return true
	}
	return !isSquareAttacked(e.board, king, colour.Opposite(), e.lastMove)
}
