package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// rebuildIndex recomputes the legal moves of every piece of the side to move.
func (e *Engine) rebuildIndex() {
	e.legal = make(map[chess.Coord][]Move)

	var own []chess.Coord
	e.board.ForEach(func(c chess.Coord, p *chess.Piece) {
		if p.Colour == e.toMove {
			own = append(own, c)
		}
	})

	for _, from := range own {
		var legal []Move
		for _, m := range CandidateMoves(e.board, from, e.lastMove) {
			if e.isLegal(m) {
				legal = append(legal, m)
			}
		}
		if len(legal) > 0 {
			e.legal[from] = legal
		}
	}
}

// isLegal reports whether candidate m leaves the mover's king unattacked.
// Castling must also not start from or pass through an attacked square, so
// the king is tried on each square of its path.
func (e *Engine) isLegal(m Move) bool {
	if m.Kind != Castle {
		return e.safeAfter(m)
	}
	transit := castleTransit(m)
	steps := []Move{
		{Kind: Plain, Piece: m.Piece, From: m.From, To: transit[0]},
		{Kind: Plain, Piece: m.Piece, From: m.From, To: transit[1]},
		m,
	}
	for _, s := range steps {
		if !e.safeAfter(s) {
			return false
		}
	}
	return true
}

// safeAfter tentatively plays m, tests the mover's king and undoes m.
func (e *Engine) safeAfter(m Move) bool {
	e.step(m)
	safe := e.kingSafe(m.Piece.Colour)
	e.undo(m)
	return safe
}
