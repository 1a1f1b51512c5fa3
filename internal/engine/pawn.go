package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates pawn pushes, diagonal captures and en passant.
func pawnMoves(board *chess.Board, at chess.Coord, pawn *chess.Piece, last *Move) []Move {
	var moves []Move
	dir := pawn.Colour.Forward()

	// Forward pushes never capture; any occupant ends the ray.
	steps := 1
	if !pawn.Moved {
		steps = 2
	}
	for i := 1; i <= steps; i++ {
		to := at.Add(0, i*dir)
		if !board.Inside(to) || !board.IsEmpty(to) {
			break
		}
		moves = append(moves, Move{Kind: Plain, Piece: pawn, From: at, To: to})
	}

	for _, dx := range []int{-1, 1} {
		to := at.Add(dx, dir)
		if !board.Inside(to) {
			continue
		}
		if target := board.Get(to); target != nil && target.Colour != pawn.Colour {
			moves = append(moves, Move{Kind: Capture, Piece: pawn, From: at, To: to})
		}
	}

	if m, ok := enPassant(board, at, pawn, last); ok {
		moves = append(moves, m)
	}
	return moves
}

// enPassant offers the capture of an enemy pawn that has just double-stepped
// alongside the pawn on at. The pawn lands on the square behind its victim.
func enPassant(board *chess.Board, at chess.Coord, pawn *chess.Piece, last *Move) (Move, bool) {
	if last == nil || !last.IsDoubleStep() || last.Piece.Colour == pawn.Colour {
		return Move{}, false
	}
	if last.To.Y != at.Y || abs(last.To.X-at.X) != 1 {
		return Move{}, false
	}
	if !board.Get(last.To).Is(last.Piece.Colour, chess.Pawn) {
		return Move{}, false
	}
	to := chess.C(last.To.X, at.Y+pawn.Colour.Forward())
	if !board.Inside(to) || !board.IsEmpty(to) {
		return Move{}, false
	}
	return Move{Kind: EnPassant, Piece: pawn, From: at, To: to, CaptureAt: last.To}, true
}
