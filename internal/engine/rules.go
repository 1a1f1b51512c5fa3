// Package engine provides chess move generation, legality checking and the
// rules engine state machine.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Offsets for the non-sliding pieces.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Ray directions for the sliding pieces.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs      = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// CandidateMoves returns the moves the piece on at could make on board,
// without regard to whether they leave its own king attacked. last is the
// previous move played (nil at the start) and only matters for en passant.
// The board is not modified. An empty square yields no moves.
func CandidateMoves(board *chess.Board, at chess.Coord, last *Move) []Move {
	piece := board.Get(at)
	if piece == nil {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, at, piece, last)
	case chess.Knight:
		return stepMoves(board, at, piece, knightOffsets)
	case chess.Bishop:
		return slideMoves(board, at, piece, diagonalDirs)
	case chess.Rook:
		return slideMoves(board, at, piece, straightDirs)
	case chess.Queen:
		return slideMoves(board, at, piece, allDirs)
	case chess.King:
		moves := stepMoves(board, at, piece, kingOffsets)
		return append(moves, castleMoves(board, at, piece)...)
	}
	panic("engine: piece with unknown kind " + piece.Kind.String())
}

// stepMoves generates single-step moves to each offset that is on the board
// and not occupied by a friendly piece.
func stepMoves(board *chess.Board, at chess.Coord, piece *chess.Piece, offsets [][2]int) []Move {
	var moves []Move
	for _, offset := range offsets {
		to := at.Add(offset[0], offset[1])
		if !board.Inside(to) {
			continue
		}
		if m, ok := moveOnto(board, piece, at, to); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// moveOnto builds a Plain or Capture move to to. It fails when a friendly
// piece stands there.
func moveOnto(board *chess.Board, piece *chess.Piece, from, to chess.Coord) (Move, bool) {
	target := board.Get(to)
	switch {
	case target == nil:
		return Move{Kind: Plain, Piece: piece, From: from, To: to}, true
	case target.Colour != piece.Colour:
		return Move{Kind: Capture, Piece: piece, From: from, To: to}, true
	}
	return Move{}, false
}
