// Package hashing provides position keys and a shared node-count table for
// perft searches.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const (
	sideSalt      uint64 = 0x9e3779b97f4a7c15
	enPassantSalt uint64 = 0xc2b2ae3d27d4eb4f
	sizeSalt      uint64 = 0x165667b19e3779f9
)

// GenerateZobristHash returns a key identifying everything that decides the
// legal moves of e: the pieces with their moved flags, the side to move and
// an en passant opportunity left by the last move.
//
// Square keys are derived by mixing rather than drawn from a fixed table, so
// any board size is covered.
func GenerateZobristHash(e *engine.Engine) uint64 {
	board := e.Board()

	hash := mix(sizeSalt ^ uint64(board.Width())<<32 ^ uint64(board.Height()))
	board.ForEach(func(c chess.Coord, p *chess.Piece) {
		hash ^= squareKey(board.Index(c), p)
	})
	if e.PlayingColour() == chess.Black {
		hash ^= sideSalt
	}
	if last, ok := e.LastMove(); ok && last.IsDoubleStep() {
		hash ^= mix(enPassantSalt ^ uint64(board.Index(last.To)))
	}
	return hash
}

// squareKey is the contribution of piece p standing on square index. The
// moved flag only counts for the kinds whose moves depend on it.
func squareKey(index int, p *chess.Piece) uint64 {
	code := uint64(p.Kind)<<2 | uint64(p.Colour)<<1
	switch p.Kind {
	case chess.King, chess.Rook, chess.Pawn:
		if p.Moved {
			code |= 1
		}
	}
	return mix(uint64(index)<<8 | code)
}

// mix is the splitmix64 finaliser.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
