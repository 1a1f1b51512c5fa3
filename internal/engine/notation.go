package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseMove parses a move in coordinate notation: the source and destination
// square names, optionally separated by '-', optionally followed by a
// promotion letter. Examples: e2e4, e2-e4, e7e8q.
func ParseMove(board *chess.Board, text string) (from, to chess.Coord, promotion chess.Kind, err error) {
	s := strings.ToLower(strings.TrimSpace(text))

	fromName, rest := splitSquare(s)
	rest = strings.TrimPrefix(rest, "-")
	toName, rest := splitSquare(rest)

	var ok bool
	if from, ok = board.ParseSquare(fromName); !ok {
		return from, to, chess.NoKind, fmt.Errorf("%q: source %q: %w", text, fromName, errors.ErrInvalidSquare)
	}
	if to, ok = board.ParseSquare(toName); !ok {
		return from, to, chess.NoKind, fmt.Errorf("%q: destination %q: %w", text, toName, errors.ErrInvalidSquare)
	}

	switch len(rest) {
	case 0:
		return from, to, chess.NoKind, nil
	case 1:
		promotion = chess.KindFromLetter(rest[0])
		switch promotion {
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
			return from, to, promotion, nil
		}
	}
	return from, to, chess.NoKind, fmt.Errorf("%q: trailing %q: %w", text, rest, errors.ErrIllegalMove)
}

// FormatMove writes m in coordinate notation.
func FormatMove(board *chess.Board, m Move) string {
	s := board.SquareName(m.From) + board.SquareName(m.To)
	if m.Promotion != chess.NoKind {
		s += string(m.Promotion.Letter())
	}
	return s
}

// splitSquare splits a leading square name (letter then digits) off s.
func splitSquare(s string) (square, rest string) {
	if s == "" {
		return "", ""
	}
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}
