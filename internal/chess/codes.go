package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BlankCode is the placeholder for an empty square in a layout.
const BlankCode = ""

// StandardLayout is the initial position in row-major order, black's back rank first.
var StandardLayout = []string{
	"br", "bn", "bb", "bq", "bk", "bb", "bn", "br",
	"bp", "bp", "bp", "bp", "bp", "bp", "bp", "bp",
	"", "", "", "", "", "", "", "",
	"", "", "", "", "", "", "", "",
	"", "", "", "", "", "", "", "",
	"", "", "", "", "", "", "", "",
	"wp", "wp", "wp", "wp", "wp", "wp", "wp", "wp",
	"wr", "wn", "wb", "wq", "wk", "wb", "wn", "wr",
}

// NewStandardLayout returns a fresh copy of StandardLayout.
func NewStandardLayout() []string {
	layout := make([]string, len(StandardLayout))
	copy(layout, StandardLayout)
	return layout
}

// IsBlankCode reports whether code denotes an empty square.
func IsBlankCode(code string) bool {
	return strings.TrimSpace(code) == BlankCode
}

// ParsePieceCode converts a two character code such as "wp" into an unmoved
// piece. Blank codes yield a nil piece and no error.
func ParsePieceCode(code string) (*Piece, error) {
	if IsBlankCode(code) {
		return nil, nil
	}
	code = strings.TrimSpace(code)
	if len(code) != 2 {
		return nil, fmt.Errorf("code %q: %w", code, errors.ErrInvalidPieceCode)
	}

	var colour Colour
	switch code[0] {
	case 'w':
		colour = White
	case 'b':
		colour = Black
	default:
		return nil, fmt.Errorf("code %q: unknown colour %q: %w", code, code[0], errors.ErrInvalidPieceCode)
	}

	kind := KindFromLetter(code[1])
	if kind == NoKind || code[1] != kind.Letter() {
		return nil, fmt.Errorf("code %q: unknown piece %q: %w", code, code[1], errors.ErrInvalidPieceCode)
	}
	return NewPiece(colour, kind), nil
}
