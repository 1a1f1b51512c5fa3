// Package chess provides core chess types: colours, pieces, coordinates and the board.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the Y step a pawn of this colour advances by.
// White starts at the bottom of the layout and moves towards Y == 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind identifies a piece kind.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lower case code letter of a kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a code letter to a kind. Upper case letters are accepted.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	default:
		return NoKind
	}
}

// Piece is a piece standing on the board. Moved is set once the piece has
// left its starting square; pawns and kings consult it.
type Piece struct {
	Kind   Kind
	Colour Colour
	Moved  bool
}

// NewPiece returns an unmoved piece.
func NewPiece(colour Colour, kind Kind) *Piece {
	return &Piece{Kind: kind, Colour: colour}
}

// Is reports whether p is a piece of the given colour and kind. A nil piece is
// never anything.
func (p *Piece) Is(colour Colour, kind Kind) bool {
	return p != nil && p.Colour == colour && p.Kind == kind
}

// Code returns the two character piece code, e.g. "wp" or "bk".
func (p *Piece) Code() string {
	if p == nil {
		return BlankCode
	}
	colour := byte('w')
	if p.Colour == Black {
		colour = 'b'
	}
	return string([]byte{colour, p.Kind.Letter()})
}

func (p *Piece) String() string {
	if p == nil {
		return "<empty>"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Coord addresses a square. X is the file index and Y the rank index, with
// (0, 0) at the top-left of the layout.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Standard board dimensions.
const (
	StandardWidth  = 8
	StandardHeight = 8
)
