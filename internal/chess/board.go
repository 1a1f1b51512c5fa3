package chess

import (
	"fmt"
	"strconv"
)

// Board is a fixed size grid of optional pieces addressed by Coord.
// Accessing a coordinate outside the board panics; callers check Inside first.
type Board struct {
	width   int
	height  int
	squares []*Piece
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("chess: invalid board dimensions %dx%d", width, height))
	}
	return &Board{
		width:   width,
		height:  height,
		squares: make([]*Piece, width*height),
	}
}

// NewStandardBoard creates an empty 8x8 board.
func NewStandardBoard() *Board {
	return NewBoard(StandardWidth, StandardHeight)
}

// Width returns the number of files.
func (b *Board) Width() int { return b.width }

// Height returns the number of ranks.
func (b *Board) Height() int { return b.height }

// Size returns the number of squares.
func (b *Board) Size() int { return len(b.squares) }

// Inside reports whether c lies on the board.
func (b *Board) Inside(c Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// Index returns the row-major linear index of c.
func (b *Board) Index(c Coord) int {
	b.mustInside(c)
	return c.X + c.Y*b.width
}

// CoordOf returns the coordinate of a row-major linear index.
func (b *Board) CoordOf(i int) Coord {
	if i < 0 || i >= len(b.squares) {
		panic(fmt.Sprintf("chess: index %d outside %dx%d board", i, b.width, b.height))
	}
	return Coord{X: i % b.width, Y: i / b.width}
}

// Get returns the piece at c, or nil when the square is empty.
func (b *Board) Get(c Coord) *Piece {
	return b.squares[b.Index(c)]
}

// Set places p at c. A nil piece empties the square.
func (b *Board) Set(c Coord, p *Piece) {
	b.squares[b.Index(c)] = p
}

// IsEmpty reports whether nothing stands on c.
func (b *Board) IsEmpty(c Coord) bool {
	return b.Get(c) == nil
}

// Move relocates the occupant of from to to and clears from.
// Whatever stood on to is overwritten. Moving a square onto itself does nothing.
func (b *Board) Move(from, to Coord) {
	if from == to {
		b.mustInside(from)
		return
	}
	p := b.Get(from)
	b.Set(to, p)
	b.Set(from, nil)
}

// ForEach calls fn for every occupied square in row-major order.
func (b *Board) ForEach(fn func(Coord, *Piece)) {
	for i, p := range b.squares {
		if p != nil {
			fn(b.CoordOf(i), p)
		}
	}
}

// Clone returns a deep copy of the board; pieces are copied too.
func (b *Board) Clone() *Board {
	nb := NewBoard(b.width, b.height)
	for i, p := range b.squares {
		if p != nil {
			cp := *p
			nb.squares[i] = &cp
		}
	}
	return nb
}

// SquareName returns the conventional name of c: file letter followed by the
// rank counted from the bottom of the layout, e.g. "e2".
func (b *Board) SquareName(c Coord) string {
	b.mustInside(c)
	return string(rune('a'+c.X)) + strconv.Itoa(b.height-c.Y)
}

// ParseSquare is the inverse of SquareName.
func (b *Board) ParseSquare(s string) (Coord, bool) {
	if len(s) < 2 {
		return Coord{}, false
	}
	file := s[0]
	if file < 'a' || file > 'z' {
		return Coord{}, false
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil {
		return Coord{}, false
	}
	c := Coord{X: int(file - 'a'), Y: b.height - rank}
	if !b.Inside(c) {
		return Coord{}, false
	}
	return c, true
}

func (b *Board) mustInside(c Coord) {
	if !b.Inside(c) {
		panic(fmt.Sprintf("chess: coordinate %v outside %dx%d board", c, b.width, b.height))
	}
}
