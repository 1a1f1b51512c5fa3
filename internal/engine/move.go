package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveKind categorizes moves.
type MoveKind int

const (
	Plain MoveKind = iota
	Capture
	Castle
	EnPassant
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case Plain:
		return "Plain"
	case Capture:
		return "Capture"
	case Castle:
		return "Castle"
	case EnPassant:
		return "EnPassant"
	}
	return "Unknown"
}

// Move describes a transition of one piece. Fields beyond From and To are
// only meaningful for the kinds that use them.
type Move struct {
	Kind MoveKind

	// The piece making the move. Moves returned by an Engine carry a copy.
	Piece *chess.Piece

	From chess.Coord
	To   chess.Coord

	// Castle: where the rook starts and ends.
	RookFrom chess.Coord
	RookTo   chess.Coord

	// EnPassant: the square of the pawn being captured.
	CaptureAt chess.Coord

	// Set on applied moves only: the kind a pawn was promoted to.
	Promotion chess.Kind
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == EnPassant
}

// IsDoubleStep reports whether m is a pawn advancing two ranks.
func (m Move) IsDoubleStep() bool {
	if m.Piece == nil || m.Piece.Kind != chess.Pawn {
		return false
	}
	return abs(m.To.Y-m.From.Y) == 2
}
