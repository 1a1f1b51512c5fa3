package engine

// Status describes whether a game is still in progress and how it ended.
type Status int

const (
	Active Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Unknown"
}

// InCheck returns true if the side to move's king is attacked.
func (e *Engine) InCheck() bool {
	return !e.kingSafe(e.toMove)
}

// Status reports Active until the game is over, then whether the side to
// move was checkmated or stalemated.
func (e *Engine) Status() Status {
	if !e.gameOver {
		return Active
	}
	if e.InCheck() {
		return Checkmate
	}
	return Stalemate
}
