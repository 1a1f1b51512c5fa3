package engine

// step applies m to the board tentatively. A captured piece is kept in the
// single lastCaptured slot so undo can put it back; step must be followed by
// exactly one undo or commit before the next step.
func (e *Engine) step(m Move) {
	if e.pending {
		panic("engine: step called while a tentative move is pending")
	}
	e.pending = true
	e.lastCaptured = nil

	switch m.Kind {
	case Capture:
		e.lastCaptured = e.board.Get(m.To)
	case EnPassant:
		e.lastCaptured = e.board.Get(m.CaptureAt)
		e.board.Set(m.CaptureAt, nil)
	}

	e.board.Move(m.From, m.To)
	if m.Kind == Castle {
		e.board.Move(m.RookFrom, m.RookTo)
	}
}

// undo reverts the pending step of m exactly.
func (e *Engine) undo(m Move) {
	if !e.pending {
		panic("engine: undo called without a pending move")
	}

	if m.Kind == Castle {
		e.board.Move(m.RookTo, m.RookFrom)
	}
	e.board.Move(m.To, m.From)

	switch m.Kind {
	case Capture:
		e.board.Set(m.To, e.lastCaptured)
	case EnPassant:
		e.board.Set(m.CaptureAt, e.lastCaptured)
	}

	e.pending = false
	e.lastCaptured = nil
}

// commit makes the pending step permanent.
func (e *Engine) commit() {
	if !e.pending {
		panic("engine: commit called without a pending move")
	}
	e.pending = false
	e.lastCaptured = nil
}
