package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const emptySquare = " ."

// TextWriter draws the board as a grid of piece codes, top rank first, followed
// by the side to move, the status and the last move.
type TextWriter struct {
	w      io.Writer
	colour bool
	white  *color.Color
	black  *color.Color
	label  *color.Color
}

// NewTextWriter creates a text writer. With colour set, pieces are
// highlighted by side regardless of whether w is a terminal.
func NewTextWriter(w io.Writer, colour bool) *TextWriter {
	tw := &TextWriter{
		w:      w,
		colour: colour,
		white:  color.New(color.FgHiWhite, color.Bold),
		black:  color.New(color.FgRed, color.Bold),
		label:  color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{tw.white, tw.black, tw.label} {
		if colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return tw
}

// WriteState writes the board and game summary of e.
func (tw *TextWriter) WriteState(e *engine.Engine) error {
	var sb strings.Builder
	board := e.Board()

	for y := 0; y < board.Height(); y++ {
		sb.WriteString(tw.label.Sprintf("%2d", board.Height()-y))
		for x := 0; x < board.Width(); x++ {
			sb.WriteByte(' ')
			sb.WriteString(tw.square(board.Get(chess.C(x, y))))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for x := 0; x < board.Width(); x++ {
		sb.WriteString(tw.label.Sprintf("  %c", 'a'+x))
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "%s to move", e.PlayingColour())
	if e.InCheck() {
		sb.WriteString(", in check")
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Status: %s\n", e.Status())
	if last, ok := e.LastMove(); ok {
		fmt.Fprintf(&sb, "Last move: %s (%s)\n", engine.FormatMove(board, last), last.Kind)
	}

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

func (tw *TextWriter) square(p *chess.Piece) string {
	if p == nil {
		return emptySquare
	}
	if p.Colour == chess.White {
		return tw.white.Sprint(p.Code())
	}
	return tw.black.Sprint(p.Code())
}
