package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONState represents the engine state in JSON format.
type JSONState struct {
	ToMove   string      `json:"toMove"` // "white" or "black"
	Status   string      `json:"status"`
	InCheck  bool        `json:"inCheck"`
	Pieces   []JSONPiece `json:"pieces"`
	LastMove *JSONMove   `json:"lastMove,omitempty"`
}

// JSONPiece represents a piece on the board.
type JSONPiece struct {
	Code   string `json:"code"`
	Square string `json:"square"`
	Index  int    `json:"index"`
}

// JSONMove represents an applied move.
type JSONMove struct {
	Text      string `json:"text"`
	Kind      string `json:"kind"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONWriter writes one indented JSON document per state.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteState writes e as a JSON object.
func (jw *JSONWriter) WriteState(e *engine.Engine) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(StateToJSON(e))
}

// StateToJSON converts the engine state to its JSON form.
func StateToJSON(e *engine.Engine) *JSONState {
	board := e.Board()
	js := &JSONState{
		ToMove:  strings.ToLower(e.PlayingColour().String()),
		Status:  strings.ToLower(e.Status().String()),
		InCheck: e.InCheck(),
		Pieces:  []JSONPiece{},
	}
	for _, pl := range e.State() {
		piece := pl.Piece
		js.Pieces = append(js.Pieces, JSONPiece{
			Code:   piece.Code(),
			Square: board.SquareName(pl.At),
			Index:  board.Index(pl.At),
		})
	}
	if last, ok := e.LastMove(); ok {
		js.LastMove = moveToJSON(board, last)
	}
	return js
}

func moveToJSON(board *chess.Board, m engine.Move) *JSONMove {
	jm := &JSONMove{
		Text:  engine.FormatMove(board, m),
		Kind:  m.Kind.String(),
		From:  board.SquareName(m.From),
		To:    board.SquareName(m.To),
		Piece: m.Piece.Code(),
	}
	if m.Promotion != chess.NoKind {
		jm.Promotion = m.Promotion.String()
	}
	return jm
}
