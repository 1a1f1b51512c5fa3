package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var board8 = chess.NewStandardBoard()

func play(t *testing.T, e *engine.Engine, moves ...string) {
	t.Helper()
	for _, text := range moves {
		from, to, promotion, err := engine.ParseMove(board8, text)
		testutil.AssertNoError(t, err)
		if _, ok := e.ApplyMove(from, to, promotion); !ok {
			t.Fatalf("move %s rejected", text)
		}
	}
}

func TestTextWriter_Initial(t *testing.T) {
	var buf bytes.Buffer
	err := NewTextWriter(&buf, false).WriteState(engine.NewStandard())
	testutil.AssertNoError(t, err)

	out := buf.String()
	testutil.AssertContains(t, out, " 8 br bn bb bq bk bb bn br\n")
	testutil.AssertContains(t, out, " 4  .  .  .  .  .  .  .  .\n")
	testutil.AssertContains(t, out, " 1 wr wn wb wq wk wb wn wr\n")
	testutil.AssertContains(t, out, "    a  b  c  d  e  f  g  h\n")
	testutil.AssertContains(t, out, "White to move\n")
	testutil.AssertContains(t, out, "Status: Active\n")
	testutil.AssertFalse(t, strings.Contains(out, "Last move"), "initial position has no last move")
	testutil.AssertFalse(t, strings.Contains(out, "\x1b["), "colour codes without colour")
}

func TestTextWriter_AfterMoves(t *testing.T) {
	e := engine.NewStandard()
	play(t, e, "f2f3", "e7e5", "g2g4", "d8h4")

	var buf bytes.Buffer
	testutil.AssertNoError(t, NewTextWriter(&buf, false).WriteState(e))

	out := buf.String()
	testutil.AssertContains(t, out, " 2 wp wp wp wp wp  .  . wp\n")
	testutil.AssertContains(t, out, "White to move, in check\n")
	testutil.AssertContains(t, out, "Status: Checkmate\n")
	testutil.AssertContains(t, out, "Last move: d8h4 (Plain)\n")
}

func TestTextWriter_Colour(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, NewTextWriter(&buf, true).WriteState(engine.NewStandard()))
	testutil.AssertContains(t, buf.String(), "\x1b[")
}

func TestTextWriter_SmallBoard(t *testing.T) {
	e := engine.New(engine.WithBoardSize(3, 3))
	layout := testutil.Layout(
		"k..",
		"...",
		"..K",
	)
	testutil.AssertNoError(t, e.Init(layout))

	var buf bytes.Buffer
	testutil.AssertNoError(t, NewTextWriter(&buf, false).WriteState(e))
	testutil.AssertContains(t, buf.String(), " 3 bk  .  .\n")
	testutil.AssertContains(t, buf.String(), " 1  .  . wk\n")
	testutil.AssertContains(t, buf.String(), "    a  b  c\n")
}

func TestJSONWriter(t *testing.T) {
	e := engine.NewStandard()
	play(t, e, "e2e4")

	var buf bytes.Buffer
	testutil.AssertNoError(t, NewJSONWriter(&buf).WriteState(e))

	var got JSONState
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	testutil.AssertEqual(t, got.ToMove, "black")
	testutil.AssertEqual(t, got.Status, "active")
	testutil.AssertFalse(t, got.InCheck)
	testutil.AssertEqual(t, len(got.Pieces), 32)
	testutil.AssertEqual(t, got.Pieces[0], JSONPiece{Code: "br", Square: "a8", Index: 0})
	testutil.AssertEqual(t, got.LastMove, &JSONMove{
		Text:  "e2e4",
		Kind:  "Plain",
		From:  "e2",
		To:    "e4",
		Piece: "wp",
	})
}

func TestJSONWriter_Promotion(t *testing.T) {
	e := engine.New()
	layout := testutil.Layout(
		"....k...",
		"P.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	)
	testutil.AssertNoError(t, e.Init(layout))
	play(t, e, "a7a8q")

	js := StateToJSON(e)
	testutil.AssertEqual(t, js.LastMove.Promotion, "Queen")
	testutil.AssertEqual(t, js.LastMove.Text, "a7a8q")
	testutil.AssertTrue(t, js.InCheck, "queen on a8 checks the king on e8")
}

func TestNewStateWriter(t *testing.T) {
	cfg := config.NewConfig()
	if _, ok := NewStateWriter(&bytes.Buffer{}, cfg).(*TextWriter); !ok {
		t.Error("default writer is not a TextWriter")
	}
	cfg.JSONFormat = true
	if _, ok := NewStateWriter(&bytes.Buffer{}, cfg).(*JSONWriter); !ok {
		t.Error("JSONFormat writer is not a JSONWriter")
	}
}
