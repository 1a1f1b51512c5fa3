package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var standardBoard = chess.NewStandardBoard()

// sq converts a square name such as "e2" to a coordinate on an 8x8 board.
func sq(name string) chess.Coord {
	c, ok := standardBoard.ParseSquare(name)
	if !ok {
		panic("bad square " + name)
	}
	return c
}

// mustEngine returns an 8x8 engine initialised from a diagram.
func mustEngine(t testing.TB, rows ...string) *Engine {
	t.Helper()
	e := New()
	if err := e.Init(testutil.Layout(rows...)); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return e
}

// destinations returns the sorted destination square names of moves.
func destinations(moves []Move) []string {
	var names []string
	for _, m := range moves {
		names = append(names, standardBoard.SquareName(m.To))
	}
	sort.Strings(names)
	return names
}

// play applies a sequence of coordinate moves, failing on the first illegal one.
func play(t *testing.T, e *Engine, moves ...string) {
	t.Helper()
	for _, text := range moves {
		from, to, promotion, err := ParseMove(standardBoard, text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		if _, ok := e.ApplyMove(from, to, promotion); !ok {
			t.Fatalf("ApplyMove(%q) = false, want true", text)
		}
	}
}

func TestInit_InvalidLayoutSize(t *testing.T) {
	e := NewStandard()
	play(t, e, "e2e4")
	before := e.State()

	for _, n := range []int{0, 63, 65} {
		err := e.Init(make([]string, n))
		testutil.AssertErrorIs(t, err, errors.ErrInvalidLayoutSize, "layout of %d squares", n)
	}

	testutil.AssertEqual(t, e.State(), before, "state after failed Init")
	testutil.AssertEqual(t, e.PlayingColour(), chess.Black)
}

func TestInit_InvalidPieceCode(t *testing.T) {
	layout := chess.NewStandardLayout()
	layout[10] = "bz"

	e := New()
	err := e.Init(layout)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPieceCode)
	testutil.AssertContains(t, err.Error(), "square 10")
	testutil.AssertEqual(t, len(e.State()), 0, "pieces after failed Init")
}

func TestInit_ResetsGame(t *testing.T) {
	e := NewStandard()
	play(t, e, "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertTrue(t, e.IsGameOver(), "fool's mate ends the game")

	if err := e.Init(chess.StandardLayout); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	testutil.AssertFalse(t, e.IsGameOver())
	testutil.AssertEqual(t, e.PlayingColour(), chess.White)
	if _, ok := e.LastMove(); ok {
		t.Error("LastMove() reported a move after Init")
	}
	testutil.AssertEqual(t, len(e.LegalMoves()), 20)
}

func TestStartingPosition(t *testing.T) {
	e := NewStandard()

	wantByKind := map[chess.Kind]int{
		chess.Pawn:   2,
		chess.Knight: 2,
		chess.Bishop: 0,
		chess.Rook:   0,
		chess.Queen:  0,
		chess.King:   0,
	}

	for _, p := range e.State() {
		got := len(e.LegalMovesAt(p.At))
		want := wantByKind[p.Piece.Kind]
		if p.Piece.Colour == chess.Black {
			want = 0
		}
		if got != want {
			t.Errorf("LegalMovesAt(%s) [%v] = %d moves, want %d",
				standardBoard.SquareName(p.At), &p.Piece, got, want)
		}
	}

	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("e2"))), []string{"e3", "e4"})
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("g1"))), []string{"f3", "h3"})
	testutil.AssertEqual(t, len(e.LegalMovesAt(sq("e4"))), 0, "empty square")
}

func TestLegalMovesAt_OpponentSquaresEmpty(t *testing.T) {
	e := NewStandard()
	script := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1"}

	for _, text := range script {
		play(t, e, text)
		for _, p := range e.State() {
			if p.Piece.Colour == e.PlayingColour() {
				continue
			}
			if moves := e.LegalMovesAt(p.At); len(moves) != 0 {
				t.Errorf("after %s: LegalMovesAt(%s) = %d moves for the side not to move",
					text, standardBoard.SquareName(p.At), len(moves))
			}
		}
	}
}

func TestLegalMovesAt_Idempotent(t *testing.T) {
	e := NewStandard()
	play(t, e, "d2d4", "d7d5")

	for _, p := range e.State() {
		first := destinations(e.LegalMovesAt(p.At))
		second := destinations(e.LegalMovesAt(p.At))
		testutil.AssertEqual(t, second, first, "square %s", standardBoard.SquareName(p.At))
	}

	// Mutating the returned slice must not leak into the index.
	moves := e.LegalMovesAt(sq("e2"))
	moves[0].To = sq("a1")
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("e2"))), []string{"e3", "e4"})
}

func TestLegalMovesAt_OutsidePanics(t *testing.T) {
	e := NewStandard()
	testutil.AssertPanics(t, func() { e.LegalMovesAt(chess.C(8, 0)) })
	testutil.AssertPanics(t, func() { e.IsPromotion(chess.C(0, 0), chess.C(0, -1)) })
	testutil.AssertPanics(t, func() { e.ApplyMove(chess.C(-1, 0), chess.C(0, 0), chess.NoKind) })
}

func TestApplyMove_Illegal(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{"empty source", "e4", "e5"},
		{"opponent piece", "e7", "e5"},
		{"not a destination", "e2", "e5"},
		{"blocked bishop", "c1", "e3"},
		{"onto own piece", "d1", "d2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewStandard()
			before := e.State()

			m, ok := e.ApplyMove(sq(tt.from), sq(tt.to), chess.NoKind)
			testutil.AssertFalse(t, ok, "ApplyMove(%s, %s)", tt.from, tt.to)
			testutil.AssertEqual(t, m.Piece == nil, true, "failed move carries no piece")
			testutil.AssertEqual(t, e.State(), before)
			testutil.AssertEqual(t, e.PlayingColour(), chess.White)
		})
	}
}

func TestApplyMove_PlainAndCapture(t *testing.T) {
	e := NewStandard()
	play(t, e, "e2e4", "d7d5")

	m, ok := e.ApplyMove(sq("e4"), sq("d5"), chess.NoKind)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m.Kind, Capture)
	testutil.AssertTrue(t, m.Piece.Moved, "moved flag set")

	if p := e.Board().Get(sq("d5")); !p.Is(chess.White, chess.Pawn) {
		t.Errorf("d5 = %v, want white pawn", p)
	}
	testutil.AssertEqual(t, len(e.State()), 31)
	testutil.AssertEqual(t, e.PlayingColour(), chess.Black)

	last, ok := e.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, FormatMove(standardBoard, last), "e4d5")
}

func TestEnPassant(t *testing.T) {
	e := mustEngine(t,
		"....k...",
		"........",
		"........",
		"........",
		"...p....",
		"........",
		"....P...",
		"....K...",
	)
	play(t, e, "e2e4")

	moves := e.LegalMovesAt(sq("d4"))
	testutil.AssertEqual(t, destinations(moves), []string{"d3", "e3"})

	var ep Move
	for _, m := range moves {
		if m.Kind == EnPassant {
			ep = m
		}
	}
	testutil.AssertEqual(t, ep.To, sq("e3"), "en passant lands behind the pawn")
	testutil.AssertEqual(t, ep.CaptureAt, sq("e4"), "en passant captures on the pawn's square")

	m, ok := e.ApplyMove(sq("d4"), sq("e3"), chess.NoKind)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m.Kind, EnPassant)

	board := e.Board()
	testutil.AssertTrue(t, board.IsEmpty(sq("e4")), "captured pawn removed")
	testutil.AssertTrue(t, board.IsEmpty(sq("d4")), "source cleared")
	testutil.AssertTrue(t, board.Get(sq("e3")).Is(chess.Black, chess.Pawn), "capturing pawn on e3")
	testutil.AssertEqual(t, len(e.State()), 3)
}

func TestEnPassant_OnlyImmediately(t *testing.T) {
	e := mustEngine(t,
		"k.......",
		"........",
		"........",
		"........",
		"...p....",
		"........",
		"....P...",
		"....K...",
	)
	play(t, e, "e2e4", "a8b8", "e1d1")

	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("d4"))), []string{"d3"})
}

func TestEnPassant_HorizontalPin(t *testing.T) {
	e := mustEngine(t,
		"....k...",
		"..p.....",
		"........",
		"KP.....r",
		"........",
		"........",
		".......P",
		"........",
	)
	play(t, e, "h2h3", "c7c5")

	for _, m := range e.LegalMovesAt(sq("b5")) {
		if m.Kind == EnPassant {
			t.Errorf("en passant %s offered although it exposes the king", FormatMove(standardBoard, m))
		}
	}
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("b5"))), []string{"b6"})
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []string // king destinations from e1
	}{
		{
			name: "both sides available",
			rows: []string{
				"k.......",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"R...K..R",
			},
			want: []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"},
		},
		{
			name: "intermediate square attacked",
			rows: []string{
				"k....r..",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"R...K..R",
			},
			want: []string{"c1", "d1", "d2", "e2"},
		},
		{
			name: "destination attacked",
			rows: []string{
				"k.....r.",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"R...K..R",
			},
			want: []string{"c1", "d1", "d2", "e2", "f1", "f2"},
		},
		{
			name: "king in check",
			rows: []string{
				"k.......",
				"........",
				"....r...",
				"........",
				"........",
				"........",
				"........",
				"R...K..R",
			},
			want: []string{"d1", "d2", "f1", "f2"},
		},
		{
			name: "queen side path blocked on b1",
			rows: []string{
				"k.......",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"RN..K..R",
			},
			want: []string{"d1", "d2", "e2", "f1", "f2", "g1"},
		},
		{
			name: "rook next to the king",
			rows: []string{
				"k.......",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"....KR..",
			},
			want: []string{"d1", "d2", "e2", "f2"},
		},
		{
			name: "queen side attack on b1 only is allowed",
			rows: []string{
				"kr......",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"R...K...",
			},
			want: []string{"c1", "d1", "d2", "e2", "f1", "f2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.rows...)
			testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("e1"))), tt.want)
		})
	}
}

func TestCastling_Apply(t *testing.T) {
	e := mustEngine(t,
		"r...k..r",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R...K..R",
	)

	m, ok := e.ApplyMove(sq("e1"), sq("g1"), chess.NoKind)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m.Kind, Castle)
	testutil.AssertEqual(t, m.RookFrom, sq("h1"))
	testutil.AssertEqual(t, m.RookTo, sq("f1"))

	board := e.Board()
	king, rook := board.Get(sq("g1")), board.Get(sq("f1"))
	testutil.AssertTrue(t, king.Is(chess.White, chess.King) && king.Moved, "king on g1 and moved")
	testutil.AssertTrue(t, rook.Is(chess.White, chess.Rook) && rook.Moved, "rook on f1 and moved")
	testutil.AssertTrue(t, board.IsEmpty(sq("e1")) && board.IsEmpty(sq("h1")), "origin squares cleared")

	// Black castles queen side.
	m, ok = e.ApplyMove(sq("e8"), sq("c8"), chess.NoKind)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m.Kind, Castle)
	board = e.Board()
	testutil.AssertTrue(t, board.Get(sq("c8")).Is(chess.Black, chess.King))
	testutil.AssertTrue(t, board.Get(sq("d8")).Is(chess.Black, chess.Rook))
	testutil.AssertTrue(t, board.IsEmpty(sq("a8")))
}

func TestCastling_LostAfterRookMoves(t *testing.T) {
	e := mustEngine(t,
		"...k....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R...K..R",
	)
	play(t, e, "h1h2", "d8c8", "h2h1", "c8d8")

	// Queen side is still available, king side is not.
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("e1"))), []string{"c1", "d1", "d2", "e2", "f1", "f2"})
	_, ok := e.ApplyMove(sq("e1"), sq("g1"), chess.NoKind)
	testutil.AssertFalse(t, ok, "castled with a rook that has moved")
}

func TestPinnedPieces(t *testing.T) {
	e := mustEngine(t,
		"k...r...",
		"........",
		"........",
		"b.......",
		"........",
		"........",
		"...NB...",
		"....K...",
	)

	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("e2"))), []string(nil), "bishop pinned on the file")
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("d2"))), []string(nil), "knight pinned on the diagonal")
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("e1"))), []string{"d1", "f1", "f2"})
}

func TestKingAvoidsPawnAttacks(t *testing.T) {
	e := mustEngine(t,
		"k.......",
		"........",
		"........",
		"........",
		"........",
		"...p....",
		"........",
		"....K...",
	)

	// d3 attacks c2 and e2; the pawn's forward square d2 is safe.
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("e1"))), []string{"d1", "d2", "f1", "f2"})
}

func TestCheckFromEveryKind(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		attacker string
	}{
		{"pawn", []string{"k.......", "........", "........", "...p....", "....K...", "........", "........", "........"}, "d5"},
		{"knight", []string{"k.......", "........", ".....n..", "........", "....K...", "........", "........", "........"}, "f6"},
		{"bishop", []string{"k.......", ".b......", "........", "........", "....K...", "........", "........", "........"}, "b7"},
		{"rook", []string{"k...r...", "........", "........", "........", "....K...", "........", "........", "........"}, "e8"},
		{"queen", []string{"k.......", "........", "........", "........", "....K..q", "........", "........", "........"}, "h4"},
		{"king", []string{"........", "........", "........", "...k....", "....K...", "........", "........", "........"}, "d5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.rows...)
			testutil.AssertTrue(t, e.InCheck(), "InCheck()")

			found := false
			for _, m := range CandidateMoves(e.board, sq(tt.attacker), nil) {
				if m.To == sq("e4") {
					found = true
					testutil.AssertTrue(t, m.IsCapture(), "move onto the king must be a capture, got %v", m.Kind)
				}
			}
			testutil.AssertTrue(t, found, "attacker has a candidate onto e4")
		})
	}
}

func TestCheckmate_BackRank(t *testing.T) {
	e := mustEngine(t,
		"......k.",
		".....ppp",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R.....K.",
	)
	testutil.AssertEqual(t, e.Status(), Active)

	play(t, e, "a1a8")

	testutil.AssertTrue(t, e.IsGameOver(), "IsGameOver()")
	testutil.AssertEqual(t, e.Status(), Checkmate)
	testutil.AssertTrue(t, e.InCheck(), "InCheck()")
	for i := 0; i < standardBoard.Size(); i++ {
		c := standardBoard.CoordOf(i)
		if n := len(e.LegalMovesAt(c)); n != 0 {
			t.Errorf("LegalMovesAt(%s) = %d moves after mate", standardBoard.SquareName(c), n)
		}
	}

	before := e.State()
	_, ok := e.ApplyMove(sq("g8"), sq("h8"), chess.NoKind)
	testutil.AssertFalse(t, ok, "moves after game over")
	testutil.AssertEqual(t, e.State(), before)
}

func TestCheckmate_Smothered(t *testing.T) {
	e := mustEngine(t,
		"......rk",
		"......pp",
		"........",
		"......N.",
		"........",
		"........",
		"........",
		"K.......",
	)
	play(t, e, "g5f7")

	testutil.AssertEqual(t, e.Status(), Checkmate)
}

func TestStalemate(t *testing.T) {
	e := mustEngine(t,
		"k.......",
		"........",
		"..Q.....",
		"........",
		"........",
		"........",
		"........",
		".......K",
	)
	play(t, e, "c6b6")

	testutil.AssertTrue(t, e.IsGameOver(), "IsGameOver()")
	testutil.AssertFalse(t, e.InCheck(), "InCheck()")
	testutil.AssertEqual(t, e.Status(), Stalemate)
}

func TestPromotion(t *testing.T) {
	e := mustEngine(t,
		"....k...",
		"P.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	)

	testutil.AssertTrue(t, e.IsPromotion(sq("a7"), sq("a8")), "a7a8")
	testutil.AssertFalse(t, e.IsPromotion(sq("a7"), sq("b8")), "a7b8 is not legal")
	testutil.AssertFalse(t, e.IsPromotion(sq("e1"), sq("e2")), "king move")
	testutil.AssertFalse(t, e.IsPromotion(sq("e8"), sq("e7")), "opponent piece")

	m, ok := e.ApplyMove(sq("a7"), sq("a8"), chess.Queen)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m.Promotion, chess.Queen)
	testutil.AssertEqual(t, FormatMove(standardBoard, m), "a7a8q")

	queen := e.Board().Get(sq("a8"))
	testutil.AssertEqual(t, *queen, chess.Piece{Kind: chess.Queen, Colour: chess.White, Moved: true})
	testutil.AssertTrue(t, e.InCheck(), "queen on a8 checks e8")
}

func TestPromotion_Black(t *testing.T) {
	e := mustEngine(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		".......p",
		"K.......",
	)
	play(t, e, "a1b1")

	testutil.AssertTrue(t, e.IsPromotion(sq("h2"), sq("h1")))
	play(t, e, "h2h1n")
	testutil.AssertTrue(t, e.Board().Get(sq("h1")).Is(chess.Black, chess.Knight))
}

func TestPromotion_WithoutKindStaysPawn(t *testing.T) {
	e := mustEngine(t,
		"....k...",
		"P.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	)
	play(t, e, "a7a8")

	testutil.AssertTrue(t, e.Board().Get(sq("a8")).Is(chess.White, chess.Pawn))
}

func TestPromotion_ProgrammingErrors(t *testing.T) {
	rows := []string{
		"....k...",
		"P.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		".R..K...",
	}

	t.Run("non-pawn", func(t *testing.T) {
		e := mustEngine(t, rows...)
		testutil.AssertPanics(t, func() { e.ApplyMove(sq("b1"), sq("b8"), chess.Queen) })
	})
	t.Run("to king", func(t *testing.T) {
		e := mustEngine(t, rows...)
		testutil.AssertPanics(t, func() { e.ApplyMove(sq("a7"), sq("a8"), chess.King) })
	})
	t.Run("ignored off the last rank", func(t *testing.T) {
		e := mustEngine(t, rows...)
		_, ok := e.ApplyMove(sq("b1"), sq("b7"), chess.Queen)
		testutil.AssertTrue(t, ok)
		testutil.AssertTrue(t, e.Board().Get(sq("b7")).Is(chess.White, chess.Rook))
	})
}

func TestPawnDoubleStepOnlyFromHomeRank(t *testing.T) {
	e := mustEngine(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"P.......",
		".P......",
		"....K...",
	)

	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("a3"))), []string{"a4"})
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("b2"))), []string{"b3", "b4"})
}

func TestPawnBlocked(t *testing.T) {
	e := mustEngine(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"p.p.....",
		"PPP.....",
		"....K...",
	)

	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("a2"))), []string(nil), "blocked by enemy")
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("b2"))), []string{"a3", "b3", "b4", "c3"})
}

func TestClone(t *testing.T) {
	e := mustEngine(t,
		"....k...",
		"........",
		"........",
		"........",
		"...p....",
		"........",
		"....P...",
		"....K...",
	)
	play(t, e, "e2e4")

	c := e.Clone()
	testutil.AssertEqual(t, destinations(c.LegalMovesAt(sq("d4"))), []string{"d3", "e3"}, "en passant survives cloning")

	play(t, c, "d4e3")
	testutil.AssertEqual(t, len(c.State()), 3)
	testutil.AssertEqual(t, len(e.State()), 4, "original untouched")
	testutil.AssertEqual(t, e.PlayingColour(), chess.Black)
}

func TestWithBoardSize(t *testing.T) {
	e := New(WithBoardSize(5, 6))

	err := e.Init(make([]string, 64))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidLayoutSize)

	err = e.Init(testutil.Layout(
		"k....",
		"....P",
		".....",
		".....",
		"P....",
		"....K",
	))
	testutil.AssertNoError(t, err)

	b := e.Board()
	testutil.AssertEqual(t, b.Width(), 5)
	testutil.AssertEqual(t, b.Height(), 6)

	// Row 4 is the white pawn home rank on a six-rank board.
	var got []chess.Coord
	for _, m := range e.LegalMovesAt(chess.C(0, 4)) {
		got = append(got, m.To)
	}
	testutil.AssertEqual(t, got, []chess.Coord{chess.C(0, 3), chess.C(0, 2)})
	testutil.AssertEqual(t, b.SquareName(chess.C(0, 2)), "a4")
	testutil.AssertTrue(t, e.IsPromotion(chess.C(4, 1), chess.C(4, 0)), "promotion on row 0")
}

func TestReturnedMovesDoNotAliasBoard(t *testing.T) {
	e := mustEngine(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"P.......",
		"R...K...",
	)

	for _, m := range e.LegalMovesAt(sq("e1")) {
		m.Piece.Moved = true
	}
	for _, m := range e.LegalMoves() {
		m.Piece.Moved = true
	}
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("a2"))), []string{"a3", "a4"})
	testutil.AssertFalse(t, e.Board().Get(sq("e1")).Moved, "king marked moved through a returned move")

	m, ok := e.ApplyMove(sq("a2"), sq("a3"), chess.NoKind)
	testutil.AssertTrue(t, ok)
	m.Piece.Kind = chess.Queen
	last, _ := e.LastMove()
	last.Piece.Colour = chess.Black
	testutil.AssertTrue(t, e.Board().Get(sq("a3")).Is(chess.White, chess.Pawn))

	play(t, e, "e8d8")
	testutil.AssertEqual(t, destinations(e.LegalMovesAt(sq("e1"))), []string{"c1", "d1", "d2", "e2", "f1", "f2"})
}

func TestApplyMove_PromotionIgnoredOffLastRank(t *testing.T) {
	e := NewStandard()
	m, ok := e.ApplyMove(sq("e2"), sq("e3"), chess.Queen)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m.Promotion, chess.NoKind)
	testutil.AssertEqual(t, e.Board().Get(sq("e3")).Kind, chess.Pawn)

	// A knight move names no promotion either way.
	e = NewStandard()
	m, ok = e.ApplyMove(sq("g1"), sq("f3"), chess.Rook)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m.Promotion, chess.NoKind)
	testutil.AssertEqual(t, e.Board().Get(sq("f3")).Kind, chess.Knight)
}
