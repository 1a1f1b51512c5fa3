package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Engine holds a game in progress: the board, the side to move, the last move
// played and the legal moves of every piece of the side to move.
//
// The legal-move index is rebuilt wholesale after every applied move and on
// Init; queries never compute moves. An Engine is not safe for concurrent use.
// Use Clone to give each goroutine its own copy.
type Engine struct {
	width  int
	height int

	board    *chess.Board
	toMove   chess.Colour
	lastMove *Move
	legal    map[chess.Coord][]Move
	gameOver bool

	// Scratch for the single tentative move applied while validating
	// candidates. Only one step may be pending at a time.
	pending      bool
	lastCaptured *chess.Piece
}

// Placement is a piece and the square it stands on.
type Placement struct {
	Piece chess.Piece
	At    chess.Coord
}

// Option configures an Engine.
type Option func(*Engine)

// WithBoardSize sets the board dimensions. Non-positive values are ignored.
func WithBoardSize(width, height int) Option {
	return func(e *Engine) {
		if width >= 1 && height >= 1 {
			e.width = width
			e.height = height
		}
	}
}

// New creates an engine with an empty board. Call Init to set up a position.
func New(opts ...Option) *Engine {
	e := &Engine{
		width:  chess.StandardWidth,
		height: chess.StandardHeight,
		toMove: chess.White,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.board = chess.NewBoard(e.width, e.height)
	e.legal = make(map[chess.Coord][]Move)
	return e
}

// NewStandard creates an 8x8 engine set up in the standard initial position.
func NewStandard() *Engine {
	e := New()
	if err := e.Init(chess.StandardLayout); err != nil {
		panic(err)
	}
	return e
}

// Init sets up the position described by layout, a row-major list of piece
// codes of length width*height. White moves first. On error the engine is
// left unchanged.
func (e *Engine) Init(layout []string) error {
	if want := e.width * e.height; len(layout) != want {
		return fmt.Errorf("layout has %d squares, board has %d: %w", len(layout), want, errors.ErrInvalidLayoutSize)
	}

	board := chess.NewBoard(e.width, e.height)
	for i, code := range layout {
		piece, err := chess.ParsePieceCode(code)
		if err != nil {
			return errors.Wrapf(err, "square %d", i)
		}
		if piece == nil {
			continue
		}
		at := board.CoordOf(i)
		// A pawn away from its home rank can no longer double-step.
		if piece.Kind == chess.Pawn && at.Y != e.pawnHomeRank(piece.Colour) {
			piece.Moved = true
		}
		board.Set(at, piece)
	}

	e.board = board
	e.toMove = chess.White
	e.lastMove = nil
	e.gameOver = false
	e.pending = false
	e.lastCaptured = nil
	e.rebuildIndex()
	return nil
}

// State returns every piece on the board in row-major order.
func (e *Engine) State() []Placement {
	var placements []Placement
	e.board.ForEach(func(c chess.Coord, p *chess.Piece) {
		placements = append(placements, Placement{Piece: *p, At: c})
	})
	return placements
}

// Board returns a copy of the current board.
func (e *Engine) Board() *chess.Board {
	return e.board.Clone()
}

// PlayingColour returns the side to move.
func (e *Engine) PlayingColour() chess.Colour {
	return e.toMove
}

// IsGameOver reports whether the side to move was left without legal moves
// by the last applied move.
func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

// LastMove returns the most recently applied move.
func (e *Engine) LastMove() (Move, bool) {
	if e.lastMove == nil {
		return Move{}, false
	}
	return detach(*e.lastMove), true
}

// LegalMovesAt returns the legal moves of the piece on c. It is empty when c
// is empty, holds an opponent's piece or the piece cannot move.
// c must be on the board.
func (e *Engine) LegalMovesAt(c chess.Coord) []Move {
	e.mustInside(c)
	var moves []Move
	for _, m := range e.legal[c] {
		moves = append(moves, detach(m))
	}
	return moves
}

// LegalMoves returns every legal move of the side to move, ordered by the
// square of the moving piece in row-major order.
func (e *Engine) LegalMoves() []Move {
	var moves []Move
	for i := 0; i < e.board.Size(); i++ {
		for _, m := range e.legal[e.board.CoordOf(i)] {
			moves = append(moves, detach(m))
		}
	}
	return moves
}

// IsPromotion reports whether moving from from to to is a legal pawn move of
// the side to move onto the farthest rank.
func (e *Engine) IsPromotion(from, to chess.Coord) bool {
	e.mustInside(from)
	e.mustInside(to)
	if !e.board.Get(from).Is(e.toMove, chess.Pawn) {
		return false
	}
	if to.Y != e.promotionRank(e.toMove) {
		return false
	}
	_, ok := e.findLegal(from, to)
	return ok
}

// ApplyMove plays the legal move from from to to. promotion names the piece a
// pawn becomes on the farthest rank; chess.NoKind leaves it a pawn. It is
// ignored for moves that do not land on that rank.
// It returns false, changing nothing, when the game is over or the move is
// not legal. Promoting a piece that is not a pawn, or to a pawn or king,
// panics.
func (e *Engine) ApplyMove(from, to chess.Coord, promotion chess.Kind) (Move, bool) {
	e.mustInside(from)
	e.mustInside(to)
	if e.gameOver {
		return Move{}, false
	}
	m, ok := e.findLegal(from, to)
	if !ok {
		return Move{}, false
	}

	promotes := promotion != chess.NoKind && to.Y == e.promotionRank(m.Piece.Colour)
	if promotes {
		if m.Piece.Kind != chess.Pawn {
			panic(fmt.Sprintf("engine: cannot promote %v on %v", m.Piece, from))
		}
		switch promotion {
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		default:
			panic(fmt.Sprintf("engine: invalid promotion to %v", promotion))
		}
	}

	e.step(m)
	e.commit()

	m.Piece.Moved = true
	if m.Kind == Castle {
		e.board.Get(m.RookTo).Moved = true
	}
	if promotes {
		e.board.Set(to, &chess.Piece{Kind: promotion, Colour: m.Piece.Colour, Moved: true})
		m.Promotion = promotion
	}

	played := m
	e.lastMove = &played
	e.toMove = e.toMove.Opposite()
	e.rebuildIndex()
	if len(e.legal) == 0 {
		e.gameOver = true
	}
	return detach(m), true
}

// Clone returns an independent engine in the same position.
func (e *Engine) Clone() *Engine {
	if e.pending {
		panic("engine: Clone called while a tentative move is pending")
	}
	c := &Engine{
		width:    e.width,
		height:   e.height,
		board:    e.board.Clone(),
		toMove:   e.toMove,
		gameOver: e.gameOver,
	}
	if e.lastMove != nil {
		last := detach(*e.lastMove)
		c.lastMove = &last
	}
	c.rebuildIndex()
	return c
}

// detach gives m its own copy of the moving piece, so moves handed out
// cannot alter pieces on the engine's board.
func detach(m Move) Move {
	if m.Piece != nil {
		piece := *m.Piece
		m.Piece = &piece
	}
	return m
}

// findLegal looks up the indexed legal move from from to to.
func (e *Engine) findLegal(from, to chess.Coord) (Move, bool) {
	for _, m := range e.legal[from] {
		if m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

// pawnHomeRank is the rank a pawn of colour starts on.
func (e *Engine) pawnHomeRank(colour chess.Colour) int {
	if colour == chess.White {
		return e.height - 2
	}
	return 1
}

// promotionRank is the farthest rank for pawns of colour.
func (e *Engine) promotionRank(colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return e.height - 1
}

func (e *Engine) mustInside(c chess.Coord) {
	if !e.board.Inside(c) {
		panic(fmt.Sprintf("engine: coordinate %v outside %dx%d board", c, e.width, e.height))
	}
}
