package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// playMove parses and applies one move. A pawn reaching the last rank
// without a promotion letter becomes a queen.
func playMove(e *engine.Engine, text string) (engine.Move, error) {
	if e.IsGameOver() {
		return engine.Move{}, errors.ErrGameOver
	}
	board := e.Board()
	from, to, promotion, err := engine.ParseMove(board, text)
	if err != nil {
		return engine.Move{}, err
	}
	if !e.IsPromotion(from, to) {
		if promotion != chess.NoKind {
			return engine.Move{}, fmt.Errorf("%s is not a promotion: %w", text, errors.ErrIllegalMove)
		}
	} else if promotion == chess.NoKind {
		promotion = chess.Queen
	}
	m, ok := e.ApplyMove(from, to, promotion)
	if !ok {
		return engine.Move{}, errors.ErrIllegalMove
	}
	return m, nil
}

// replay applies every scripted move in order. It stops at the first move
// that cannot be played and returns a MoveError locating it.
func replay(e *engine.Engine, moves []moveLine, filename string, cfg *config.Config, sw output.StateWriter) error {
	for i, ml := range moves {
		ply := i + 1
		m, err := playMove(e, ml.Text)
		if err != nil {
			return &errors.MoveError{
				Err:      err,
				Ply:      ply,
				MoveText: ml.Text,
				File:     filename,
				Line:     ml.Line,
			}
		}
		cfg.Logf(2, "ply %d: %s %s (%s)\n", ply, m.Piece.Colour, ml.Text, m.Kind)
		if cfg.ShowBoard {
			if err := sw.WriteState(e); err != nil {
				return err
			}
		}
	}
	cfg.Logf(1, "%d move(s) played, %s\n", len(moves), e.Status())
	return nil
}

// interactive reads moves from in until end of input or "quit", printing the
// position and a prompt before each. Unplayable moves are reported and the
// session continues.
func interactive(e *engine.Engine, in io.Reader, out io.Writer, sw output.StateWriter) error {
	scanner := bufio.NewScanner(in)
	if err := sw.WriteState(e); err != nil {
		return err
	}
	for {
		if e.IsGameOver() {
			fmt.Fprintf(out, "Game over: %s\n", e.Status())
			return nil
		}
		fmt.Fprintf(out, "%s> ", e.PlayingColour())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		text := strings.TrimSpace(stripComment(scanner.Text()))
		switch text {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "moves":
			fmt.Fprintln(out, strings.Join(legalMoveList(e), " "))
			continue
		case "board":
			if err := sw.WriteState(e); err != nil {
				return err
			}
			continue
		}

		if _, err := playMove(e, text); err != nil {
			fmt.Fprintf(out, "%s: %v\n", text, err)
			continue
		}
		if err := sw.WriteState(e); err != nil {
			return err
		}
	}
}

// legalMoveList returns the legal moves of the side to move, sorted.
func legalMoveList(e *engine.Engine) []string {
	board := e.Board()
	var moves []string
	for _, m := range e.LegalMoves() {
		moves = append(moves, engine.FormatMove(board, m))
	}
	sort.Strings(moves)
	return moves
}
