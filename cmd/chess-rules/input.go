package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// moveLine is one move token from a script with its line number.
type moveLine struct {
	Text string
	Line int
}

// readLayout reads whitespace separated piece codes, top rank first, with '.'
// for an empty square. It returns a layout of exactly width*height codes.
func readLayout(r io.Reader, filename string, width, height int) ([]string, error) {
	var layout []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := stripComment(scanner.Text())
		for col, tok := range strings.Fields(text) {
			if tok == "." {
				layout = append(layout, chess.BlankCode)
				continue
			}
			if _, err := chess.ParsePieceCode(tok); err != nil {
				return nil, &errors.ParseError{
					Err:    errors.ErrInvalidPieceCode,
					File:   filename,
					Line:   line,
					Column: col + 1,
					Got:    tok,
				}
			}
			layout = append(layout, tok)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	if want := width * height; len(layout) != want {
		return nil, fmt.Errorf("%s: %d squares for a %dx%d board: %w",
			filename, len(layout), width, height, errors.ErrInvalidLayoutSize)
	}
	return layout, nil
}

// readMoves reads a move script. Moves are separated by whitespace, and
// everything after '#' on a line is ignored.
func readMoves(r io.Reader, filename string) ([]moveLine, error) {
	var moves []moveLine
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		for _, tok := range strings.Fields(stripComment(scanner.Text())) {
			moves = append(moves, moveLine{Text: tok, Line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	return moves, nil
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}
