// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position
	layoutFile  = flag.String("layout", "", "Layout file of piece codes, top rank first ('.' for empty)")
	boardWidth  = flag.Int("width", 8, "Board width for -layout")
	boardHeight = flag.Int("height", 8, "Board height for -layout")

	// Moves
	movesFile = flag.String("moves", "", "Move script, one coordinate move per line (default: stdin)")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", 0, "Worker goroutines for -divide (default: number of CPUs)")

	// Output
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	colour     = flag.Bool("colour", false, "Colour the text board")
	showBoard  = flag.Bool("board", false, "Print the position after every move")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 summary, 2 every move")
	logFile   = flag.String("l", "", "Write diagnostics to this file instead of stderr")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration being built.
func applyFlags(b *config.ConfigBuilder) {
	b.WithVerbosity(*verbosity)
	applyBoardFlags(b)
	applyOutputFlags(b)
	applyPerftFlags(b)
}

// applyBoardFlags configures the starting position source.
func applyBoardFlags(b *config.ConfigBuilder) {
	b.WithMoves(*movesFile)
	if *layoutFile != "" {
		b.WithLayout(*layoutFile).WithBoardSize(*boardWidth, *boardHeight)
	}
}

// applyOutputFlags configures output rendering.
func applyOutputFlags(b *config.ConfigBuilder) {
	b.WithJSONOutput(*jsonOutput).
		WithColour(*colour && !*jsonOutput).
		WithShowBoard(*showBoard)
}

// applyPerftFlags configures node counting.
func applyPerftFlags(b *config.ConfigBuilder) {
	b.WithPerft(*perftDepth, *divide)
	if *workers > 0 {
		b.WithWorkers(*workers)
	}
}
