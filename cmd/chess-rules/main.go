// chess-rules replays or plays chess moves against the rules engine and
// counts move-tree nodes for testing move generation.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	b := config.NewConfigBuilder()
	applyFlags(b)
	cfg := b.Build()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	e, err := loadEngine(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.PerftDepth > 0 {
		err = runPerft(e, cfg)
	} else {
		err = run(e, cfg, os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// loadEngine builds the engine in the standard position or the one read from
// cfg.LayoutFilename.
func loadEngine(cfg *config.Config) (*engine.Engine, error) {
	if cfg.LayoutFilename == "" {
		return engine.NewStandard(), nil
	}

	file, err := os.Open(cfg.LayoutFilename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	layout, err := readLayout(file, cfg.LayoutFilename, cfg.BoardWidth, cfg.BoardHeight)
	if err != nil {
		return nil, err
	}
	e := engine.New(engine.WithBoardSize(cfg.BoardWidth, cfg.BoardHeight))
	if err := e.Init(layout); err != nil {
		return nil, err
	}
	cfg.Logf(1, "Loaded %dx%d layout from %s\n", cfg.BoardWidth, cfg.BoardHeight, cfg.LayoutFilename)
	return e, nil
}

// run plays the move script, or stdin when no script is given, and prints the
// final position. A terminal on stdin gets an interactive session instead.
func run(e *engine.Engine, cfg *config.Config, stdin io.Reader, isTerminal bool) error {
	sw := output.NewStateWriter(cfg.OutputFile, cfg)

	if cfg.MovesFilename == "" && isTerminal {
		return interactive(e, stdin, cfg.OutputFile, sw)
	}

	in, filename := stdin, ""
	if cfg.MovesFilename != "" {
		file, err := os.Open(cfg.MovesFilename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return err
		}
		defer file.Close()
		in, filename = file, cfg.MovesFilename
	}

	moves, err := readMoves(in, filename)
	if err != nil {
		return err
	}
	if err := replay(e, moves, filename, cfg, sw); err != nil {
		return err
	}
	if cfg.ShowBoard && len(moves) > 0 {
		return nil
	}
	return sw.WriteState(e)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves (e2e4, e7e8q) against the chess rules engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInteractive commands:\n")
	fmt.Fprintf(os.Stderr, "  moves  List the legal moves\n")
	fmt.Fprintf(os.Stderr, "  board  Print the position\n")
	fmt.Fprintf(os.Stderr, "  quit   Leave the session\n")
}
