package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// runPerft prints the perft count of e, divided by root move if requested.
func runPerft(e *engine.Engine, cfg *config.Config) error {
	start := time.Now()

	var nodes uint64
	if cfg.Divide {
		table := perft.NewTable()
		entries, err := perft.DivideWithTable(e, cfg.PerftDepth, cfg.Workers, table)
		if err != nil {
			return err
		}
		cfg.Logf(2, "node table: %d entries, %d hits, full %v\n", table.Len(), table.Hits(), table.IsFull())
		perft.SortByMove(entries)
		for _, en := range entries {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", en.Move, en.Nodes)
		}
		nodes = perft.Total(entries)
		fmt.Fprintf(cfg.OutputFile, "\nMoves: %d\n", len(entries))
	} else {
		nodes = perft.Count(e, cfg.PerftDepth)
	}
	fmt.Fprintf(cfg.OutputFile, "Nodes: %d\n", nodes)

	elapsed := time.Since(start)
	cfg.Logf(1, "perft(%d) = %d in %v (%d workers)\n", cfg.PerftDepth, nodes, elapsed.Round(time.Millisecond), cfg.Workers)
	return nil
}
