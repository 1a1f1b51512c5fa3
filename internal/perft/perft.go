// Package perft counts the leaf nodes of the legal-move tree, the standard
// way to check a move generator against published totals.
package perft

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// tableCapacity bounds the subtree counts shared between Divide workers.
const tableCapacity = 1 << 20

// NewTable returns a node table sized for Divide.
func NewTable() *hashing.ThreadSafeNodeTable {
	return hashing.NewThreadSafeNodeTable(tableCapacity)
}

// promotionKinds are the choices a promoting pawn branches into.
var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Entry is the node count below one root move.
type Entry struct {
	Move  string
	Nodes uint64
}

// Count returns the number of leaf positions depth plies below e. A promotion
// counts once per promotion kind. e is not modified.
func Count(e *engine.Engine, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range e.LegalMoves() {
		kinds := branches(e, m)
		if depth == 1 {
			nodes += uint64(len(kinds))
			continue
		}
		for _, k := range kinds {
			nodes += Count(child(e, m, k), depth-1)
		}
	}
	return nodes
}

// Divide returns the node count below each root move, ordered as
// e.LegalMoves with promotion choices expanded. The subtrees are searched on
// a pool of workers, each owning a cloned engine. Workers share a table of
// subtree counts keyed by position, so transpositions are counted once.
func Divide(e *engine.Engine, depth, workers int) ([]Entry, error) {
	return DivideWithTable(e, depth, workers, hashing.NewThreadSafeNodeTable(tableCapacity))
}

// DivideWithTable is Divide sharing the given table between workers, so the
// caller can inspect it afterwards.
func DivideWithTable(e *engine.Engine, depth, workers int, table *hashing.ThreadSafeNodeTable) ([]Entry, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft depth %d: %w", depth, errors.ErrInvalidConfig)
	}

	board := e.Board()
	var items []worker.WorkItem
	for _, m := range e.LegalMoves() {
		for _, k := range branches(e, m) {
			label := m
			label.Promotion = k
			items = append(items, worker.WorkItem{
				Index:    len(items),
				Label:    engine.FormatMove(board, label),
				Position: child(e, m, k),
				Depth:    depth - 1,
			})
		}
	}
	if len(items) == 0 {
		return nil, nil
	}

	bufferSize := len(items)
	if bufferSize > 64 {
		bufferSize = 64
	}
	search := func(item worker.WorkItem) worker.ProcessResult {
		return searchItem(item, table)
	}
	pool := worker.NewPool(search, worker.WithWorkers(workers), worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	entries := make([]Entry, len(items))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			pool.Stop()
			continue
		}
		entries[result.Index] = Entry{Move: result.Label, Nodes: result.Nodes}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return entries, nil
}

// Total sums the node counts of entries.
func Total(entries []Entry) uint64 {
	var n uint64
	for _, en := range entries {
		n += en.Nodes
	}
	return n
}

// SortByMove orders entries by move text, the usual layout of divide output.
func SortByMove(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move < entries[j].Move
	})
}

// nodeTable is the subset of the hashing tables countCached needs.
type nodeTable interface {
	Lookup(key hashing.NodeKey) (uint64, bool)
	Store(key hashing.NodeKey, nodes uint64)
}

// countCached is Count with subtree totals remembered in table.
func countCached(e *engine.Engine, depth int, table nodeTable) uint64 {
	if depth < 2 {
		return Count(e, depth)
	}
	key := hashing.NodeKey{Hash: hashing.GenerateZobristHash(e), Depth: depth}
	if nodes, ok := table.Lookup(key); ok {
		return nodes
	}
	var nodes uint64
	for _, m := range e.LegalMoves() {
		for _, k := range branches(e, m) {
			nodes += countCached(child(e, m, k), depth-1, table)
		}
	}
	table.Store(key, nodes)
	return nodes
}

func searchItem(item worker.WorkItem, table nodeTable) (result worker.ProcessResult) {
	result = worker.ProcessResult{Index: item.Index, Label: item.Label}
	defer func() {
		if r := recover(); r != nil {
			result.Error = fmt.Errorf("perft %s: %v", item.Label, r)
		}
	}()
	result.Nodes = countCached(item.Position, item.Depth, table)
	return result
}

// branches lists the promotion kinds to try for m, or a single NoKind.
func branches(e *engine.Engine, m engine.Move) []chess.Kind {
	if e.IsPromotion(m.From, m.To) {
		return promotionKinds
	}
	return []chess.Kind{chess.NoKind}
}

func child(e *engine.Engine, m engine.Move, promotion chess.Kind) *engine.Engine {
	c := e.Clone()
	if _, ok := c.ApplyMove(m.From, m.To, promotion); !ok {
		panic(fmt.Sprintf("perft: indexed move %v->%v rejected", m.From, m.To))
	}
	return c
}
