package hashing

import "sync"

// ThreadSafeNodeTable wraps NodeTable with mutex protection so perft workers
// can share it.
type ThreadSafeNodeTable struct {
	table *NodeTable
	mu    sync.Mutex
}

// NewThreadSafeNodeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeNodeTable(maxCapacity int) *ThreadSafeNodeTable {
	return &ThreadSafeNodeTable{
		table: NewNodeTable(maxCapacity),
	}
}

// Lookup returns the stored count for key.
func (t *ThreadSafeNodeTable) Lookup(key NodeKey) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(key)
}

// Store records the count for key.
func (t *ThreadSafeNodeTable) Store(key NodeKey, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(key, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeNodeTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafeNodeTable) Hits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeNodeTable) IsFull() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.IsFull()
}
