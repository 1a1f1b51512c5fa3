package hashing

// NodeKey identifies a perft subtree: a position and the depth searched
// below it.
type NodeKey struct {
	Hash  uint64
	Depth int
}

// NodeTable remembers subtree node counts. It is not safe for concurrent
// use; see ThreadSafeNodeTable.
type NodeTable struct {
	entries     map[NodeKey]uint64
	maxCapacity int
	hits        int
}

// NewNodeTable creates a table. maxCapacity of 0 means unlimited.
func NewNodeTable(maxCapacity int) *NodeTable {
	return &NodeTable{
		entries:     make(map[NodeKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for key.
func (t *NodeTable) Lookup(key NodeKey) (uint64, bool) {
	nodes, ok := t.entries[key]
	if ok {
		t.hits++
	}
	return nodes, ok
}

// Store records the count for key. Once the table is full new keys are
// dropped.
func (t *NodeTable) Store(key NodeKey, nodes uint64) {
	if _, ok := t.entries[key]; !ok && t.IsFull() {
		return
	}
	t.entries[key] = nodes
}

// Len returns the number of stored entries.
func (t *NodeTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *NodeTable) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
func (t *NodeTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}
