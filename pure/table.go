package pure

// Stats is a snapshot of how a Table has been used.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
	Dropped uint64
}

// Table is an insert-only memo table for the results of a pure function.
//
// Once a key is stored its value never changes and is never evicted, so a
// result read back from the table is always the one first computed for it.
// A table built with a positive maxSize stops accepting new keys once it
// holds maxSize entries; later results are dropped, not swapped in.
//
// IMPORTANT:
// Table is **NOT thread-safe**. It is meant to be owned by a single
// goroutine for the duration of one computation.
type Table[K comparable, V any] struct {
	entries map[K]V
	maxSize int
	hits    uint64
	misses  uint64
	dropped uint64
}

// NewTable creates an empty table. maxSize 0 means unbounded.
func NewTable[K comparable, V any](maxSize int) *Table[K, V] {
	if maxSize < 0 {
		panic("maxSize should not be negative")
	}
	return &Table[K, V]{
		entries: make(map[K]V),
		maxSize: maxSize,
	}
}

// Load returns the value stored for key, recording a hit or a miss.
func (t *Table[K, V]) Load(key K) (V, bool) {
	v, ok := t.entries[key]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return v, ok
}

// Store records value under key unless the key is already present or the
// table is full. It reports whether the value was stored.
func (t *Table[K, V]) Store(key K, value V) bool {
	if _, ok := t.entries[key]; ok {
		return false
	}
	if t.maxSize > 0 && len(t.entries) >= t.maxSize {
		t.dropped++
		return false
	}
	t.entries[key] = value
	return true
}

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int {
	return len(t.entries)
}

func (t *Table[K, V]) Stats() Stats {
	return Stats{
		Entries: len(t.entries),
		Hits:    t.hits,
		Misses:  t.misses,
		Dropped: t.dropped,
	}
}
