package chord

import "slices"

// Outcome is the result of offering an entry to a Table.
type Outcome int

const (
	// Accepted means the chord was new and the entry was appended.
	Accepted Outcome = iota
	// Duplicate means the chord already maps to the same action; nothing
	// was appended.
	Duplicate
	// Conflict means the chord already maps to a different action; the
	// entry was rejected.
	Conflict
)

// Table is an insertion-ordered list of entries with at most one action
// per chord. Accepted entries are never removed or modified.
type Table struct {
	entries []Entry
	index   map[Key]int
}

// NewTable creates an empty table sized for about n entries.
func NewTable(n int) *Table {
	return &Table{
		entries: make([]Entry, 0, n),
		index:   make(map[Key]int, n),
	}
}

// Accept offers e to the table. On Duplicate and Conflict the previously
// accepted entry for the chord is returned alongside the outcome.
func (t *Table) Accept(e Entry) (Outcome, Entry) {
	if i, ok := t.index[e.Key()]; ok {
		existing := t.entries[i]
		if existing.Action == e.Action {
			return Duplicate, existing
		}

		return Conflict, existing
	}

	t.index[e.Key()] = len(t.entries)
	t.entries = append(t.entries, e)

	return Accepted, e
}

// Len returns the number of accepted entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the accepted entries in acceptance order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}
