// Package counter accumulates per-word occurrence counts under a
// case-sensitivity policy.
//
// The table is keyed either by the exact spelling or by its Unicode case
// folding, so `Foo` and `foo` merge into one entry in the default
// case-insensitive mode. A merged entry displays its first-seen spelling;
// counts are unaffected by the choice.
package counter

import (
	"golang.org/x/text/cases"
)

// Policy selects how spellings map to count keys.
type Policy int

const (
	// CaseInsensitive merges spellings that differ only in case.
	CaseInsensitive Policy = iota
	// CaseSensitive keeps every spelling as its own key.
	CaseSensitive
)

// String returns the policy's configuration spelling.
func (p Policy) String() string {
	switch p {
	case CaseInsensitive:
		return "case-insensitive"
	case CaseSensitive:
		return "case-sensitive"
	default:
		return "unknown"
	}
}

// Row is one (key, display word, count) entry snapshot. Key is what grouped
// and orders the entry; Display is the spelling shown to the user.
type Row struct {
	Key     string
	Display string
	Count   uint64
}

type entry struct {
	display string
	count   uint64
}

// Table counts recorded words. Not safe for concurrent use; the pipeline is
// single-threaded by design.
type Table struct {
	policy  Policy
	folder  cases.Caser
	entries map[string]*entry
}

// New returns an empty counting table under the given policy.
func New(policy Policy) *Table {
	t := &Table{
		policy:  policy,
		entries: make(map[string]*entry),
	}
	if policy == CaseInsensitive {
		t.folder = cases.Fold()
	}
	return t
}

// Policy reports the table's case policy.
func (t *Table) Policy() Policy {
	return t.policy
}

// Record increments the count for word's key, inserting a fresh entry with
// count 1 and word as the display spelling when the key is new.
func (t *Table) Record(word string) {
	key := word
	if t.policy == CaseInsensitive {
		key = t.folder.String(word)
	}
	if e, ok := t.entries[key]; ok {
		e.count++
		return
	}
	t.entries[key] = &entry{display: word, count: 1}
}

// Len reports the number of distinct keys.
func (t *Table) Len() int {
	return len(t.entries)
}

// Total reports the sum of all counts, i.e. the number of recorded words.
func (t *Table) Total() uint64 {
	var total uint64
	for _, e := range t.entries {
		total += e.count
	}
	return total
}

// Rows snapshots the table in no particular order. Ordering is the
// reporter's concern.
func (t *Table) Rows() []Row {
	rows := make([]Row, 0, len(t.entries))
	for key, e := range t.entries {
		rows = append(rows, Row{Key: key, Display: e.display, Count: e.count})
	}
	return rows
}
