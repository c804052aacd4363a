// Package intern deduplicates word spellings into canonical strings.
//
// Repeated occurrences of the same spelling resolve to one shared string
// whose backing bytes are allocated once and retained by the table for the
// rest of the run. That keeps memory proportional to distinct words rather
// than word occurrences, and lets downstream consumers compare and hash the
// returned strings without re-copying buffer spans.
package intern

// Table maps spellings to their canonical string. The map doubles as the
// arena: entries are never removed, so every returned string stays valid for
// the table's lifetime.
type Table struct {
	words map[string]string
}

// NewTable returns an empty interning table.
func NewTable() *Table {
	return &Table{words: make(map[string]string)}
}

// Word returns the canonical string for the spelling held in span. A hit
// performs no allocation; a miss copies the span once and registers it.
// Calling Word twice with equal spellings returns the identical string
// header, not merely an equal value.
func (t *Table) Word(span []byte) string {
	if canonical, ok := t.words[string(span)]; ok {
		return canonical
	}
	canonical := string(span)
	t.words[canonical] = canonical
	return canonical
}

// Len reports the number of distinct spellings interned so far.
func (t *Table) Len() int {
	return len(t.words)
}
