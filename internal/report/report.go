// Package report orders and renders the final counting table.
//
// Ordering is a deterministic total order in both modes: lexicographic mode
// sorts ascending by count key, frequency mode sorts descending by count
// with ties broken ascending by key. Rendering right-aligns words to the
// widest distinct word in the plain format, or hands rows to a go-pretty
// table in the table format.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"wordfreq/internal/counter"
)

// Order selects the row ordering policy.
type Order int

const (
	// OrderLexicographic sorts ascending by count key.
	OrderLexicographic Order = iota
	// OrderByFrequency sorts descending by count, ties ascending by key.
	OrderByFrequency
)

// String returns the order's configuration spelling.
func (o Order) String() string {
	switch o {
	case OrderLexicographic:
		return "lexicographic"
	case OrderByFrequency:
		return "frequency"
	default:
		return "unknown"
	}
}

// ParseOrder maps a configuration spelling to an Order.
func ParseOrder(value string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "lexicographic", "lex", "":
		return OrderLexicographic, nil
	case "frequency", "freq":
		return OrderByFrequency, nil
	default:
		return OrderLexicographic, fmt.Errorf("report.order: unsupported value %q", value)
	}
}

// Sort orders rows in place according to the selected policy.
func Sort(rows []counter.Row, order Order) {
	switch order {
	case OrderByFrequency:
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Count != rows[j].Count {
				return rows[i].Count > rows[j].Count
			}
			return rows[i].Key < rows[j].Key
		})
	default:
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Key < rows[j].Key
		})
	}
}

// Render writes one line per row to w in the already-established order.
func Render(w io.Writer, rows []counter.Row, format Format) error {
	switch format {
	case FormatTable:
		return renderTable(w, rows)
	default:
		return renderPlain(w, rows)
	}
}

// renderPlain emits `word: count` lines with the word right-aligned to the
// widest display word. Width is measured in runes, so multi-byte words line
// up the same as ASCII ones.
func renderPlain(w io.Writer, rows []counter.Row) error {
	var width int
	for _, row := range rows {
		if n := utf8.RuneCountInString(row.Display); n > width {
			width = n
		}
	}
	for _, row := range rows {
		pad := width - utf8.RuneCountInString(row.Display)
		if _, err := fmt.Fprintf(w, "%s%s: %d\n", strings.Repeat(" ", pad), row.Display, row.Count); err != nil {
			return err
		}
	}
	return nil
}
