package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"wordfreq/internal/counter"
)

// Format selects the rendering applied to the ordered rows.
type Format int

const (
	// FormatPlain prints aligned `word: count` lines.
	FormatPlain Format = iota
	// FormatTable prints a bordered two-column table.
	FormatTable
)

// String returns the format's configuration spelling.
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatTable:
		return "table"
	default:
		return "unknown"
	}
}

// ParseFormat maps a configuration spelling to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "plain", "":
		return FormatPlain, nil
	case "table":
		return FormatTable, nil
	default:
		return FormatPlain, fmt.Errorf("report.format: unsupported value %q", value)
	}
}

func renderTable(w io.Writer, rows []counter.Row) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Word", "Count"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.Display, strconv.FormatUint(row.Count, 10)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}
