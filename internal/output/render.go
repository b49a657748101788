// Package output converts decoded API responses into the CLI's two output
// formats: pretty-printed JSON and bordered text tables.
package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Supported output formats.
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// maxCellWidth is the widest a table cell may render before truncation.
const maxCellWidth = 50

// tableListKeys are the payload fields probed, in priority order, when
// table mode is asked to render a mapping that wraps a list.
var tableListKeys = []string{"items", "documents", "collections", "users", "groups", "events"}

// RenderError reports a request for an unsupported output format.
type RenderError struct {
	Format string
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("unknown format type: %s", e.Format)
}

// Render formats a decoded response value. tableKeys, when non-nil,
// overrides the column set used for table output.
func Render(data any, format string, tableKeys []string) (string, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode output: %w", err)
		}
		return string(out), nil
	case FormatTable:
		return renderTable(data, tableKeys), nil
	default:
		return "", &RenderError{Format: format}
	}
}

func renderTable(data any, tableKeys []string) string {
	// Response envelopes wrap their payload in a data field.
	if mapping, ok := data.(map[string]any); ok {
		if inner, ok := mapping["data"]; ok {
			data = inner
		}
	}

	if mapping, ok := data.(map[string]any); ok {
		for _, key := range tableListKeys {
			if list, ok := mapping[key].([]any); ok {
				return renderTable(list, tableKeys)
			}
		}
		return renderKeyValue(mapping)
	}

	if list, ok := data.([]any); ok {
		return renderList(list, tableKeys)
	}

	return stringify(data)
}

// renderKeyValue renders a single mapping as a two-column grid, one row per
// entry, in sorted key order.
func renderKeyValue(mapping map[string]any) string {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, stringify(mapping[k])})
	}
	return renderGrid([]string{"Key", "Value"}, rows)
}

func renderList(list []any, tableKeys []string) string {
	if len(list) == 0 {
		return "No results"
	}

	var headers []string
	switch {
	case len(tableKeys) > 0:
		headers = tableKeys
	default:
		first, ok := list[0].(map[string]any)
		if !ok {
			// A plain list renders one value per line, no borders.
			lines := make([]string, len(list))
			for i, item := range list {
				lines[i] = stringify(item)
			}
			return strings.Join(lines, "\n")
		}
		headers = make([]string, 0, len(first))
		for k := range first {
			headers = append(headers, k)
		}
		sort.Strings(headers)
	}

	rows := make([][]string, 0, len(list))
	for _, item := range list {
		mapping, ok := item.(map[string]any)
		if !ok {
			rows = append(rows, []string{stringify(item)})
			continue
		}
		row := make([]string, len(headers))
		for i, key := range headers {
			row[i] = formatCell(mapping[key])
		}
		rows = append(rows, row)
	}
	return renderGrid(headers, rows)
}

// formatCell stringifies a cell value and truncates it for display.
func formatCell(value any) string {
	return truncate(stringify(value), maxCellWidth)
}

// stringify renders a value for a table cell: nil becomes empty, nested
// collections become compact JSON, everything else its string form.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// truncate shortens a string to maxLen characters, marking the cut with an
// ellipsis.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// renderGrid draws a bordered table: a +---+ rule around every row and a
// +===+ rule under the header.
func renderGrid(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	writeRule(&b, widths, '-')
	writeRow(&b, headers, widths)
	writeRule(&b, widths, '=')
	for _, row := range rows {
		writeRow(&b, row, widths)
		writeRule(&b, widths, '-')
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeRule(b *strings.Builder, widths []int, fill rune) {
	for _, w := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat(string(fill), w+2))
	}
	b.WriteString("+\n")
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString("| ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", w-runewidth.StringWidth(cell)))
		b.WriteByte(' ')
	}
	b.WriteString("|\n")
}
