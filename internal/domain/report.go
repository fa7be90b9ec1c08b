package domain

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Report is the outcome of one demonstration run
type Report struct {
	RunID          string   `yaml:"runId" json:"runId"`
	Name           string   `yaml:"name" json:"name"`
	InitialValue   int      `yaml:"initialValue" json:"initialValue"`
	NewValue       int      `yaml:"newValue" json:"newValue"`
	ProcessedItems []string `yaml:"processedItems" json:"processedItems"`
	DroppedItems   int      `yaml:"droppedItems" json:"droppedItems"`
	SearchTarget   string   `yaml:"searchTarget" json:"searchTarget"`
	Found          bool     `yaml:"found" json:"found"`
	FoundIndex     int      `yaml:"foundIndex" json:"foundIndex"`
}

// WriteTo writes the console form of the report to w
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", r.Name)
	fmt.Fprintf(&b, "Value: %d\n", r.InitialValue)
	fmt.Fprintf(&b, "New value: %d\n", r.NewValue)
	fmt.Fprintf(&b, "Processed items: %s\n", FormatItems(r.ProcessedItems))

	if r.Found {
		fmt.Fprintf(&b, "Found '%s' at index: %d\n", r.SearchTarget, r.FoundIndex)
	} else {
		b.WriteString("Item not found\n")
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// FormatItems renders a string slice as a bracketed list of quoted items,
// e.g. ["item1", "item2"]
func FormatItems(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = QuoteItem(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// QuoteItem double-quotes s. Quotes, backslashes, NUL, tab, CR and LF get
// short escapes; any other non-graphic rune is written as \u{hex}.
func QuoteItem(s string) string {
	var b strings.Builder
	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case 0:
			b.WriteString(`\0`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		default:
			if unicode.IsGraphic(r) {
				b.WriteRune(r)
			} else {
				fmt.Fprintf(&b, `\u{%x}`, r)
			}
		}
	}

	b.WriteByte('"')
	return b.String()
}
