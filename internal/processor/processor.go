package processor

import (
	"strings"
)

// Processor defines the operations for cleaning up string collections
type Processor interface {
	// Process trims surrounding whitespace from every item and, when
	// filterEmpty is set, drops the items that end up empty.
	// Order is preserved and the input slice is never modified.
	Process(items []string, filterEmpty bool) []string
}

// StringProcessor implements the Processor interface
type StringProcessor struct{}

// New creates a new StringProcessor
func New() *StringProcessor {
	return &StringProcessor{}
}

// Process trims and optionally filters items
func (p *StringProcessor) Process(items []string, filterEmpty bool) []string {
	result := make([]string, 0, len(items))

	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if filterEmpty && trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}

	return result
}
