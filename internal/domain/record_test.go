package domain

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{name: "test", value: 42},
		{name: "", value: 0},
		{name: "negative", value: -7},
		{name: "  spaced  ", value: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord(tt.name, tt.value)
			assert.Equal(t, tt.name, r.Name())
			assert.Equal(t, tt.value, r.Value())
		})
	}
}

func TestRecord_Increment(t *testing.T) {
	r := NewRecord("test", 10)

	result := r.Increment(5)
	assert.Equal(t, 15, result)
	assert.Equal(t, 15, r.Value())

	// Cumulative
	assert.Equal(t, 12, r.Increment(-3))
	assert.Equal(t, 12, r.Value())

	// Name is untouched
	assert.Equal(t, "test", r.Name())
}

func TestRecord_IncrementWraps(t *testing.T) {
	r := NewRecord("max", math.MaxInt)
	assert.Equal(t, math.MinInt, r.Increment(1))
}

func TestRecord_Equal(t *testing.T) {
	a := NewRecord("test", 10)

	assert.True(t, a.Equal(NewRecord("test", 10)))
	assert.False(t, a.Equal(NewRecord("test", 11)))
	assert.False(t, a.Equal(NewRecord("other", 10)))
	assert.False(t, a.Equal(nil))

	var nilRecord *Record
	assert.True(t, nilRecord.Equal(nil))
}

func TestRecord_Clone(t *testing.T) {
	original := NewRecord("test", 10)
	clone := original.Clone()

	require.NotNil(t, clone)
	assert.True(t, original.Equal(clone))
	assert.NotSame(t, original, clone)

	clone.Increment(5)
	assert.Equal(t, 10, original.Value())
	assert.Equal(t, 15, clone.Value())

	var nilRecord *Record
	assert.Nil(t, nilRecord.Clone())
}

func TestRecord_String(t *testing.T) {
	assert.Equal(t, `Record{name: "test", value: 10}`, NewRecord("test", 10).String())
	assert.Equal(t, `Record{name: "a\"b", value: -1}`, NewRecord(`a"b`, -1).String())

	var nilRecord *Record
	assert.Equal(t, "Record<nil>", nilRecord.String())
}

func TestReport_WriteTo(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		report := &Report{
			Name:           "test",
			InitialValue:   10,
			NewValue:       15,
			ProcessedItems: []string{"item1", "item2", "item3"},
			SearchTarget:   "item2",
			Found:          true,
			FoundIndex:     1,
		}

		var buf bytes.Buffer
		n, err := report.WriteTo(&buf)
		require.NoError(t, err)
		assert.Equal(t, int64(buf.Len()), n)

		expected := "Name: test\n" +
			"Value: 10\n" +
			"New value: 15\n" +
			"Processed items: [\"item1\", \"item2\", \"item3\"]\n" +
			"Found 'item2' at index: 1\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		report := &Report{
			Name:         "test",
			SearchTarget: "missing",
			FoundIndex:   -1,
		}

		var buf bytes.Buffer
		_, err := report.WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Processed items: []\n")
		assert.Contains(t, buf.String(), "Item not found\n")
	})
}

func TestQuoteItem(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Plain", input: "item1", expected: `"item1"`},
		{name: "Empty", input: "", expected: `""`},
		{name: "Quote and backslash", input: `a"b\c`, expected: `"a\"b\\c"`},
		{name: "Short escapes", input: "\t\r\n\x00", expected: `"\t\r\n\0"`},
		{name: "Control character", input: "\x01", expected: `"\u{1}"`},
		{name: "Delete", input: "\x7f", expected: `"\u{7f}"`},
		{name: "Zero width space", input: "a\u200bb", expected: `"a\u{200b}b"`},
		{name: "Single quote kept", input: "it's", expected: `"it's"`},
		{name: "Unicode kept", input: "héllo 世界", expected: `"héllo 世界"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteItem(tt.input))
		})
	}
}

func TestFormatItems(t *testing.T) {
	assert.Equal(t, "[]", FormatItems(nil))
	assert.Equal(t, `["item1", "", "item\u{1}"]`, FormatItems([]string{"item1", "", "item\x01"}))
}
