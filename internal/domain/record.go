package domain

import (
	"fmt"
)

// Record is a named integer value. The name is fixed at construction;
// only Increment changes the value.
type Record struct {
	name  string
	value int
}

// NewRecord creates a new record with the given name and value
func NewRecord(name string, value int) *Record {
	return &Record{
		name:  name,
		value: value,
	}
}

// Name returns the record name
func (r *Record) Name() string {
	return r.name
}

// Value returns the current value
func (r *Record) Value() int {
	return r.value
}

// Increment adds amount to the value and returns the new value.
// Overflow wraps like any Go int addition.
func (r *Record) Increment(amount int) int {
	r.value += amount
	return r.value
}

// Equal reports whether both records have the same name and value
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.name == other.name && r.value == other.value
}

// Clone returns an independent copy of the record
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	return NewRecord(r.name, r.value)
}

// String returns a stable, human-readable form of the record
func (r *Record) String() string {
	if r == nil {
		return "Record<nil>"
	}
	return fmt.Sprintf("Record{name: %q, value: %d}", r.name, r.value)
}
