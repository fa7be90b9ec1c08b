package processor

import (
	"sync"
)

// MockProcessor implements the Processor interface for testing
type MockProcessor struct {
	mu              sync.RWMutex
	result          []string
	useResult       bool
	processCalls    int
	lastItems       []string
	lastFilterEmpty bool
}

// NewMockProcessor creates a new mock processor that echoes its input
func NewMockProcessor() *MockProcessor {
	return &MockProcessor{}
}

// Process records the call and returns the configured result, or a copy
// of the input when no result is configured
func (m *MockProcessor) Process(items []string, filterEmpty bool) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processCalls++
	m.lastItems = append([]string(nil), items...)
	m.lastFilterEmpty = filterEmpty

	if m.useResult {
		return append([]string{}, m.result...)
	}
	return append([]string{}, items...)
}

// SetResult configures the items returned by Process
func (m *MockProcessor) SetResult(items []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.result = append([]string(nil), items...)
	m.useResult = true
}

// GetCallCount returns the number of calls to Process
func (m *MockProcessor) GetCallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.processCalls
}

// GetLastCall returns the arguments of the last Process call
func (m *MockProcessor) GetLastCall() ([]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.lastItems...), m.lastFilterEmpty
}

// Reset resets the mock state
func (m *MockProcessor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.result = nil
	m.useResult = false
	m.processCalls = 0
	m.lastItems = nil
	m.lastFilterEmpty = false
}
