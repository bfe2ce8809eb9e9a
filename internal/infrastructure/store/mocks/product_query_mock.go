package mocks

import (
	"context"
	"sync"

	"github.com/example/products-slider/internal/query"
)

// MockProductQuery is a mock implementation of ProductQueryInterface for testing
type MockProductQuery struct {
	mu sync.Mutex

	// For tracking calls in tests
	ExecuteCalls    []*query.Descriptor
	Result          []int
	ExecuteErr      error
	ExecuteCallback func(ctx context.Context, d *query.Descriptor) ([]int, error)
}

// NewMockProductQuery creates a MockProductQuery that returns ids for every query
func NewMockProductQuery(ids ...int) *MockProductQuery {
	return &MockProductQuery{
		ExecuteCalls: make([]*query.Descriptor, 0),
		Result:       ids,
	}
}

// Execute records the descriptor and returns the configured result
func (m *MockProductQuery) Execute(ctx context.Context, d *query.Descriptor) ([]int, error) {
	m.mu.Lock()
	m.ExecuteCalls = append(m.ExecuteCalls, d)
	callback := m.ExecuteCallback
	result, err := m.Result, m.ExecuteErr
	m.mu.Unlock()

	if callback != nil {
		return callback(ctx, d)
	}
	if err != nil {
		return nil, err
	}
	out := make([]int, len(result))
	copy(out, result)
	return out, nil
}

// CallCount returns how many times Execute was called
func (m *MockProductQuery) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ExecuteCalls)
}

// LastQuery returns the most recent descriptor, or nil
func (m *MockProductQuery) LastQuery() *query.Descriptor {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.ExecuteCalls) == 0 {
		return nil
	}
	return m.ExecuteCalls[len(m.ExecuteCalls)-1]
}
