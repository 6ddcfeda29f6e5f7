package store

import "context"

// MockStore wraps a MemoryStore and injects failures for testing.
type MockStore struct {
	*MemoryStore

	GetError   error
	PutError   error
	ClearError error

	// FailPutKey limits PutError to a single key when set.
	FailPutKey string
	PutCalls   []string
}

// NewMockStore returns a MockStore with an empty backing map.
func NewMockStore() *MockStore {
	return &MockStore{MemoryStore: NewMemoryStore()}
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetError != nil {
		return nil, false, m.GetError
	}
	return m.MemoryStore.Get(ctx, key)
}

func (m *MockStore) Put(ctx context.Context, key string, value []byte) error {
	m.PutCalls = append(m.PutCalls, key)
	if m.PutError != nil && (m.FailPutKey == "" || m.FailPutKey == key) {
		return m.PutError
	}
	return m.MemoryStore.Put(ctx, key, value)
}

func (m *MockStore) Clear(ctx context.Context) error {
	if m.ClearError != nil {
		return m.ClearError
	}
	return m.MemoryStore.Clear(ctx)
}
