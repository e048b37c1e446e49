package database

import "sync"

var _ Database = (*MemoryDatabase)(nil)

// MemoryDatabase is an ephemeral key-value store backed by a map. It is the
// reference substrate for tests and single-process deployments.
type MemoryDatabase struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryDatabase returns an empty in-memory database.
func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{data: make(map[string][]byte)}
}

func (db *MemoryDatabase) Has(key []byte) (bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	_, ok := db.data[string(key)]
	return ok, nil
}

func (db *MemoryDatabase) Get(key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	value, ok := db.data[string(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	cpy := make([]byte, len(value))
	copy(cpy, value)
	return cpy, nil
}

func (db *MemoryDatabase) Put(key, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cpy := make([]byte, len(value))
	copy(cpy, value)
	db.data[string(key)] = cpy
	return nil
}

func (db *MemoryDatabase) Delete(key []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.data, string(key))
	return nil
}

// Len returns the number of stored entries.
func (db *MemoryDatabase) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.data)
}
