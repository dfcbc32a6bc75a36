package testdoubles

import (
	"context"
	"sync"

	"github.com/aiswo/librarydesk/tablestore"
)

// MemoryBackend is a tablestore.Backend keeping tables in memory.
// LoadErr and SaveErr, when set, are returned instead of touching the stored tables.
type MemoryBackend struct {
	tables    map[string]tablestore.Table
	LoadErr   error
	SaveErr   error
	saveCalls int
	mu        sync.Mutex
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{tables: make(map[string]tablestore.Table)}
}

// Load implements tablestore.Backend.
func (b *MemoryBackend) Load(_ context.Context, name tablestore.TableNameString) (tablestore.Table, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.LoadErr != nil {
		return tablestore.Table{}, b.LoadErr
	}

	table, ok := b.tables[name]
	if !ok {
		return tablestore.Table{}, tablestore.ErrTableNotFound
	}

	return table.Clone(), nil
}

// Save implements tablestore.Backend.
func (b *MemoryBackend) Save(_ context.Context, name tablestore.TableNameString, table tablestore.Table) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.saveCalls++

	if b.SaveErr != nil {
		return b.SaveErr
	}

	if err := table.Validate(); err != nil {
		return err
	}

	b.tables[name] = table.Clone()

	return nil
}

// Put stores a table directly, bypassing validation.
func (b *MemoryBackend) Put(name string, table tablestore.Table) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tables[name] = table.Clone()
}

// Get returns the stored table and whether it exists.
func (b *MemoryBackend) Get(name string) (tablestore.Table, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	table, ok := b.tables[name]

	return table.Clone(), ok
}

// SaveCalls returns how many times Save was called.
func (b *MemoryBackend) SaveCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.saveCalls
}

var _ tablestore.Backend = (*MemoryBackend)(nil)
