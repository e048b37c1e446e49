package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MuhKar1/Voting-dApp/crypto"
	"github.com/MuhKar1/Voting-dApp/database"
)

var _ RecordStore = (*Database)(nil)

// Database is a record store over a key-value substrate. A single mutex
// orders batch commits, giving the single-writer creation guarantee the
// transition engine relies on.
type Database struct {
	db database.Database
	mu sync.Mutex
}

// NewDatabase wraps the given substrate as a record store.
func NewDatabase(db database.Database) *Database {
	return &Database{db: db}
}

func (ds *Database) Has(addr crypto.Address) (bool, error) {
	return ds.db.Has(recordKey(addr))
}

func (ds *Database) Get(addr crypto.Address) (*Record, error) {
	enc, err := ds.db.Get(recordKey(addr))
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return decodeRecord(enc)
}

func (ds *Database) NewBatch() Batch {
	return &dbBatch{ds: ds}
}

type mutationKind int

const (
	mutationCreate mutationKind = iota
	mutationUpdate
)

type mutation struct {
	kind  mutationKind
	addr  crypto.Address
	owner crypto.Address
	data  []byte
}

type dbBatch struct {
	ds      *Database
	staged  []mutation
	written bool
}

func (b *dbBatch) Create(addr crypto.Address, owner crypto.Address, data []byte) {
	b.staged = append(b.staged, mutation{kind: mutationCreate, addr: addr, owner: owner, data: data})
}

func (b *dbBatch) Update(addr crypto.Address, owner crypto.Address, data []byte) {
	b.staged = append(b.staged, mutation{kind: mutationUpdate, addr: addr, owner: owner, data: data})
}

// Write validates all staged mutations against the current state and only
// then applies them. Substrate put failures mid-apply are surfaced as-is;
// with the in-memory substrate they cannot occur.
func (b *dbBatch) Write() error {
	if b.written {
		return errors.New("batch already written")
	}
	b.written = true

	b.ds.mu.Lock()
	defer b.ds.mu.Unlock()

	for _, m := range b.staged {
		if err := b.ds.validate(&m); err != nil {
			return err
		}
	}
	for _, m := range b.staged {
		rec := &Record{Owner: m.owner, Data: m.data}
		if err := b.ds.db.Put(recordKey(m.addr), encodeRecord(rec)); err != nil {
			return fmt.Errorf("record store apply: %w", err)
		}
	}
	return nil
}

func (ds *Database) validate(m *mutation) error {
	switch m.kind {
	case mutationCreate:
		exists, err := ds.db.Has(recordKey(m.addr))
		if err != nil {
			return err
		}
		if exists {
			return ErrRecordExists
		}
	case mutationUpdate:
		current, err := ds.Get(m.addr)
		if err != nil {
			return err
		}
		if current.Owner != m.owner {
			return ErrNotOwner
		}
		if len(current.Data) != len(m.data) {
			return ErrSizeChanged
		}
	}
	return nil
}
