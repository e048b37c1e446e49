package store

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/MuhKar1/Voting-dApp/crypto"
)

var _ RecordStore = (*Cache)(nil)

// Cache is a read-through record cache on top of another store. Batch
// commits refresh the cached entries they touch.
type Cache struct {
	RecordStore

	records *lru.Cache // most recently read or written records
}

// NewCache wraps store with an LRU cache of the given size.
func NewCache(store RecordStore, size int) *Cache {
	records, _ := lru.New(size)

	return &Cache{
		RecordStore: store,
		records:     records,
	}
}

func (cs *Cache) Has(addr crypto.Address) (bool, error) {
	if cs.records.Contains(addr) {
		return true, nil
	}
	return cs.RecordStore.Has(addr)
}

func (cs *Cache) Get(addr crypto.Address) (*Record, error) {
	if cached, ok := cs.records.Get(addr); ok {
		return cached.(*Record), nil
	}

	rec, err := cs.RecordStore.Get(addr)
	if err != nil {
		return nil, err
	}
	cs.records.Add(addr, rec)

	return rec, nil
}

func (cs *Cache) NewBatch() Batch {
	return &cacheBatch{cs: cs, inner: cs.RecordStore.NewBatch()}
}

type cacheBatch struct {
	cs      *Cache
	inner   Batch
	pending []mutation
}

func (b *cacheBatch) Create(addr crypto.Address, owner crypto.Address, data []byte) {
	b.inner.Create(addr, owner, data)
	b.pending = append(b.pending, mutation{addr: addr, owner: owner, data: data})
}

func (b *cacheBatch) Update(addr crypto.Address, owner crypto.Address, data []byte) {
	b.inner.Update(addr, owner, data)
	b.pending = append(b.pending, mutation{addr: addr, owner: owner, data: data})
}

func (b *cacheBatch) Write() error {
	if err := b.inner.Write(); err != nil {
		return err
	}
	for _, m := range b.pending {
		b.cs.records.Add(m.addr, &Record{Owner: m.owner, Data: m.data})
	}
	return nil
}
