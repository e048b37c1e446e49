// Package store implements the record store: accounts keyed by derived
// addresses, each exclusively writable by its owning program and sized once
// at creation. Mutations are staged on a batch and commit all-or-nothing.
package store

import (
	"errors"

	"github.com/MuhKar1/Voting-dApp/crypto"
)

var (
	// ErrRecordExists is returned when creating at an occupied address.
	ErrRecordExists = errors.New("record already exists")

	// ErrRecordNotFound is returned when no record lives at the address.
	ErrRecordNotFound = errors.New("record not found")

	// ErrNotOwner is returned when a writer is not the record's owner.
	ErrNotOwner = errors.New("writer does not own record")

	// ErrSizeChanged is returned when an update would resize the record.
	ErrSizeChanged = errors.New("record size is fixed at creation")
)

// Record is one stored account: an owner identity and an opaque payload
// whose size is fixed at creation.
type Record struct {
	Owner crypto.Address
	Data  []byte
}

// Size returns the record's allocated size.
func (r *Record) Size() int { return len(r.Data) }

// RecordStore is the persistent substrate the transition engine runs
// against.
type RecordStore interface {
	// Has reports whether a record exists at the address.
	Has(addr crypto.Address) (bool, error)

	// Get retrieves the record at the address.
	Get(addr crypto.Address) (*Record, error)

	// NewBatch starts an empty mutation batch.
	NewBatch() Batch
}

// Batch stages record mutations for an atomic commit. Write validates every
// staged mutation against the store's current state before any of them is
// applied; a failed validation leaves the store untouched.
type Batch interface {
	// Create stages a create-if-absent of a record sized to len(data).
	Create(addr crypto.Address, owner crypto.Address, data []byte)

	// Update stages an owner-checked, size-preserving overwrite.
	Update(addr crypto.Address, owner crypto.Address, data []byte)

	// Write commits the staged mutations in order.
	Write() error
}
