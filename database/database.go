// Package database defines the key-addressed storage substrate underneath
// the record store. The substrate is externally provided; this package only
// fixes its contract and ships the in-memory reference implementation.
package database

import "errors"

// ErrKeyNotFound is returned by Get when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// Reader wraps the Has and Get methods of a key-value data store.
type Reader interface {
	// Has retrieves whether a key is present in the store.
	Has(key []byte) (bool, error)

	// Get retrieves the given key if it's present in the store.
	Get(key []byte) ([]byte, error)
}

// Writer wraps the Put and Delete methods of a key-value data store.
type Writer interface {
	// Put inserts the given value into the store.
	Put(key, value []byte) error

	// Delete removes the key from the store.
	Delete(key []byte) error
}

// Database contains all the methods required by the record store.
type Database interface {
	Reader
	Writer
}
