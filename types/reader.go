package types

import (
	"encoding/binary"
	"fmt"
)

const (
	maxUint8  = 1<<8 - 1
	maxUint16 = 1<<16 - 1
)

// reader is a cursor over a record encoding. Every accessor fails with
// ErrCorruptRecord instead of panicking on truncated input.
type reader struct {
	data []byte
	off  int
}

func (r *reader) bytes(n int) ([]byte, error) {
	if r.off+n > len(r.data) {
		return nil, fmt.Errorf("%w: truncated at offset %d", ErrCorruptRecord, r.off)
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) uint8() (uint8, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) uint64() (uint64, error) {
	b, err := r.bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) done() error {
	if r.off != len(r.data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorruptRecord, len(r.data)-r.off)
	}
	return nil
}
