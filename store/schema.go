package store

import "github.com/MuhKar1/Voting-dApp/crypto"

// Key scheme of the underlying key-value substrate.
var (
	// recordPrefix + address -> record envelope (owner || data)
	recordPrefix = []byte("rec-")
)

// recordKey computes the substrate key of the record at addr.
func recordKey(addr crypto.Address) []byte {
	return append(recordPrefix, addr.Bytes()...)
}

// encodeRecord flattens a record to its envelope: the 32 byte owner
// followed by the payload.
func encodeRecord(r *Record) []byte {
	enc := make([]byte, 0, crypto.AddressLength+len(r.Data))
	enc = append(enc, r.Owner.Bytes()...)
	enc = append(enc, r.Data...)
	return enc
}

// decodeRecord parses a record envelope.
func decodeRecord(enc []byte) (*Record, error) {
	if len(enc) < crypto.AddressLength {
		return nil, ErrRecordNotFound
	}
	rec := &Record{Data: make([]byte, len(enc)-crypto.AddressLength)}
	rec.Owner.SetBytes(enc[:crypto.AddressLength])
	copy(rec.Data, enc[crypto.AddressLength:])
	return rec, nil
}
