package crypto

import "errors"

var (
	// ErrNonceSpaceExhausted signals that every candidate in the derivation
	// nonce space decoded to a valid identity. Practically unreachable.
	ErrNonceSpaceExhausted = errors.New("derivation nonce space exhausted")

	// ErrAddressOnCurve signals that a derived candidate collides with a
	// valid identity and cannot name a program-owned record.
	ErrAddressOnCurve = errors.New("derived address collides with a valid identity")
)
