package crypto

import (
	"crypto/ed25519"
	"crypto/rand"

	"filippo.io/edwards25519"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

const (
	// HashLength is the expected length of a hash in bytes.
	HashLength = 32

	// PublicKeyLength is the expected length of a signer identity in bytes.
	PublicKeyLength = 32

	// AddressLength is the expected length of a storage address in bytes.
	AddressLength = 32
)

// Hash represents the 32 byte Keccak256 hash of arbitrary data.
type Hash [HashLength]byte

func (h Hash) Bytes() []byte  { return h[:] }
func (h Hash) Hex() string    { return hexutil.Encode(h[:]) }
func (h Hash) String() string { return h.Hex() }

// PublicKey represents an ed25519 signer identity. Identities authorize
// operations by co-signing them; they are data, never storage owners.
type PublicKey [PublicKeyLength]byte

func (pub PublicKey) Bytes() []byte  { return pub[:] }
func (pub PublicKey) Hex() string    { return hexutil.Encode(pub[:]) }
func (pub PublicKey) String() string { return pub.Hex() }

// Address returns the storage address occupied by the identity itself.
func (pub PublicKey) Address() Address { return Address(pub) }

// Address represents a 32 byte storage address. An address either carries a
// valid identity (externally owned) or is derived and can only name a
// program-owned record.
type Address [AddressLength]byte

func (addr Address) Bytes() []byte  { return addr[:] }
func (addr Address) Hex() string    { return hexutil.Encode(addr[:]) }
func (addr Address) String() string { return addr.Hex() }

// SetBytes sets the address to the value of b. If b is larger than
// AddressLength, b will be cropped from the left.
func (addr *Address) SetBytes(b []byte) {
	if len(b) > len(addr) {
		b = b[len(b)-AddressLength:]
	}
	copy(addr[AddressLength-len(b):], b)
}

// BytesToAddress returns Address with value b.
func BytesToAddress(b []byte) Address {
	var addr Address
	addr.SetBytes(b)
	return addr
}

// HexToAddress returns Address with byte values of s.
func HexToAddress(s string) Address {
	return BytesToAddress(hexutil.MustDecode(s))
}

// Keccak256 calculates and returns the Keccak256 hash of the input data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash calculates and returns the Keccak256 hash of the input data,
// converting it to an internal Hash data structure.
func Keccak256Hash(data ...[]byte) (h Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// IsOnCurve reports whether the 32 bytes of addr decode to a valid ed25519
// curve point, i.e. whether addr could be a signer identity.
func IsOnCurve(addr Address) bool {
	_, err := new(edwards25519.Point).SetBytes(addr[:])
	return err == nil
}

// GenerateKey creates a fresh identity along with its signing key.
func GenerateKey() (PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return PublicKey{}, nil, err
	}
	var key PublicKey
	copy(key[:], pub)
	return key, priv, nil
}
