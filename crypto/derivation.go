package crypto

// MaxDerivationNonce is the last nonce tried before derivation gives up.
const MaxDerivationNonce = 255

// derivationMarker domain-separates record addresses from every other use of
// Keccak256 in the system.
var derivationMarker = []byte("record-address")

// DeriveAddress maps an ordered list of seeds and a program identity to a
// deterministic storage address plus the disambiguation nonce that produced
// it. Candidates that decode to a valid identity are skipped, so the result
// can only ever name a program-owned record; the search walks the nonce
// space upwards from zero and returns the first miss.
func DeriveAddress(program Address, seeds ...[]byte) (Address, uint8, error) {
	for nonce := 0; nonce <= MaxDerivationNonce; nonce++ {
		candidate := deriveCandidate(program, uint8(nonce), seeds)
		if !IsOnCurve(candidate) {
			return candidate, uint8(nonce), nil
		}
	}
	return Address{}, 0, ErrNonceSpaceExhausted
}

// CreateAddress recomputes the address for a known nonce. It fails with
// ErrAddressOnCurve if the candidate is a valid identity, which means the
// nonce did not come from DeriveAddress for these seeds.
func CreateAddress(program Address, nonce uint8, seeds ...[]byte) (Address, error) {
	candidate := deriveCandidate(program, nonce, seeds)
	if IsOnCurve(candidate) {
		return Address{}, ErrAddressOnCurve
	}
	return candidate, nil
}

// VerifyDerivedAddress reports whether addr is the address derived from the
// given seeds under the stored nonce.
func VerifyDerivedAddress(addr Address, program Address, nonce uint8, seeds ...[]byte) bool {
	expected, err := CreateAddress(program, nonce, seeds...)
	if err != nil {
		return false
	}
	return expected == addr
}

func deriveCandidate(program Address, nonce uint8, seeds [][]byte) Address {
	d := make([][]byte, 0, len(seeds)+3)
	d = append(d, seeds...)
	d = append(d, []byte{nonce}, program.Bytes(), derivationMarker)
	return Address(Keccak256Hash(d...))
}
