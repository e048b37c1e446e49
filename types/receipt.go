package types

import (
	"fmt"

	"github.com/MuhKar1/Voting-dApp/crypto"
)

// VoteReceiptSize is the fixed serialized size of a vote receipt:
// version(1) + voter(32) + poll(32) + optionIndex(1) + nonce(1).
const VoteReceiptSize = 1 + crypto.PublicKeyLength + crypto.AddressLength + 1 + 1

// ReceiptSeeds returns the derivation seeds of the vote receipt for the
// (poll, voter) pair. Deriving the receipt address from the pair is the
// double-vote guard: a second vote computes the same, already occupied
// address.
func ReceiptSeeds(poll crypto.Address, voter crypto.PublicKey) [][]byte {
	return [][]byte{VoteSeedPrefix, poll.Bytes(), voter.Bytes()}
}

// VoteReceipt is the immutable marker proving that voter has cast a vote on
// poll. Its existence alone enforces the one-vote-per-voter rule.
type VoteReceipt struct {
	Version     uint8
	Voter       crypto.PublicKey
	Poll        crypto.Address
	OptionIndex uint8
	Nonce       uint8
}

// Size returns the exact serialized size of the receipt record.
func (vr *VoteReceipt) Size() int { return VoteReceiptSize }

// MarshalBinary implements encoding.BinaryMarshaler.
func (vr *VoteReceipt) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, VoteReceiptSize)
	buf = append(buf, vr.Version)
	buf = append(buf, vr.Voter.Bytes()...)
	buf = append(buf, vr.Poll.Bytes()...)
	buf = append(buf, vr.OptionIndex, vr.Nonce)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (vr *VoteReceipt) UnmarshalBinary(data []byte) error {
	r := reader{data: data}

	version, err := r.uint8()
	if err != nil {
		return err
	}
	if version != RecordVersion {
		return fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}
	vr.Version = version

	voter, err := r.bytes(crypto.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(vr.Voter[:], voter)

	poll, err := r.bytes(crypto.AddressLength)
	if err != nil {
		return err
	}
	copy(vr.Poll[:], poll)

	if vr.OptionIndex, err = r.uint8(); err != nil {
		return err
	}
	if vr.Nonce, err = r.uint8(); err != nil {
		return err
	}

	return r.done()
}
