package types

import (
	"encoding/binary"
	"fmt"

	"github.com/MuhKar1/Voting-dApp/crypto"
)

// Record layout versions. Bump when field order or widths change; external
// readers decode records directly and key off this tag.
const RecordVersion = 1

// Conservative poll limits.
const (
	MinOptions     = 2
	MaxOptions     = 10
	MaxQuestionLen = 200
	MaxOptionLen   = 50
)

// Seed prefixes for record address derivation.
var (
	PollSeedPrefix = []byte("poll")
	VoteSeedPrefix = []byte("vote")
)

// PollSeeds returns the derivation seeds of the poll record owned by creator
// under the caller-chosen poll id.
func PollSeeds(creator crypto.PublicKey, pollID uint64) [][]byte {
	id := make([]byte, 8)
	binary.LittleEndian.PutUint64(id, pollID)
	return [][]byte{PollSeedPrefix, creator.Bytes(), id}
}

// Poll represents one poll's identity, content and running tallies.
//
// Persistent layout (all integers little-endian):
//
//	version   uint8
//	creator   [32]byte
//	pollID    uint64
//	nonce     uint8
//	isActive  uint8
//	question  uint16 length prefix + bytes
//	options   uint8 count, each option uint8 length prefix + bytes
//	votes     count * uint64
//
// Vote counters are fixed 8 byte fields so the encoded size of a poll never
// changes over its lifetime; the store slot is allocated once, exactly.
type Poll struct {
	Version  uint8
	Creator  crypto.PublicKey
	PollID   uint64
	Question string
	Options  []string
	Votes    []uint64
	IsActive bool
	Nonce    uint8
}

// Size returns the exact serialized size of the poll record.
func (p *Poll) Size() int {
	size := 1 + crypto.PublicKeyLength + 8 + 1 + 1
	size += 2 + len(p.Question)
	size += 1
	for _, opt := range p.Options {
		size += 1 + len(opt)
	}
	size += 8 * len(p.Options)
	return size
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *Poll) MarshalBinary() ([]byte, error) {
	if len(p.Votes) != len(p.Options) {
		return nil, fmt.Errorf("%w: %d options, %d counters", ErrTallyMismatch, len(p.Options), len(p.Votes))
	}
	if len(p.Question) > maxUint16 {
		return nil, fmt.Errorf("%w: question of %d bytes", ErrFieldOverflow, len(p.Question))
	}
	if len(p.Options) > maxUint8 {
		return nil, fmt.Errorf("%w: %d options", ErrFieldOverflow, len(p.Options))
	}

	buf := make([]byte, 0, p.Size())
	buf = append(buf, p.Version)
	buf = append(buf, p.Creator.Bytes()...)
	buf = binary.LittleEndian.AppendUint64(buf, p.PollID)
	buf = append(buf, p.Nonce)
	buf = append(buf, encodeBool(p.IsActive))

	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(p.Question)))
	buf = append(buf, p.Question...)

	buf = append(buf, uint8(len(p.Options)))
	for _, opt := range p.Options {
		if len(opt) > maxUint8 {
			return nil, fmt.Errorf("%w: option of %d bytes", ErrFieldOverflow, len(opt))
		}
		buf = append(buf, uint8(len(opt)))
		buf = append(buf, opt...)
	}

	for _, count := range p.Votes {
		buf = binary.LittleEndian.AppendUint64(buf, count)
	}

	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Poll) UnmarshalBinary(data []byte) error {
	r := reader{data: data}

	version, err := r.uint8()
	if err != nil {
		return err
	}
	if version != RecordVersion {
		return fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}
	p.Version = version

	creator, err := r.bytes(crypto.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(p.Creator[:], creator)

	if p.PollID, err = r.uint64(); err != nil {
		return err
	}
	if p.Nonce, err = r.uint8(); err != nil {
		return err
	}

	active, err := r.uint8()
	if err != nil {
		return err
	}
	p.IsActive = active != 0

	qlen, err := r.uint16()
	if err != nil {
		return err
	}
	question, err := r.bytes(int(qlen))
	if err != nil {
		return err
	}
	p.Question = string(question)

	count, err := r.uint8()
	if err != nil {
		return err
	}
	p.Options = make([]string, count)
	for i := range p.Options {
		olen, err := r.uint8()
		if err != nil {
			return err
		}
		opt, err := r.bytes(int(olen))
		if err != nil {
			return err
		}
		p.Options[i] = string(opt)
	}

	p.Votes = make([]uint64, count)
	for i := range p.Votes {
		if p.Votes[i], err = r.uint64(); err != nil {
			return err
		}
	}

	return r.done()
}

// TotalVotes sums the per-option counters.
func (p *Poll) TotalVotes() uint64 {
	var total uint64
	for _, count := range p.Votes {
		total += count
	}
	return total
}

func encodeBool(b bool) byte {
	if b {
		return 1
	}
	return 0
}
