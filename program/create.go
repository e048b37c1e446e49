package program

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/MuhKar1/Voting-dApp/crypto"
	"github.com/MuhKar1/Voting-dApp/log"
	"github.com/MuhKar1/Voting-dApp/store"
	"github.com/MuhKar1/Voting-dApp/types"
)

// CreatePollParams carries the caller's arguments plus the poll address the
// caller computed itself; the program re-derives and compares.
type CreatePollParams struct {
	PollID      uint64
	Question    string
	Options     []string
	PollAddress crypto.Address
}

// CreatePoll creates a new active poll record owned by the program with
// creator as its authority. The record is sized exactly to the question and
// options as given and all counters start at zero.
//
// Duplicate option text is accepted; de-duplication is a client concern.
func (p *Program) CreatePoll(creator crypto.PublicKey, params CreatePollParams) (*types.Poll, error) {
	if len(params.Options) < types.MinOptions {
		return nil, ErrNotEnoughOptions
	}
	if len(params.Options) > types.MaxOptions {
		return nil, ErrTooManyOptions
	}
	if len(params.Question) > types.MaxQuestionLen {
		return nil, ErrQuestionTooLong
	}
	for _, opt := range params.Options {
		if len(opt) > types.MaxOptionLen {
			return nil, ErrOptionTooLong
		}
		if strings.TrimSpace(opt) == "" {
			return nil, ErrEmptyOption
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	expected, nonce, err := crypto.DeriveAddress(p.id, types.PollSeeds(creator, params.PollID)...)
	if err != nil {
		return nil, err
	}
	if expected != params.PollAddress {
		return nil, ErrAddressMismatch
	}

	poll := &types.Poll{
		Version:  types.RecordVersion,
		Creator:  creator,
		PollID:   params.PollID,
		Question: params.Question,
		Options:  append([]string(nil), params.Options...),
		Votes:    make([]uint64, len(params.Options)),
		IsActive: true,
		Nonce:    nonce,
	}
	data, err := poll.MarshalBinary()
	if err != nil {
		return nil, err
	}

	batch := p.store.NewBatch()
	batch.Create(expected, p.id, data)
	if err := batch.Write(); err != nil {
		if errors.Is(err, store.ErrRecordExists) {
			return nil, ErrPollExists
		}
		return nil, err
	}

	log.Debug("poll created",
		zap.String("poll", expected.Hex()),
		zap.String("creator", creator.Hex()),
		zap.Uint64("pollID", params.PollID),
		zap.Int("options", len(poll.Options)))

	p.pollCreatedFeed.Send(PollCreatedEvent{
		Poll:        expected,
		Creator:     creator,
		PollID:      params.PollID,
		OptionCount: uint8(len(poll.Options)),
		Time:        p.timestamp(),
	})

	return poll, nil
}
