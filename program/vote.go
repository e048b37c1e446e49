package program

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/MuhKar1/Voting-dApp/crypto"
	"github.com/MuhKar1/Voting-dApp/log"
	"github.com/MuhKar1/Voting-dApp/store"
	"github.com/MuhKar1/Voting-dApp/types"
)

// VoteParams carries the voter's choice plus the addresses the caller
// computed itself. Creator is compared against the stored authority as a
// wiring consistency check only; creators vote like anyone else.
type VoteParams struct {
	PollAddress    crypto.Address
	ReceiptAddress crypto.Address
	Creator        crypto.PublicKey
	OptionIndex    uint8
}

// Vote records voter's choice on the poll: it creates the vote receipt at
// the derived (poll, voter) address and increments exactly one counter,
// atomically. The occupied receipt address is the double-vote guard.
func (p *Program) Vote(voter crypto.PublicKey, params VoteParams) (*types.VoteReceipt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	poll, err := p.Poll(params.PollAddress)
	if err != nil {
		return nil, err
	}

	if poll.Creator != params.Creator {
		return nil, ErrAddressMismatch
	}
	if !poll.IsActive {
		return nil, ErrPollClosed
	}
	if int(params.OptionIndex) >= len(poll.Options) {
		return nil, ErrInvalidOption
	}

	expected, nonce, err := crypto.DeriveAddress(p.id, types.ReceiptSeeds(params.PollAddress, voter)...)
	if err != nil {
		return nil, err
	}
	if expected != params.ReceiptAddress {
		return nil, ErrAddressMismatch
	}

	voted, err := p.store.Has(expected)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, ErrAlreadyVoted
	}

	idx := int(params.OptionIndex)
	if poll.Votes[idx] == math.MaxUint64 {
		return nil, ErrVoteOverflow
	}
	poll.Votes[idx]++

	receipt := &types.VoteReceipt{
		Version:     types.RecordVersion,
		Voter:       voter,
		Poll:        params.PollAddress,
		OptionIndex: params.OptionIndex,
		Nonce:       nonce,
	}
	receiptData, err := receipt.MarshalBinary()
	if err != nil {
		return nil, err
	}
	pollData, err := poll.MarshalBinary()
	if err != nil {
		return nil, err
	}

	batch := p.store.NewBatch()
	batch.Create(expected, p.id, receiptData)
	batch.Update(params.PollAddress, p.id, pollData)
	if err := batch.Write(); err != nil {
		if errors.Is(err, store.ErrRecordExists) {
			return nil, ErrAlreadyVoted
		}
		return nil, err
	}

	log.Debug("vote recorded",
		zap.String("poll", params.PollAddress.Hex()),
		zap.String("voter", voter.Hex()),
		zap.Uint8("optionIndex", params.OptionIndex))

	p.votedFeed.Send(VotedEvent{
		Poll:        params.PollAddress,
		Voter:       voter,
		OptionIndex: params.OptionIndex,
		Time:        p.timestamp(),
	})

	return receipt, nil
}
