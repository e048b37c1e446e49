package program

import (
	"go.uber.org/zap"

	"github.com/MuhKar1/Voting-dApp/crypto"
	"github.com/MuhKar1/Voting-dApp/log"
)

// ClosePollParams names the poll record to close.
type ClosePollParams struct {
	PollAddress crypto.Address
}

// ClosePoll stops the poll from accepting further votes. Only the stored
// creator may close. Closing is one-way and idempotent: re-closing an
// already-closed poll succeeds and changes nothing.
func (p *Program) ClosePoll(caller crypto.PublicKey, params ClosePollParams) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	poll, err := p.Poll(params.PollAddress)
	if err != nil {
		return err
	}

	if poll.Creator != caller {
		return ErrUnauthorized
	}

	if !poll.IsActive {
		return nil
	}

	poll.IsActive = false
	data, err := poll.MarshalBinary()
	if err != nil {
		return err
	}

	batch := p.store.NewBatch()
	batch.Update(params.PollAddress, p.id, data)
	if err := batch.Write(); err != nil {
		return err
	}

	log.Debug("poll closed",
		zap.String("poll", params.PollAddress.Hex()),
		zap.String("creator", caller.Hex()))

	p.pollClosedFeed.Send(PollClosedEvent{
		Poll:    params.PollAddress,
		Creator: caller,
		Time:    p.timestamp(),
	})

	return nil
}
