// Package program implements the deterministic transition engine of the
// voting program: the create, vote and close operations, their validation
// and authorization rules, and the events they emit. Every operation is an
// atomic transaction against the record store; rejected operations are
// strict no-ops.
package program

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/event"

	"github.com/MuhKar1/Voting-dApp/crypto"
	"github.com/MuhKar1/Voting-dApp/store"
	"github.com/MuhKar1/Voting-dApp/types"
)

// Program owns every poll and vote receipt record. Caller identities are
// data fields of the records, never storage owners; only the program itself
// decides the validity of a mutation.
type Program struct {
	id    crypto.Address
	store store.RecordStore
	clock func() time.Time

	// mu gives operations the single global transaction order the record
	// store's external concurrency control would provide on chain.
	mu sync.Mutex

	scope           event.SubscriptionScope
	pollCreatedFeed event.Feed
	votedFeed       event.Feed
	pollClosedFeed  event.Feed
}

// Option configures a Program.
type Option func(*Program)

// WithClock overrides the event timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(p *Program) { p.clock = clock }
}

// New returns a program with the given identity running against st.
func New(id crypto.Address, st store.RecordStore, opts ...Option) *Program {
	p := &Program{
		id:    id,
		store: st,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the program identity records are derived against.
func (p *Program) ID() crypto.Address { return p.id }

// Stop terminates all event subscriptions.
func (p *Program) Stop() {
	p.scope.Close()
}

// SubscribePollCreated starts delivering PollCreatedEvent to the channel.
func (p *Program) SubscribePollCreated(ch chan<- PollCreatedEvent) event.Subscription {
	return p.scope.Track(p.pollCreatedFeed.Subscribe(ch))
}

// SubscribeVoted starts delivering VotedEvent to the channel.
func (p *Program) SubscribeVoted(ch chan<- VotedEvent) event.Subscription {
	return p.scope.Track(p.votedFeed.Subscribe(ch))
}

// SubscribePollClosed starts delivering PollClosedEvent to the channel.
func (p *Program) SubscribePollClosed(ch chan<- PollClosedEvent) event.Subscription {
	return p.scope.Track(p.pollClosedFeed.Subscribe(ch))
}

// Poll reads and decodes the poll record at addr.
func (p *Program) Poll(addr crypto.Address) (*types.Poll, error) {
	rec, err := p.store.Get(addr)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ErrPollNotFound
		}
		return nil, err
	}

	var poll types.Poll
	if err := poll.UnmarshalBinary(rec.Data); err != nil {
		return nil, fmt.Errorf("decode poll %s: %w", addr, err)
	}
	return &poll, nil
}

// Receipt reads and decodes the vote receipt record at addr.
func (p *Program) Receipt(addr crypto.Address) (*types.VoteReceipt, error) {
	rec, err := p.store.Get(addr)
	if err != nil {
		return nil, err
	}

	var receipt types.VoteReceipt
	if err := receipt.UnmarshalBinary(rec.Data); err != nil {
		return nil, fmt.Errorf("decode vote receipt %s: %w", addr, err)
	}
	return &receipt, nil
}

// HasReceipt reports whether a vote receipt exists at addr.
func (p *Program) HasReceipt(addr crypto.Address) (bool, error) {
	return p.store.Has(addr)
}

func (p *Program) timestamp() int64 {
	return p.clock().Unix()
}
