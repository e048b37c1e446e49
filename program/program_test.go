package program

import (
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhKar1/Voting-dApp/crypto"
	"github.com/MuhKar1/Voting-dApp/database"
	"github.com/MuhKar1/Voting-dApp/store"
	"github.com/MuhKar1/Voting-dApp/types"
)

var testProgramID = crypto.Address{0x11, 0x22}

func newTestProgram(t *testing.T) (*Program, store.RecordStore) {
	t.Helper()
	st := store.NewCache(store.NewDatabase(database.NewMemoryDatabase()), 64)
	p := New(testProgramID, st, WithClock(func() time.Time { return time.Unix(1700000000, 0) }))
	t.Cleanup(p.Stop)
	return p, st
}

func newIdentity(t *testing.T) crypto.PublicKey {
	t.Helper()
	pub, _, err := crypto.GenerateKey()
	require.NoError(t, err)
	return pub
}

func pollAddress(t *testing.T, p *Program, creator crypto.PublicKey, pollID uint64) crypto.Address {
	t.Helper()
	addr, _, err := crypto.DeriveAddress(p.ID(), types.PollSeeds(creator, pollID)...)
	require.NoError(t, err)
	return addr
}

func receiptAddress(t *testing.T, p *Program, poll crypto.Address, voter crypto.PublicKey) crypto.Address {
	t.Helper()
	addr, _, err := crypto.DeriveAddress(p.ID(), types.ReceiptSeeds(poll, voter)...)
	require.NoError(t, err)
	return addr
}

func createTestPoll(t *testing.T, p *Program, creator crypto.PublicKey, pollID uint64, options ...string) crypto.Address {
	t.Helper()
	if len(options) == 0 {
		options = []string{"Red", "Blue", "Green"}
	}
	addr := pollAddress(t, p, creator, pollID)
	_, err := p.CreatePoll(creator, CreatePollParams{
		PollID:      pollID,
		Question:    "favorite color?",
		Options:     options,
		PollAddress: addr,
	})
	require.NoError(t, err)
	return addr
}

func castVote(t *testing.T, p *Program, poll crypto.Address, creator, voter crypto.PublicKey, index uint8) error {
	t.Helper()
	_, err := p.Vote(voter, VoteParams{
		PollAddress:    poll,
		ReceiptAddress: receiptAddress(t, p, poll, voter),
		Creator:        creator,
		OptionIndex:    index,
	})
	return err
}

func TestCreatePollInitializesRecord(t *testing.T) {
	p, _ := newTestProgram(t)
	creator := newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)

	poll, err := p.Poll(addr)
	require.NoError(t, err)
	assert.Equal(t, creator, poll.Creator)
	assert.Equal(t, uint64(1), poll.PollID)
	assert.Equal(t, []string{"Red", "Blue", "Green"}, poll.Options)
	assert.Equal(t, []uint64{0, 0, 0}, poll.Votes)
	assert.True(t, poll.IsActive)
	assert.Len(t, poll.Votes, len(poll.Options))
}

func TestCreatePollInputValidation(t *testing.T) {
	p, _ := newTestProgram(t)
	creator := newIdentity(t)

	tests := []struct {
		name     string
		question string
		options  []string
		want     error
	}{
		{"one option", "q", []string{"only"}, ErrNotEnoughOptions},
		{"eleven options", "q", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}, ErrTooManyOptions},
		{"long question", strings.Repeat("q", types.MaxQuestionLen+1), []string{"a", "b"}, ErrQuestionTooLong},
		{"long option", "q", []string{"a", strings.Repeat("o", types.MaxOptionLen+1)}, ErrOptionTooLong},
		{"empty option", "q", []string{"a", ""}, ErrEmptyOption},
		{"whitespace option", "q", []string{"a", "   "}, ErrEmptyOption},
		// count limits outrank the other checks
		{"one long option", strings.Repeat("q", types.MaxQuestionLen+1), []string{"only"}, ErrNotEnoughOptions},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			addr := pollAddress(t, p, creator, 99)
			_, err := p.CreatePoll(creator, CreatePollParams{
				PollID:      99,
				Question:    tc.question,
				Options:     tc.options,
				PollAddress: addr,
			})
			assert.ErrorIs(t, err, tc.want)

			_, err = p.Poll(addr)
			assert.ErrorIs(t, err, ErrPollNotFound, "rejected create must not leave a record")
		})
	}
}

func TestCreatePollRejectsMismatchedAddress(t *testing.T) {
	p, _ := newTestProgram(t)
	creator := newIdentity(t)

	_, err := p.CreatePoll(creator, CreatePollParams{
		PollID:      1,
		Question:    "q",
		Options:     []string{"a", "b"},
		PollAddress: crypto.Address{0xff},
	})
	assert.ErrorIs(t, err, ErrAddressMismatch)
}

func TestCreatePollRejectsOccupiedAddress(t *testing.T) {
	p, _ := newTestProgram(t)
	creator := newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)

	_, err := p.CreatePoll(creator, CreatePollParams{
		PollID:      1,
		Question:    "favorite color?",
		Options:     []string{"Red", "Blue", "Green"},
		PollAddress: addr,
	})
	assert.ErrorIs(t, err, ErrPollExists)
}

func TestCreatePollAcceptsDuplicateOptions(t *testing.T) {
	// duplicate option text is deliberately tolerated here; clients are
	// expected to de-duplicate before submitting
	p, _ := newTestProgram(t)
	creator := newIdentity(t)

	addr := createTestPoll(t, p, creator, 1, "Yes", "Yes")

	poll, err := p.Poll(addr)
	require.NoError(t, err)
	assert.Equal(t, []string{"Yes", "Yes"}, poll.Options)
}

func TestVoteIncrementsSingleCounter(t *testing.T) {
	p, _ := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)
	require.NoError(t, castVote(t, p, addr, creator, voter, 0))

	poll, err := p.Poll(addr)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 0, 0}, poll.Votes)

	receipt, err := p.Receipt(receiptAddress(t, p, addr, voter))
	require.NoError(t, err)
	assert.Equal(t, voter, receipt.Voter)
	assert.Equal(t, addr, receipt.Poll)
	assert.Equal(t, uint8(0), receipt.OptionIndex)
}

func TestVoteTwiceIsRejected(t *testing.T) {
	p, _ := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)
	require.NoError(t, castVote(t, p, addr, creator, voter, 0))

	for _, index := range []uint8{0, 1, 2} {
		assert.ErrorIs(t, castVote(t, p, addr, creator, voter, index), ErrAlreadyVoted)
	}

	poll, err := p.Poll(addr)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 0, 0}, poll.Votes)
}

func TestVoteInvalidIndexIsRejected(t *testing.T) {
	p, _ := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)
	assert.ErrorIs(t, castVote(t, p, addr, creator, voter, 3), ErrInvalidOption)

	poll, err := p.Poll(addr)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 0, 0}, poll.Votes)

	voted, err := p.HasReceipt(receiptAddress(t, p, addr, voter))
	require.NoError(t, err)
	assert.False(t, voted)
}

func TestVoteOnMissingPoll(t *testing.T) {
	p, _ := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	err := castVote(t, p, crypto.Address{0xab}, creator, voter, 0)
	assert.ErrorIs(t, err, ErrPollNotFound)
}

func TestVoteChecksCreatorWiring(t *testing.T) {
	p, _ := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)
	err := castVote(t, p, addr, newIdentity(t), voter, 0)
	assert.ErrorIs(t, err, ErrAddressMismatch)
}

func TestVoteChecksReceiptAddress(t *testing.T) {
	p, _ := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)
	_, err := p.Vote(voter, VoteParams{
		PollAddress:    addr,
		ReceiptAddress: crypto.Address{0xff},
		Creator:        creator,
		OptionIndex:    0,
	})
	assert.ErrorIs(t, err, ErrAddressMismatch)
}

func TestCreatorMayVote(t *testing.T) {
	p, _ := newTestProgram(t)
	creator := newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)
	require.NoError(t, castVote(t, p, addr, creator, creator, 2))

	poll, err := p.Poll(addr)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 0, 1}, poll.Votes)
}

func TestVoteOverflowIsRejected(t *testing.T) {
	p, st := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)

	// force the counter to the top of its range
	poll, err := p.Poll(addr)
	require.NoError(t, err)
	poll.Votes[0] = math.MaxUint64
	data, err := poll.MarshalBinary()
	require.NoError(t, err)
	batch := st.NewBatch()
	batch.Update(addr, p.ID(), data)
	require.NoError(t, batch.Write())

	assert.ErrorIs(t, castVote(t, p, addr, creator, voter, 0), ErrVoteOverflow)

	voted, err := p.HasReceipt(receiptAddress(t, p, addr, voter))
	require.NoError(t, err)
	assert.False(t, voted, "rejected vote must not leave a receipt")
}

func TestClosePollAuthorization(t *testing.T) {
	p, _ := newTestProgram(t)
	creator := newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)

	err := p.ClosePoll(newIdentity(t), ClosePollParams{PollAddress: addr})
	assert.ErrorIs(t, err, ErrUnauthorized)

	poll, err := p.Poll(addr)
	require.NoError(t, err)
	assert.True(t, poll.IsActive)
}

func TestClosePollIsIdempotent(t *testing.T) {
	p, _ := newTestProgram(t)
	creator := newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)

	closedCh := make(chan PollClosedEvent, 4)
	sub := p.SubscribePollClosed(closedCh)
	defer sub.Unsubscribe()

	require.NoError(t, p.ClosePoll(creator, ClosePollParams{PollAddress: addr}))
	require.NoError(t, p.ClosePoll(creator, ClosePollParams{PollAddress: addr}))

	poll, err := p.Poll(addr)
	require.NoError(t, err)
	assert.False(t, poll.IsActive)

	// only the transition emits; the trivial re-close does not
	assert.Len(t, closedCh, 1)
}

func TestVoteAfterCloseIsRejected(t *testing.T) {
	p, _ := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)
	require.NoError(t, p.ClosePoll(creator, ClosePollParams{PollAddress: addr}))

	assert.ErrorIs(t, castVote(t, p, addr, creator, voter, 0), ErrPollClosed)
}

func TestCloseMissingPoll(t *testing.T) {
	p, _ := newTestProgram(t)

	err := p.ClosePoll(newIdentity(t), ClosePollParams{PollAddress: crypto.Address{0xcd}})
	assert.ErrorIs(t, err, ErrPollNotFound)
}

// Full lifecycle walk: create, vote, revote, close, vote after close.
func TestPollLifecycle(t *testing.T) {
	p, _ := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	addr := createTestPoll(t, p, creator, 7)
	poll, err := p.Poll(addr)
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 0, 0}, poll.Votes)
	require.True(t, poll.IsActive)

	require.NoError(t, castVote(t, p, addr, creator, voter, 0))
	poll, err = p.Poll(addr)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 0, 0}, poll.Votes)

	require.ErrorIs(t, castVote(t, p, addr, creator, voter, 1), ErrAlreadyVoted)
	poll, err = p.Poll(addr)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 0, 0}, poll.Votes)

	require.NoError(t, p.ClosePoll(creator, ClosePollParams{PollAddress: addr}))
	poll, err = p.Poll(addr)
	require.NoError(t, err)
	require.False(t, poll.IsActive)

	other := newIdentity(t)
	require.ErrorIs(t, castVote(t, p, addr, creator, other, 2), ErrPollClosed)
	poll, err = p.Poll(addr)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 0, 0}, poll.Votes)
}

// The tally equals the number of distinct voters whose vote committed,
// retries included.
func TestTallyCountsDistinctVoters(t *testing.T) {
	p, _ := newTestProgram(t)
	creator := newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)

	const voters = 8
	var accepted uint64
	for i := 0; i < voters; i++ {
		voter := newIdentity(t)
		require.NoError(t, castVote(t, p, addr, creator, voter, uint8(i%3)))
		accepted++

		// a retry never double-counts
		assert.ErrorIs(t, castVote(t, p, addr, creator, voter, uint8(i%3)), ErrAlreadyVoted)
	}

	poll, err := p.Poll(addr)
	require.NoError(t, err)
	assert.Equal(t, accepted, poll.TotalVotes())
}

func TestConcurrentSameVoterSingleWinner(t *testing.T) {
	p, _ := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	addr := createTestPoll(t, p, creator, 1)
	receipt := receiptAddress(t, p, addr, voter)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(index uint8) {
			defer wg.Done()
			_, err := p.Vote(voter, VoteParams{
				PollAddress:    addr,
				ReceiptAddress: receipt,
				Creator:        creator,
				OptionIndex:    index,
			})
			errs <- err
		}(uint8(i % 3))
	}
	wg.Wait()
	close(errs)

	var wins int
	for err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyVoted)
		}
	}
	assert.Equal(t, 1, wins)

	poll, err := p.Poll(addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), poll.TotalVotes())
}

func TestEventsCarryOperationDetails(t *testing.T) {
	p, _ := newTestProgram(t)
	creator, voter := newIdentity(t), newIdentity(t)

	createdCh := make(chan PollCreatedEvent, 1)
	votedCh := make(chan VotedEvent, 1)
	closedCh := make(chan PollClosedEvent, 1)
	subs := []interface{ Unsubscribe() }{
		p.SubscribePollCreated(createdCh),
		p.SubscribeVoted(votedCh),
		p.SubscribePollClosed(closedCh),
	}
	defer func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}()

	addr := createTestPoll(t, p, creator, 3)
	require.NoError(t, castVote(t, p, addr, creator, voter, 1))
	require.NoError(t, p.ClosePoll(creator, ClosePollParams{PollAddress: addr}))

	created := <-createdCh
	assert.Equal(t, addr, created.Poll)
	assert.Equal(t, creator, created.Creator)
	assert.Equal(t, uint64(3), created.PollID)
	assert.Equal(t, uint8(3), created.OptionCount)
	assert.Equal(t, int64(1700000000), created.Time)

	voted := <-votedCh
	assert.Equal(t, addr, voted.Poll)
	assert.Equal(t, voter, voted.Voter)
	assert.Equal(t, uint8(1), voted.OptionIndex)

	closed := <-closedCh
	assert.Equal(t, addr, closed.Poll)
	assert.Equal(t, creator, closed.Creator)
}
