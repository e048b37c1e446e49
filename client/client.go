// Package client is the wallet-side collaborator of the voting program. It
// computes the record addresses callers must supply, performs the input
// hygiene the program deliberately leaves to clients, and handles
// resubmission after ambiguous failures.
package client

import (
	"errors"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/MuhKar1/Voting-dApp/crypto"
	"github.com/MuhKar1/Voting-dApp/program"
	"github.com/MuhKar1/Voting-dApp/types"
)

// ErrDuplicateOption signals two options equal after trimming and case
// folding. The program accepts such polls; the client rejects them before
// submission.
var ErrDuplicateOption = errors.New("duplicate option text")

const (
	retryAttempts = 3
	retryDelay    = 50 * time.Millisecond
)

type Client struct {
	program *program.Program
}

func New(p *program.Program) *Client {
	return &Client{program: p}
}

// PollAddress computes the poll record address for (creator, pollID).
func (c *Client) PollAddress(creator crypto.PublicKey, pollID uint64) (crypto.Address, error) {
	addr, _, err := crypto.DeriveAddress(c.program.ID(), types.PollSeeds(creator, pollID)...)
	return addr, err
}

// ReceiptAddress computes the vote receipt address for (poll, voter).
func (c *Client) ReceiptAddress(poll crypto.Address, voter crypto.PublicKey) (crypto.Address, error) {
	addr, _, err := crypto.DeriveAddress(c.program.ID(), types.ReceiptSeeds(poll, voter)...)
	return addr, err
}

// CreatePoll derives the poll address and submits the creation.
func (c *Client) CreatePoll(creator crypto.PublicKey, pollID uint64, question string, options []string) (crypto.Address, *types.Poll, error) {
	if hasDuplicateOption(options) {
		return crypto.Address{}, nil, ErrDuplicateOption
	}

	addr, err := c.PollAddress(creator, pollID)
	if err != nil {
		return crypto.Address{}, nil, err
	}

	var poll *types.Poll
	err = c.submit(func() error {
		var err error
		poll, err = c.program.CreatePoll(creator, program.CreatePollParams{
			PollID:      pollID,
			Question:    question,
			Options:     options,
			PollAddress: addr,
		})
		return err
	})
	if err != nil {
		return crypto.Address{}, nil, err
	}
	return addr, poll, nil
}

// Vote derives the receipt address and submits the vote. A rejection with
// AlreadyVoted is resolved against the stored receipt: if it records this
// voter making this exact choice, an earlier submission committed and the
// vote reports success with the existing receipt.
func (c *Client) Vote(voter crypto.PublicKey, poll crypto.Address, optionIndex uint8) (*types.VoteReceipt, error) {
	stored, err := c.program.Poll(poll)
	if err != nil {
		return nil, err
	}

	receiptAddr, err := c.ReceiptAddress(poll, voter)
	if err != nil {
		return nil, err
	}

	var receipt *types.VoteReceipt
	err = c.submit(func() error {
		var err error
		receipt, err = c.program.Vote(voter, program.VoteParams{
			PollAddress:    poll,
			ReceiptAddress: receiptAddr,
			Creator:        stored.Creator,
			OptionIndex:    optionIndex,
		})
		return err
	})
	if errors.Is(err, program.ErrAlreadyVoted) {
		existing, readErr := c.program.Receipt(receiptAddr)
		if readErr == nil && existing.Voter == voter && existing.OptionIndex == optionIndex {
			return existing, nil
		}
		return nil, program.ErrAlreadyVoted
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// ClosePoll submits the close.
func (c *Client) ClosePoll(caller crypto.PublicKey, poll crypto.Address) error {
	return c.submit(func() error {
		return c.program.ClosePoll(caller, program.ClosePollParams{PollAddress: poll})
	})
}

// Results reads the poll's current state.
func (c *Client) Results(poll crypto.Address) (*types.Poll, error) {
	return c.program.Poll(poll)
}

// submit retries transient substrate failures. Program rejections are
// deterministic verdicts and resubmitting them cannot change the outcome.
func (c *Client) submit(op func() error) error {
	return retry.Do(op,
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
}

func isTransient(err error) bool {
	for _, verdict := range []error{
		program.ErrNotEnoughOptions,
		program.ErrTooManyOptions,
		program.ErrQuestionTooLong,
		program.ErrOptionTooLong,
		program.ErrEmptyOption,
		program.ErrPollClosed,
		program.ErrInvalidOption,
		program.ErrAlreadyVoted,
		program.ErrVoteOverflow,
		program.ErrUnauthorized,
		program.ErrAddressMismatch,
		program.ErrPollExists,
		program.ErrPollNotFound,
	} {
		if errors.Is(err, verdict) {
			return false
		}
	}
	return true
}

func hasDuplicateOption(options []string) bool {
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		normalized := strings.ToLower(strings.TrimSpace(opt))
		if _, ok := seen[normalized]; ok {
			return true
		}
		seen[normalized] = struct{}{}
	}
	return false
}
