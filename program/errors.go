package program

import "errors"

// Every rejected operation surfaces exactly one of these and leaves the
// record store untouched.
var (
	// ErrNotEnoughOptions signals a poll with fewer than two options.
	ErrNotEnoughOptions = errors.New("not enough options provided (minimum 2)")

	// ErrTooManyOptions signals a poll with more than the supported options.
	ErrTooManyOptions = errors.New("too many options provided")

	// ErrQuestionTooLong signals a question above the length limit.
	ErrQuestionTooLong = errors.New("question string too long")

	// ErrOptionTooLong signals an option above the length limit.
	ErrOptionTooLong = errors.New("option string too long")

	// ErrEmptyOption signals an option that is empty after trimming.
	ErrEmptyOption = errors.New("empty option is not allowed")

	// ErrPollClosed signals a vote on a poll that no longer accepts votes.
	ErrPollClosed = errors.New("poll is already closed")

	// ErrInvalidOption signals a vote for an option index that does not exist.
	ErrInvalidOption = errors.New("invalid option index")

	// ErrAlreadyVoted signals a voter's second vote on the same poll.
	ErrAlreadyVoted = errors.New("voter has already voted on this poll")

	// ErrVoteOverflow signals a counter at the top of its range.
	ErrVoteOverflow = errors.New("vote count overflow")

	// ErrUnauthorized signals a close attempt by anyone but the creator.
	ErrUnauthorized = errors.New("only the poll creator can close this poll")

	// ErrAddressMismatch signals a caller-supplied address that does not
	// match the re-derived one; an integrity guard against mis-wired calls.
	ErrAddressMismatch = errors.New("supplied address does not match derived address")

	// ErrPollExists signals a create at an address that already holds a poll.
	ErrPollExists = errors.New("poll already exists")

	// ErrPollNotFound signals an operation against a missing poll record.
	ErrPollNotFound = errors.New("poll not found")
)
