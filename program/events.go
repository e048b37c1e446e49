package program

import "github.com/MuhKar1/Voting-dApp/crypto"

// PollCreatedEvent is posted when a poll record has been created.
type PollCreatedEvent struct {
	Poll        crypto.Address
	Creator     crypto.PublicKey
	PollID      uint64
	OptionCount uint8
	Time        int64
}

// VotedEvent is posted when a vote has been recorded.
type VotedEvent struct {
	Poll        crypto.Address
	Voter       crypto.PublicKey
	OptionIndex uint8
	Time        int64
}

// PollClosedEvent is posted when a poll stops accepting votes.
type PollClosedEvent struct {
	Poll    crypto.Address
	Creator crypto.PublicKey
	Time    int64
}
