package types

import "errors"

var (
	// ErrUnknownVersion signals a record encoded under an unknown layout version.
	ErrUnknownVersion = errors.New("unknown record layout version")

	// ErrCorruptRecord signals a record that is shorter or longer than its layout.
	ErrCorruptRecord = errors.New("corrupt record encoding")

	// ErrTallyMismatch signals a poll whose counter sequence diverged from its options.
	ErrTallyMismatch = errors.New("vote counters do not match options")

	// ErrFieldOverflow signals a field too large for its layout width.
	ErrFieldOverflow = errors.New("field exceeds layout width")
)
