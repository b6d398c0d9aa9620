package lifespan

import "errors"

var (
	// ErrInvalidArgument reports a malformed size or configuration value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange reports a grid lookup outside [0,w)x[0,h).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvariant reports internal state that should be impossible, such as a
	// transition still pending when a generation starts.
	ErrInvariant = errors.New("internal invariant violated")
)
