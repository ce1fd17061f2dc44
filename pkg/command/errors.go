package command

import "errors"

// Dispatch classification errors. Each is terminal for the current line;
// the operator must resend. None is fatal to the control loop.
var (
	// ErrMalformedCommand indicates an illegal byte in the line or a
	// line abandoned on overflow.
	ErrMalformedCommand = errors.New("malformed command")

	// ErrUnknownCommand indicates the first token matched no vocabulary
	// entry.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrCommandFormat indicates a known command with wrong arity or an
	// argument that failed value validation.
	ErrCommandFormat = errors.New("command format error")
)
