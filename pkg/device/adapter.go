// Package device defines the interface to the voice-recognition
// peripheral consumed by the command handlers.
//
// Implementations drive the actual peripheral (or a simulation of it)
// and return the raw reply buffers decoded by pkg/wire. Operations block
// until the peripheral answers; callers pass a context to bound that.
package device

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoEvent is returned by Recognize when no recognition event is
// pending. It is a poll result, not a failure.
var ErrNoEvent = errors.New("no recognition event")

// Adapter is the set of peripheral operations invoked by command
// handlers. Reply buffers follow the fixed layouts decoded by pkg/wire;
// each buffer is only valid until the next operation.
type Adapter interface {
	// Train trains the given records. Reply: train layout.
	Train(ctx context.Context, records []uint8) ([]byte, error)

	// Load loads trained records into the recognizer. Reply: load layout.
	Load(ctx context.Context, records []uint8) ([]byte, error)

	// Clear empties the recognizer.
	Clear(ctx context.Context) error

	// CheckRecognizer queries recognizer state. Reply: check-recognizer layout.
	CheckRecognizer(ctx context.Context) ([]byte, error)

	// CheckRecord queries training state of the given records, or of all
	// records when records is empty. Reply: check-record layout.
	CheckRecord(ctx context.Context, records []uint8) ([]byte, error)

	// CheckSignature queries the signature of one record. Reply: raw
	// signature bytes, empty meaning not set.
	CheckSignature(ctx context.Context, record uint8) ([]byte, error)

	// TrainWithSignature trains one record and attaches a signature.
	// The signature may be empty. Reply: sigtrain layout.
	TrainWithSignature(ctx context.Context, record uint8, sig []byte) ([]byte, error)

	// Recognize polls for an unsolicited recognition event. Returns
	// ErrNoEvent when nothing is pending. Reply: recognize layout.
	Recognize(ctx context.Context) ([]byte, error)
}

// DelegateError wraps a failed peripheral operation. The command loop
// reports it and continues; it is never fatal.
type DelegateError struct {
	// Op is the peripheral operation that failed, e.g. "train".
	Op string

	// Err is the underlying error.
	Err error
}

// Error returns the formatted error message.
func (e *DelegateError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *DelegateError) Unwrap() error {
	return e.Err
}
