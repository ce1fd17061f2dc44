package command

import (
	"context"
	"time"

	"github.com/vrlink-protocol/vrlink-go/pkg/device"
	"github.com/vrlink-protocol/vrlink-go/pkg/log"
)

// Result is the structured outcome of one successfully dispatched
// command. Reply holds the decoded peripheral reply (a pkg/wire struct)
// for commands that produce one.
type Result struct {
	// Kind is the dispatched command.
	Kind Kind

	// Args is the argument count (tokens after the command word).
	Args int

	// Reply is the decoded reply: wire.TrainReply, wire.LoadReply,
	// wire.SigTrainReply, wire.RecognizerState, wire.RecordStates or
	// wire.SignatureReply. Nil for clear and test.
	Reply any

	// Unsupported is set for commands the terminal accepts but the
	// peripheral does not implement (test).
	Unsupported bool
}

// Dispatcher turns assembled command lines into peripheral operations.
// It owns the per-cycle scratch state; a Result and the line passed to
// Dispatch are only valid until the next cycle. Not safe for concurrent
// use.
type Dispatcher struct {
	dev     device.Adapter
	records []uint8

	// Logging support (optional)
	logger    log.Logger
	sessionID string
}

// NewDispatcher creates a dispatcher bound to a peripheral adapter.
func NewDispatcher(dev device.Adapter) *Dispatcher {
	return &Dispatcher{
		dev:     dev,
		records: make([]uint8, 0, maxRecordArgs),
	}
}

// SetLogger configures protocol event logging for this dispatcher.
// Pass nil to disable logging.
func (d *Dispatcher) SetLogger(logger log.Logger, sessionID string) {
	d.logger = logger
	d.sessionID = sessionID
}

// Dispatch processes one assembled command line.
//
// A line with no tokens is ignored (nil, nil). Otherwise the error is
// one of ErrMalformedCommand, ErrUnknownCommand, ErrCommandFormat or a
// *device.DelegateError; all are terminal for this line only.
func (d *Dispatcher) Dispatch(ctx context.Context, line []byte) (*Result, error) {
	if err := validateLine(line); err != nil {
		d.logError("line charset rejected", err)
		return nil, err
	}

	paraNum := TokenCount(line)
	if paraNum == 0 {
		return nil, nil
	}

	tok, _ := NthToken(line, 1)
	kind, ok := lookupCommand(tok.Bytes(line))
	if !ok {
		d.logError("no vocabulary match", ErrUnknownCommand)
		return nil, ErrUnknownCommand
	}

	d.logCommand(kind, paraNum-1)

	res, err := d.handle(ctx, kind, line, paraNum)
	if err != nil {
		d.logError(kind.String(), err)
		return nil, err
	}
	return res, nil
}

// validateLine rejects lines containing bytes outside the printable
// range 0x20..0x7E plus tab, carriage return and newline.
func validateLine(line []byte) error {
	for _, b := range line {
		if b >= 0x20 && b <= 0x7E {
			continue
		}
		if b == '\t' || b == '\r' || b == '\n' {
			continue
		}
		return ErrMalformedCommand
	}
	return nil
}

func (d *Dispatcher) logCommand(kind Kind, args int) {
	if d.logger == nil {
		return
	}
	d.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: d.sessionID,
		Layer:     log.LayerCommand,
		Category:  log.CategoryCommand,
		Command: &log.CommandEvent{
			Name: kind.String(),
			Args: args,
		},
	})
}

func (d *Dispatcher) logReply(op string, size int) {
	if d.logger == nil {
		return
	}
	d.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: d.sessionID,
		Layer:     log.LayerDevice,
		Category:  log.CategoryReply,
		Device: &log.DeviceEvent{
			Op:        op,
			ReplySize: size,
		},
	})
}

func (d *Dispatcher) logError(where string, err error) {
	if d.logger == nil {
		return
	}
	d.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: d.sessionID,
		Layer:     log.LayerCommand,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Message: err.Error(),
			Context: where,
		},
	})
}
