package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vrlink-protocol/vrlink-go/pkg/device"
	"github.com/vrlink-protocol/vrlink-go/pkg/wire"
)

// maxRecordArgs is the most record arguments one command may carry, one
// per recognizer slot.
const maxRecordArgs = wire.RecognizerSlots

// MaxRecordID is the highest addressable record number.
const MaxRecordID = 254

// handle validates arity and argument values for one command kind and
// delegates to the peripheral. Validation order: arity, then argument
// values, then delegation.
func (d *Dispatcher) handle(ctx context.Context, kind Kind, line []byte, paraNum int) (*Result, error) {
	res := &Result{Kind: kind, Args: paraNum - 1}

	switch kind {
	case KindTrain:
		if paraNum < 2 || paraNum > 1+maxRecordArgs {
			return nil, ErrCommandFormat
		}
		if err := d.collectRecords(line, paraNum); err != nil {
			return nil, err
		}
		buf, err := d.dev.Train(ctx, d.records)
		if err != nil {
			return nil, &device.DelegateError{Op: "train", Err: err}
		}
		d.logReply("train", len(buf))
		reply, err := wire.DecodeTrain(buf)
		if err != nil {
			return nil, &device.DelegateError{Op: "train", Err: err}
		}
		res.Reply = reply

	case KindLoad:
		if paraNum < 2 || paraNum > 1+maxRecordArgs {
			return nil, ErrCommandFormat
		}
		if err := d.collectRecords(line, paraNum); err != nil {
			return nil, err
		}
		buf, err := d.dev.Load(ctx, d.records)
		if err != nil {
			return nil, &device.DelegateError{Op: "load", Err: err}
		}
		d.logReply("load", len(buf))
		reply, err := wire.DecodeLoad(buf)
		if err != nil {
			return nil, &device.DelegateError{Op: "load", Err: err}
		}
		res.Reply = reply

	case KindClear:
		if paraNum != 1 {
			return nil, ErrCommandFormat
		}
		if err := d.dev.Clear(ctx); err != nil {
			return nil, &device.DelegateError{Op: "clear", Err: err}
		}

	case KindCheckRecognizer:
		if paraNum != 1 {
			return nil, ErrCommandFormat
		}
		buf, err := d.dev.CheckRecognizer(ctx)
		if err != nil {
			return nil, &device.DelegateError{Op: "check recognizer", Err: err}
		}
		d.logReply("check recognizer", len(buf))
		reply, err := wire.DecodeRecognizerState(buf)
		if err != nil {
			return nil, &device.DelegateError{Op: "check recognizer", Err: err}
		}
		res.Reply = reply

	case KindCheckRecord:
		if paraNum > 1+maxRecordArgs {
			return nil, ErrCommandFormat
		}
		d.records = d.records[:0]
		if paraNum > 1 {
			if err := d.collectRecords(line, paraNum); err != nil {
				return nil, err
			}
		}
		// Duplicate record ids are the peripheral's concern, not ours.
		buf, err := d.dev.CheckRecord(ctx, d.records)
		if err != nil {
			return nil, &device.DelegateError{Op: "check record", Err: err}
		}
		d.logReply("check record", len(buf))
		reply, err := wire.DecodeRecordStates(buf)
		if err != nil {
			return nil, &device.DelegateError{Op: "check record", Err: err}
		}
		res.Reply = reply

	case KindSigTrain:
		if paraNum < 2 {
			return nil, ErrCommandFormat
		}
		tok, _ := NthToken(line, 2)
		id, ok := parseRecordID(tok.Bytes(line))
		if !ok {
			return nil, ErrCommandFormat
		}
		buf, err := d.dev.TrainWithSignature(ctx, id, signatureSpan(line, paraNum))
		if err != nil {
			return nil, &device.DelegateError{Op: "sigtrain", Err: err}
		}
		d.logReply("sigtrain", len(buf))
		reply, err := wire.DecodeSigTrain(buf)
		if err != nil {
			return nil, &device.DelegateError{Op: "sigtrain", Err: err}
		}
		res.Reply = reply

	case KindGetSig:
		if paraNum != 2 {
			return nil, ErrCommandFormat
		}
		tok, _ := NthToken(line, 2)
		id, ok := parseRecordID(tok.Bytes(line))
		if !ok {
			return nil, ErrCommandFormat
		}
		buf, err := d.dev.CheckSignature(ctx, id)
		if err != nil {
			return nil, &device.DelegateError{Op: "getsig", Err: err}
		}
		d.logReply("getsig", len(buf))
		res.Reply = wire.DecodeSignature(buf)

	case KindTest:
		res.Unsupported = true

	default:
		return nil, ErrUnknownCommand
	}

	return res, nil
}

// collectRecords parses tokens 2..paraNum into the dispatcher's record
// scratch list. Any token failing record-id validation yields
// ErrCommandFormat.
func (d *Dispatcher) collectRecords(line []byte, paraNum int) error {
	d.records = d.records[:0]
	for i := 2; i <= paraNum; i++ {
		tok, ok := NthToken(line, i)
		if !ok {
			return ErrCommandFormat
		}
		id, ok := parseRecordID(tok.Bytes(line))
		if !ok {
			return fmt.Errorf("%w: bad record id %q", ErrCommandFormat, tok.Bytes(line))
		}
		d.records = append(d.records, id)
	}
	return nil
}

// parseRecordID decimal-parses a record id token. A parsed zero whose
// token does not start with '0' is rejected; this separates a genuine
// "0" from garbage that happens to parse as zero.
func parseRecordID(tok []byte) (uint8, bool) {
	v, err := strconv.Atoi(string(tok))
	if err != nil || v < 0 || v > MaxRecordID {
		return 0, false
	}
	if v == 0 && tok[0] != '0' {
		return 0, false
	}
	return uint8(v), true
}

// signatureSpan returns the raw bytes from the start of token 3 through
// the end of the last token, intervening whitespace included. Nil when
// the command carries no signature tokens.
func signatureSpan(line []byte, paraNum int) []byte {
	if paraNum < 3 {
		return nil
	}
	first, ok := NthToken(line, 3)
	if !ok {
		return nil
	}
	last, ok := NthToken(line, paraNum)
	if !ok {
		return nil
	}
	return line[first.Off : last.Off+last.Len]
}
