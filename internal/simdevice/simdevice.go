// Package simdevice provides a simulated voice-recognition peripheral
// for testing and for running the terminal without hardware.
//
// The simulator keeps records, recognizer slots, signatures and group
// mode in memory and encodes its replies in the peripheral's fixed
// binary layouts, so the pkg/wire decoders are exercised end to end.
package simdevice

import (
	"context"
	"fmt"
	"sync"

	"github.com/vrlink-protocol/vrlink-go/pkg/device"
	"github.com/vrlink-protocol/vrlink-go/pkg/wire"
)

// MaxSignatureLen is the longest signature the simulated peripheral
// stores. Longer signatures are truncated and reported as such.
const MaxSignatureLen = 26

// recordSlots is the number of addressable records.
const recordSlots = 255

// Device is a simulated peripheral implementing device.Adapter.
// Safe for concurrent use.
type Device struct {
	mu         sync.Mutex
	trained    [recordSlots]bool
	signatures [recordSlots][]byte
	recognizer []uint8
	groupTag   byte
	pending    [][]byte

	// TimeoutRecords lists record ids whose training reports a voice
	// input timeout. Test hook; nil means all training succeeds.
	TimeoutRecords map[uint8]bool
}

// New creates a simulated peripheral with no trained records and group
// mode disabled.
func New() *Device {
	return &Device{groupTag: 0xFF}
}

// Train trains the given records.
func (d *Device) Train(_ context.Context, records []uint8) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf := []byte{byte(len(records))}
	for _, r := range records {
		status := wire.TrainSuccess
		switch {
		case int(r) >= recordSlots:
			status = wire.TrainOutOfRange
		case d.TimeoutRecords[r]:
			status = wire.TrainTimeout
		default:
			d.trained[r] = true
		}
		buf = append(buf, r, byte(status))
	}
	return buf, nil
}

// Load loads trained records into the recognizer.
func (d *Device) Load(_ context.Context, records []uint8) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf := []byte{byte(len(records))}
	for _, r := range records {
		buf = append(buf, r, byte(d.loadOne(r)))
	}
	return buf, nil
}

func (d *Device) loadOne(r uint8) wire.LoadStatus {
	if int(r) >= recordSlots {
		return wire.LoadOutOfRange
	}
	if !d.trained[r] {
		return wire.LoadUntrained
	}
	for _, loaded := range d.recognizer {
		if loaded == r {
			return wire.LoadAlreadyPresent
		}
	}
	if len(d.recognizer) >= wire.RecognizerSlots {
		return wire.LoadRecognizerFull
	}
	d.recognizer = append(d.recognizer, r)
	return wire.LoadSuccess
}

// Clear empties the recognizer.
func (d *Device) Clear(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recognizer = nil
	return nil
}

// CheckRecognizer reports recognizer state in the check-recognizer layout.
func (d *Device) CheckRecognizer(context.Context) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf := make([]byte, 11)
	buf[0] = byte(len(d.recognizer))
	var mask byte
	for i := 0; i < wire.RecognizerSlots; i++ {
		if i < len(d.recognizer) {
			buf[1+i] = d.recognizer[i]
			mask |= 1 << uint(i)
		} else {
			buf[1+i] = wire.UnsetSlot
		}
	}
	buf[8] = byte(d.trainedCount())
	buf[9] = mask
	buf[10] = d.groupTag
	return buf, nil
}

func (d *Device) trainedCount() int {
	n := 0
	for _, t := range d.trained {
		if t {
			n++
		}
	}
	return n
}

// CheckRecord reports training state of the given records, or of all
// trained records when records is empty. Duplicate ids are deduped here;
// that is the peripheral's responsibility, not the parser's.
func (d *Device) CheckRecord(_ context.Context, records []uint8) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(records) == 0 {
		buf := []byte{0}
		n := 0
		for r := 0; r < recordSlots; r++ {
			if d.trained[r] {
				buf = append(buf, byte(r), byte(wire.RecordTrained))
				n++
			}
		}
		buf[0] = byte(n)
		return buf, nil
	}

	seen := make(map[uint8]bool, len(records))
	buf := []byte{0}
	n := 0
	for _, r := range records {
		if seen[r] {
			continue
		}
		seen[r] = true
		state := wire.RecordUntrained
		switch {
		case int(r) >= recordSlots:
			state = wire.RecordOutOfRange
		case d.trained[r]:
			state = wire.RecordTrained
		}
		buf = append(buf, r, byte(state))
		n++
	}
	buf[0] = byte(n)
	return buf, nil
}

// CheckSignature returns the record's signature bytes, empty when unset.
func (d *Device) CheckSignature(_ context.Context, record uint8) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if int(record) >= recordSlots {
		return nil, fmt.Errorf("record %d out of range", record)
	}
	return append([]byte(nil), d.signatures[record]...), nil
}

// TrainWithSignature trains one record and attaches a signature.
func (d *Device) TrainWithSignature(_ context.Context, record uint8, sig []byte) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := wire.SigTrainSuccess
	switch {
	case int(record) >= recordSlots:
		status = wire.SigTrainOutOfRange
	case d.TimeoutRecords[record]:
		status = wire.SigTrainTimeout
	default:
		stored := sig
		if len(stored) > MaxSignatureLen {
			stored = stored[:MaxSignatureLen]
			status = wire.SigTrainTruncated
		}
		d.trained[record] = true
		d.signatures[record] = append([]byte(nil), stored...)
	}

	success := byte(0)
	if status == wire.SigTrainSuccess || status == wire.SigTrainTruncated {
		success = 1
	}
	buf := []byte{success, record, byte(status)}
	if success == 1 {
		buf = append(buf, d.signatures[record]...)
	}
	return buf, nil
}

// Recognize pops the next queued recognition event, or device.ErrNoEvent.
func (d *Device) Recognize(context.Context) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.pending) == 0 {
		return nil, device.ErrNoEvent
	}
	buf := d.pending[0]
	d.pending = d.pending[1:]
	return buf, nil
}

// Say queues a recognition event for a record currently in the
// recognizer, as if the operator had spoken its sample.
func (d *Device) Say(record uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	index := -1
	for i, loaded := range d.recognizer {
		if loaded == record {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("record %d not in recognizer", record)
	}

	sig := d.signatures[record]
	buf := []byte{d.groupTag, record, byte(index), byte(len(sig))}
	buf = append(buf, sig...)
	d.pending = append(d.pending, buf)
	return nil
}

// SetGroupTag sets the raw group-mode tag byte reported in replies.
func (d *Device) SetGroupTag(tag byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.groupTag = tag
}

// Compile-time interface satisfaction check.
var _ device.Adapter = (*Device)(nil)
