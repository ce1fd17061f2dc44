package wire

import (
	"errors"
	"fmt"
)

// Decode errors.
var (
	// ErrReplyTruncated indicates the reply buffer is shorter than the
	// fixed layout requires.
	ErrReplyTruncated = errors.New("reply truncated")
)

// RecognizerSlots is the number of recognizer slots reported by the
// peripheral. Also the upper bound on records per train/load request.
const RecognizerSlots = 7

// UnsetSlot marks an empty recognizer slot in a CheckRecognizer reply.
const UnsetSlot = 0xFF

// RecognizeReply is a decoded recognition event.
//
// Layout: byte0 group tag, byte1 record number, byte2 recognized index,
// byte3 signature length, then the signature bytes.
type RecognizeReply struct {
	Group     GroupMode
	Record    uint8
	Index     uint8
	Signature []byte
}

// DecodeRecognize decodes a recognize reply buffer.
func DecodeRecognize(buf []byte) (RecognizeReply, error) {
	if len(buf) < 4 {
		return RecognizeReply{}, fmt.Errorf("recognize: %w: %d bytes", ErrReplyTruncated, len(buf))
	}
	sigLen := int(buf[3])
	if len(buf) < 4+sigLen {
		return RecognizeReply{}, fmt.Errorf("recognize: %w: signature needs %d bytes, have %d",
			ErrReplyTruncated, sigLen, len(buf)-4)
	}
	r := RecognizeReply{
		Group:  DecodeGroupMode(buf[0]),
		Record: buf[1],
		Index:  buf[2],
	}
	if sigLen > 0 {
		r.Signature = append([]byte(nil), buf[4:4+sigLen]...)
	}
	return r, nil
}

// TrainResult is one (record, status) pair from a train reply.
type TrainResult struct {
	Record uint8
	Status TrainStatus
}

// TrainReply is a decoded train reply.
//
// Layout: byte0 entry count, then count (record, status) pairs. An empty
// buffer is valid and means every requested record succeeded with nothing
// to enumerate.
type TrainReply struct {
	Count   uint8
	Results []TrainResult
}

// DecodeTrain decodes a train reply buffer.
func DecodeTrain(buf []byte) (TrainReply, error) {
	if len(buf) == 0 {
		return TrainReply{}, nil
	}
	n := int(buf[0])
	if len(buf) < 1+2*n {
		return TrainReply{}, fmt.Errorf("train: %w: %d entries need %d bytes, have %d",
			ErrReplyTruncated, n, 1+2*n, len(buf))
	}
	r := TrainReply{Count: buf[0]}
	for i := 0; i < n; i++ {
		r.Results = append(r.Results, TrainResult{
			Record: buf[1+2*i],
			Status: TrainStatus(buf[2+2*i]),
		})
	}
	return r, nil
}

// LoadResult is one (record, status) pair from a load reply.
type LoadResult struct {
	Record uint8
	Status LoadStatus
}

// LoadReply is a decoded load reply. Same layout as TrainReply with the
// load status vocabulary.
type LoadReply struct {
	Count   uint8
	Results []LoadResult
}

// DecodeLoad decodes a load reply buffer.
func DecodeLoad(buf []byte) (LoadReply, error) {
	if len(buf) == 0 {
		return LoadReply{}, nil
	}
	n := int(buf[0])
	if len(buf) < 1+2*n {
		return LoadReply{}, fmt.Errorf("load: %w: %d entries need %d bytes, have %d",
			ErrReplyTruncated, n, 1+2*n, len(buf))
	}
	r := LoadReply{Count: buf[0]}
	for i := 0; i < n; i++ {
		r.Results = append(r.Results, LoadResult{
			Record: buf[1+2*i],
			Status: LoadStatus(buf[2+2*i]),
		})
	}
	return r, nil
}

// SigTrainReply is a decoded signature-train reply.
//
// Layout: byte0 success count, byte1 record number, byte2 status, then
// the echoed signature bytes to the end of the buffer.
type SigTrainReply struct {
	Count     uint8
	Record    uint8
	Status    SigTrainStatus
	Signature []byte
}

// DecodeSigTrain decodes a signature-train reply buffer.
func DecodeSigTrain(buf []byte) (SigTrainReply, error) {
	if len(buf) < 3 {
		return SigTrainReply{}, fmt.Errorf("sigtrain: %w: %d bytes", ErrReplyTruncated, len(buf))
	}
	r := SigTrainReply{
		Count:  buf[0],
		Record: buf[1],
		Status: SigTrainStatus(buf[2]),
	}
	if len(buf) > 3 {
		r.Signature = append([]byte(nil), buf[3:]...)
	}
	return r, nil
}

// RecognizerState is a decoded check-recognizer reply.
//
// Layout: byte0 valid count, bytes 1..7 the seven slots (0xFF unset),
// byte8 total record count, byte9 slot validity bitmask, byte10 group tag.
type RecognizerState struct {
	ValidCount uint8
	Slots      [RecognizerSlots]uint8
	Total      uint8
	ValidMask  uint8
	Group      GroupMode
}

// SlotValid reports whether slot i is marked valid in the bitmask.
func (s RecognizerState) SlotValid(i int) bool {
	if i < 0 || i >= RecognizerSlots {
		return false
	}
	return s.ValidMask&(1<<uint(i)) != 0
}

// DecodeRecognizerState decodes a check-recognizer reply buffer.
func DecodeRecognizerState(buf []byte) (RecognizerState, error) {
	if len(buf) < 11 {
		return RecognizerState{}, fmt.Errorf("check recognizer: %w: %d bytes", ErrReplyTruncated, len(buf))
	}
	s := RecognizerState{
		ValidCount: buf[0],
		Total:      buf[8],
		ValidMask:  buf[9],
		Group:      DecodeGroupMode(buf[10]),
	}
	copy(s.Slots[:], buf[1:8])
	return s, nil
}

// RecordStateEntry is one (record, state) pair from a check-record reply.
type RecordStateEntry struct {
	Record uint8
	State  RecordState
}

// RecordStates is a decoded check-record reply.
//
// Layout: byte0 checked count, then count (record, state) pairs.
type RecordStates struct {
	Count   uint8
	Entries []RecordStateEntry
}

// DecodeRecordStates decodes a check-record reply buffer.
func DecodeRecordStates(buf []byte) (RecordStates, error) {
	if len(buf) < 1 {
		return RecordStates{}, fmt.Errorf("check record: %w: empty", ErrReplyTruncated)
	}
	n := int(buf[0])
	if len(buf) < 1+2*n {
		return RecordStates{}, fmt.Errorf("check record: %w: %d entries need %d bytes, have %d",
			ErrReplyTruncated, n, 1+2*n, len(buf))
	}
	r := RecordStates{Count: buf[0]}
	for i := 0; i < n; i++ {
		r.Entries = append(r.Entries, RecordStateEntry{
			Record: buf[1+2*i],
			State:  decodeRecordState(buf[2+2*i]),
		})
	}
	return r, nil
}

// SignatureReply is a decoded check-signature reply. An empty buffer
// means the record has no signature set.
type SignatureReply struct {
	Set bool
	Raw []byte
}

// DecodeSignature decodes a check-signature reply buffer.
func DecodeSignature(buf []byte) SignatureReply {
	if len(buf) == 0 {
		return SignatureReply{}
	}
	return SignatureReply{Set: true, Raw: append([]byte(nil), buf...)}
}

// String returns the escaped signature, or "(not set)".
func (r SignatureReply) String() string {
	if !r.Set {
		return "(not set)"
	}
	return FormatSignature(r.Raw)
}
