package wire

// TrainStatus is the per-record status byte in a train reply.
type TrainStatus uint8

const (
	// TrainSuccess indicates the record was trained.
	TrainSuccess TrainStatus = 0x00

	// TrainTimeout indicates training timed out waiting for voice input.
	TrainTimeout TrainStatus = 0xFE

	// TrainOutOfRange indicates the record number is out of range.
	TrainOutOfRange TrainStatus = 0xFF
)

// String returns the train status name.
func (s TrainStatus) String() string {
	switch s {
	case TrainSuccess:
		return "Trained"
	case TrainTimeout:
		return "Train Time Out"
	case TrainOutOfRange:
		return "Out Of Range"
	default:
		return "UNKNOWN"
	}
}

// LoadStatus is the per-record status byte in a load reply.
type LoadStatus uint8

const (
	// LoadSuccess indicates the record was loaded into the recognizer.
	LoadSuccess LoadStatus = 0x00

	// LoadAlreadyPresent indicates the record is already in the recognizer.
	LoadAlreadyPresent LoadStatus = 0xFC

	// LoadRecognizerFull indicates the recognizer has no free slot.
	LoadRecognizerFull LoadStatus = 0xFD

	// LoadUntrained indicates the record has not been trained.
	LoadUntrained LoadStatus = 0xFE

	// LoadOutOfRange indicates the record number is out of range.
	LoadOutOfRange LoadStatus = 0xFF
)

// String returns the load status name.
func (s LoadStatus) String() string {
	switch s {
	case LoadSuccess:
		return "Loaded"
	case LoadAlreadyPresent:
		return "Already In Recognizer"
	case LoadRecognizerFull:
		return "Recognizer Full"
	case LoadUntrained:
		return "Untrained"
	case LoadOutOfRange:
		return "Out Of Range"
	default:
		return "UNKNOWN"
	}
}

// SigTrainStatus is the status byte in a signature-train reply.
type SigTrainStatus uint8

const (
	// SigTrainSuccess indicates the record was trained with its signature.
	SigTrainSuccess SigTrainStatus = 0x00

	// SigTrainTruncated indicates the record was trained but the
	// signature was truncated by the peripheral.
	SigTrainTruncated SigTrainStatus = 0xF0

	// SigTrainTimeout indicates training timed out waiting for voice input.
	SigTrainTimeout SigTrainStatus = 0xFE

	// SigTrainOutOfRange indicates the record number is out of range.
	SigTrainOutOfRange SigTrainStatus = 0xFF
)

// String returns the signature-train status name.
func (s SigTrainStatus) String() string {
	switch s {
	case SigTrainSuccess:
		return "Trained"
	case SigTrainTruncated:
		return "Trained, Signature Truncated"
	case SigTrainTimeout:
		return "Train Time Out"
	case SigTrainOutOfRange:
		return "Out Of Range"
	default:
		return "UNKNOWN"
	}
}

// RecordState is the per-record state byte in a check-record reply.
// Values other than the named constants decode to RecordStateUnknown.
type RecordState uint8

const (
	// RecordUntrained indicates the record holds no trained sample.
	RecordUntrained RecordState = 0x00

	// RecordTrained indicates the record holds a trained sample.
	RecordTrained RecordState = 0x01

	// RecordOutOfRange indicates the record number is out of range.
	RecordOutOfRange RecordState = 0xFF

	// RecordStateUnknown covers any unrecognized state byte.
	RecordStateUnknown RecordState = 0xFE
)

// String returns the record state name.
func (s RecordState) String() string {
	switch s {
	case RecordUntrained:
		return "Untrained"
	case RecordTrained:
		return "Trained"
	case RecordOutOfRange:
		return "Out Of Range"
	default:
		return "UNKNOWN"
	}
}

// decodeRecordState folds unrecognized state bytes into RecordStateUnknown.
func decodeRecordState(b byte) RecordState {
	switch RecordState(b) {
	case RecordUntrained, RecordTrained, RecordOutOfRange:
		return RecordState(b)
	default:
		return RecordStateUnknown
	}
}
