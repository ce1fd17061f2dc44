package log

import "time"

// Event represents a protocol log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the terminal session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Line        *LineEvent        `cbor:"5,keyasint,omitempty"` // Line assembly
	Command     *CommandEvent     `cbor:"6,keyasint,omitempty"` // Dispatched command
	Device      *DeviceEvent      `cbor:"7,keyasint,omitempty"` // Peripheral operation
	Recognition *RecognitionEvent `cbor:"8,keyasint,omitempty"` // Unsolicited recognition
	Error       *ErrorEventData   `cbor:"9,keyasint,omitempty"` // Errors at any layer
}

// Layer indicates which pipeline layer captured the event.
type Layer uint8

const (
	// LayerLine is the byte/line assembly layer.
	LayerLine Layer = 0
	// LayerCommand is the dispatch layer.
	LayerCommand Layer = 1
	// LayerDevice is the peripheral adapter layer.
	LayerDevice Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerLine:
		return "LINE"
	case LayerCommand:
		return "COMMAND"
	case LayerDevice:
		return "DEVICE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryLine indicates a line assembly event.
	CategoryLine Category = 0
	// CategoryCommand indicates a dispatched command.
	CategoryCommand Category = 1
	// CategoryReply indicates a peripheral reply.
	CategoryReply Category = 2
	// CategoryRecognition indicates an unsolicited recognition event.
	CategoryRecognition Category = 3
	// CategoryError indicates an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryLine:
		return "LINE"
	case CategoryCommand:
		return "COMMAND"
	case CategoryReply:
		return "REPLY"
	case CategoryRecognition:
		return "RECOGNITION"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LineEvent captures a line assembly outcome.
type LineEvent struct {
	// Size is the assembled line size in bytes, terminator included.
	Size int `cbor:"1,keyasint"`

	// Data is the raw line bytes.
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Dropped is set when a partial line was abandoned, with the reason
	// ("timeout" or "overflow").
	Dropped string `cbor:"3,keyasint,omitempty"`
}

// CommandEvent captures a command entering dispatch.
type CommandEvent struct {
	// Name is the matched command word.
	Name string `cbor:"1,keyasint"`

	// Args is the argument count, command word excluded.
	Args int `cbor:"2,keyasint"`
}

// DeviceEvent captures a peripheral operation and its reply.
type DeviceEvent struct {
	// Op is the peripheral operation, e.g. "train".
	Op string `cbor:"1,keyasint"`

	// ReplySize is the reply buffer size in bytes.
	ReplySize int `cbor:"2,keyasint"`
}

// RecognitionEvent captures a decoded unsolicited recognition.
type RecognitionEvent struct {
	// Record is the recognized record number.
	Record uint8 `cbor:"1,keyasint"`

	// Index is the recognizer slot index.
	Index uint8 `cbor:"2,keyasint"`

	// Group is the group mode in display form, e.g. "USER:2".
	Group string `cbor:"3,keyasint,omitempty"`

	// Signature is the record's signature, if set.
	Signature []byte `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what was being processed.
	Context string `cbor:"2,keyasint,omitempty"`
}
