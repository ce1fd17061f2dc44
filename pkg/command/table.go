package command

// Kind identifies a command in the fixed vocabulary.
type Kind uint8

const (
	// KindTrain trains one or more records.
	KindTrain Kind = iota

	// KindLoad loads trained records into the recognizer.
	KindLoad

	// KindClear empties the recognizer.
	KindClear

	// KindCheckRecognizer queries recognizer state ("vr").
	KindCheckRecognizer

	// KindCheckRecord queries record training state ("record").
	KindCheckRecord

	// KindSigTrain trains one record with a signature ("sigtrain").
	KindSigTrain

	// KindGetSig queries one record's signature ("getsig").
	KindGetSig

	// KindTest is accepted but unsupported.
	KindTest
)

// String returns the command word for the kind.
func (k Kind) String() string {
	switch k {
	case KindTrain:
		return "train"
	case KindLoad:
		return "load"
	case KindClear:
		return "clear"
	case KindCheckRecognizer:
		return "vr"
	case KindCheckRecord:
		return "record"
	case KindSigTrain:
		return "sigtrain"
	case KindGetSig:
		return "getsig"
	case KindTest:
		return "test"
	default:
		return "unknown"
	}
}

// tableEntry binds a command word to its kind. The word's byte length is
// a cheap pre-filter before the fold compare.
type tableEntry struct {
	word string
	kind Kind
}

// commandTable is the fixed vocabulary. First match wins; names are
// unique so order never decides.
var commandTable = []tableEntry{
	{word: "train", kind: KindTrain},
	{word: "load", kind: KindLoad},
	{word: "clear", kind: KindClear},
	{word: "vr", kind: KindCheckRecognizer},
	{word: "record", kind: KindCheckRecord},
	{word: "sigtrain", kind: KindSigTrain},
	{word: "getsig", kind: KindGetSig},
	{word: "test", kind: KindTest},
}

// lookupCommand matches a command token against the vocabulary.
func lookupCommand(tok []byte) (Kind, bool) {
	for _, e := range commandTable {
		if len(tok) != len(e.word) {
			continue
		}
		if spanEqualFold(tok, []byte(e.word)) {
			return e.kind, true
		}
	}
	return 0, false
}
