package command

import "testing"

func TestSpanEqualFold(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "train", b: "train", want: true},
		{name: "upper", a: "TRAIN", b: "train", want: true},
		{name: "mixed", a: "TrAiN", b: "train", want: true},
		{name: "different word", a: "train", b: "clear", want: false},
		{name: "length mismatch", a: "train", b: "trains", want: false},
		{name: "empty spans", a: "", b: "", want: true},
		// Non-letter pairs 0x20 apart match under the inherited rule.
		{name: "at sign vs backtick", a: "@", b: "`", want: true},
		{name: "digit vs letter 0x20 apart", a: "0", b: "P", want: true},
		{name: "not 0x20 apart", a: "0", b: "Q", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spanEqualFold([]byte(tt.a), []byte(tt.b)); got != tt.want {
				t.Errorf("spanEqualFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// The relation is symmetric.
			if got := spanEqualFold([]byte(tt.b), []byte(tt.a)); got != tt.want {
				t.Errorf("spanEqualFold(%q, %q) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		tok  string
		kind Kind
		ok   bool
	}{
		{tok: "train", kind: KindTrain, ok: true},
		{tok: "TRAIN", kind: KindTrain, ok: true},
		{tok: "Load", kind: KindLoad, ok: true},
		{tok: "vr", kind: KindCheckRecognizer, ok: true},
		{tok: "VR", kind: KindCheckRecognizer, ok: true},
		{tok: "record", kind: KindCheckRecord, ok: true},
		{tok: "sigtrain", kind: KindSigTrain, ok: true},
		{tok: "getsig", kind: KindGetSig, ok: true},
		{tok: "test", kind: KindTest, ok: true},
		{tok: "clear", kind: KindClear, ok: true},
		{tok: "nope", ok: false},
		{tok: "trai", ok: false},
		{tok: "trainx", ok: false},
		{tok: "", ok: false},
	}
	for _, tt := range tests {
		kind, ok := lookupCommand([]byte(tt.tok))
		if ok != tt.ok {
			t.Errorf("lookupCommand(%q) ok = %v, want %v", tt.tok, ok, tt.ok)
			continue
		}
		if ok && kind != tt.kind {
			t.Errorf("lookupCommand(%q) = %v, want %v", tt.tok, kind, tt.kind)
		}
	}
}
