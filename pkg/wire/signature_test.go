package wire

import "testing"

func TestFormatSignature(t *testing.T) {
	tests := []struct {
		name string
		sig  []byte
		want string
	}{
		{name: "empty", sig: nil, want: ""},
		{name: "printable", sig: []byte("hello"), want: "hello"},
		{name: "control byte", sig: []byte{'a', 0x0A, 'b'}, want: "a[0x0A]b"},
		{name: "high byte", sig: []byte{0xC3}, want: "[0xC3]"},
		{name: "boundary low", sig: []byte{0x1A, 0x19}, want: "\x1a[0x19]"},
		{name: "boundary high", sig: []byte{0x7E, 0x7F}, want: "~[0x7F]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSignature(tt.sig); got != tt.want {
				t.Errorf("FormatSignature(%v) = %q, want %q", tt.sig, got, tt.want)
			}
		})
	}
}
