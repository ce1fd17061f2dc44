package wire

import (
	"fmt"
	"strings"
)

// Signature bytes inside this range print as-is; everything else is
// escaped. The lower bound is 0x1A, not 0x20, matching the peripheral's
// documented printable range.
const (
	sigPrintableMin = 0x1A
	sigPrintableMax = 0x7E
)

// FormatSignature renders signature bytes for display. Bytes outside the
// printable range are escaped as bracketed hex, e.g. "[0x0A]".
func FormatSignature(sig []byte) string {
	var b strings.Builder
	for _, c := range sig {
		if c >= sigPrintableMin && c <= sigPrintableMax {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "[0x%02X]", c)
		}
	}
	return b.String()
}
