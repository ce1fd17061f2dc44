package command

// spanEqualFold reports whether two byte spans are equal ignoring the
// ASCII case offset. Lengths must match; each byte pair must be
// identical or 0x20 apart.
//
// Non-letter byte pairs that happen to sit 0x20 apart also match under
// this rule. That is intentional, inherited peripheral behavior; the
// command vocabulary is pure letters, so it never affects dispatch.
func spanEqualFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		diff := int(a[i]) - int(b[i])
		if diff != 0 && diff != 0x20 && diff != -0x20 {
			return false
		}
	}
	return true
}
