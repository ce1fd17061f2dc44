package command

// Token is an (offset, length) view into a command line. Tokens never
// have zero length.
type Token struct {
	Off int
	Len int
}

// Bytes returns the token's bytes within line.
func (t Token) Bytes(line []byte) []byte {
	return line[t.Off : t.Off+t.Len]
}

// isSeparator reports whether b separates tokens.
func isSeparator(b byte) bool {
	return b == ' ' || b == '\t'
}

// isTerminator reports whether b ends the scan.
func isTerminator(b byte) bool {
	return b == '\r' || b == '\n'
}

// TokenCount counts maximal runs of non-separator bytes in line.
// Carriage return and newline terminate counting.
func TokenCount(line []byte) int {
	count := 0
	inToken := false
	for _, b := range line {
		if isTerminator(b) {
			break
		}
		if isSeparator(b) {
			inToken = false
			continue
		}
		if !inToken {
			count++
			inToken = true
		}
	}
	return count
}

// NthToken returns the n-th token of line, 1-indexed. The second return
// is false when line has fewer than n tokens.
func NthToken(line []byte, n int) (Token, bool) {
	if n < 1 {
		return Token{}, false
	}
	count := 0
	start := -1
	for i := 0; i <= len(line); i++ {
		atEnd := i == len(line) || isTerminator(line[i])
		if atEnd || isSeparator(line[i]) {
			if start >= 0 && count == n {
				return Token{Off: start, Len: i - start}, true
			}
			start = -1
			if atEnd {
				break
			}
			continue
		}
		if start < 0 {
			start = i
			count++
		}
	}
	return Token{}, false
}
