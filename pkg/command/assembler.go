package command

import "time"

// MaxLineLen is the line buffer capacity in bytes, terminator included.
const MaxLineLen = 65

// DefaultIdleTimeout is the idle interval after which a partial line is
// abandoned.
const DefaultIdleTimeout = 100 * time.Millisecond

// FeedResult is the outcome of feeding one byte to the LineAssembler.
type FeedResult uint8

const (
	// FeedPending indicates the byte was accepted and the line is not
	// complete yet.
	FeedPending FeedResult = 0

	// FeedReady indicates a newline completed the line; Line returns it
	// until the next Feed.
	FeedReady FeedResult = 1

	// FeedDropped indicates the buffer overflowed before a terminator.
	// The partial line was discarded and the assembler reset.
	FeedDropped FeedResult = 2
)

// String returns the feed result name.
func (r FeedResult) String() string {
	switch r {
	case FeedPending:
		return "PENDING"
	case FeedReady:
		return "READY"
	case FeedDropped:
		return "DROPPED"
	default:
		return "UNKNOWN"
	}
}

// LineAssembler accumulates raw bytes into a single pending command line.
// At most one line is in flight; a completed line must be consumed before
// the next byte is fed. A partial line older than the idle timeout is
// silently discarded, so stale bytes never prefix a fresh command.
//
// Not safe for concurrent use; the control loop is single-threaded.
type LineAssembler struct {
	buf     [MaxLineLen]byte
	n       int
	last    time.Time
	timeout time.Duration
	ready   bool

	// now is the clock, replaceable in tests.
	now func() time.Time
}

// NewLineAssembler creates an assembler with the given idle timeout.
// A non-positive timeout selects DefaultIdleTimeout.
func NewLineAssembler(timeout time.Duration) *LineAssembler {
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}
	return &LineAssembler{
		timeout: timeout,
		now:     time.Now,
	}
}

// Feed appends one byte to the pending line.
//
// A stale partial line (idle longer than the timeout) is dropped first,
// so the byte starts a fresh line. A '\n' completes the line, terminator
// included. Overflow abandons the line and returns FeedDropped.
func (a *LineAssembler) Feed(b byte) FeedResult {
	if a.ready {
		a.n = 0
		a.ready = false
	}

	now := a.now()
	if a.n > 0 && now.Sub(a.last) >= a.timeout {
		a.n = 0
	}
	a.last = now

	if a.n >= MaxLineLen {
		a.n = 0
		return FeedDropped
	}

	a.buf[a.n] = b
	a.n++
	if b == '\n' {
		a.ready = true
		return FeedReady
	}
	return FeedPending
}

// Expire drops the pending partial line if it has been idle longer than
// the timeout. It reports whether a partial line was discarded. The
// control loop calls this when a poll yields no byte.
func (a *LineAssembler) Expire() bool {
	if a.ready || a.n == 0 {
		return false
	}
	if a.now().Sub(a.last) < a.timeout {
		return false
	}
	a.n = 0
	return true
}

// Line returns the completed line, '\n' included. Valid only after Feed
// returned FeedReady and only until the next Feed.
func (a *LineAssembler) Line() []byte {
	if !a.ready {
		return nil
	}
	return a.buf[:a.n]
}

// Pending returns the number of buffered bytes of an incomplete line.
func (a *LineAssembler) Pending() int {
	if a.ready {
		return 0
	}
	return a.n
}

// Reset discards any buffered line.
func (a *LineAssembler) Reset() {
	a.n = 0
	a.ready = false
}
