package command

import (
	"testing"
	"time"
)

// fakeClock drives a LineAssembler deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestAssembler(timeout time.Duration) (*LineAssembler, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	a := NewLineAssembler(timeout)
	a.now = clk.now
	return a, clk
}

func feedString(t *testing.T, a *LineAssembler, s string) FeedResult {
	t.Helper()
	var last FeedResult
	for i := 0; i < len(s); i++ {
		last = a.Feed(s[i])
		if last == FeedReady && i != len(s)-1 {
			t.Fatalf("line ready after %d of %d bytes", i+1, len(s))
		}
	}
	return last
}

func TestAssembleCompleteLine(t *testing.T) {
	a, clk := newTestAssembler(100 * time.Millisecond)

	input := "train 0 2 14\r\n"
	for i := 0; i < len(input); i++ {
		clk.advance(10 * time.Millisecond) // gaps below the timeout
		res := a.Feed(input[i])
		if i < len(input)-1 && res != FeedPending {
			t.Fatalf("byte %d: got %v, want PENDING", i, res)
		}
		if i == len(input)-1 && res != FeedReady {
			t.Fatalf("terminator: got %v, want READY", res)
		}
	}

	// The line is byte-identical to the input, terminator included.
	if got := string(a.Line()); got != input {
		t.Errorf("Line() = %q, want %q", got, input)
	}
}

func TestIdleTimeoutDropsPartialLine(t *testing.T) {
	a, clk := newTestAssembler(100 * time.Millisecond)

	feedString(t, a, "trai")
	if a.Pending() != 4 {
		t.Fatalf("Pending() = %d, want 4", a.Pending())
	}

	// A gap at or beyond the timeout abandons the partial line; the
	// next byte starts a fresh one.
	clk.advance(100 * time.Millisecond)
	if res := a.Feed('v'); res != FeedPending {
		t.Fatalf("Feed after gap: got %v, want PENDING", res)
	}
	if res := feedString(t, a, "r\n"); res != FeedReady {
		t.Fatalf("fresh line: got %v, want READY", res)
	}
	if got := string(a.Line()); got != "vr\n" {
		t.Errorf("Line() = %q, want %q", got, "vr\n")
	}
}

func TestExpireDropsIdlePartial(t *testing.T) {
	a, clk := newTestAssembler(100 * time.Millisecond)

	feedString(t, a, "loa")
	if a.Expire() {
		t.Fatal("Expire before timeout dropped the line")
	}
	clk.advance(150 * time.Millisecond)
	if !a.Expire() {
		t.Fatal("Expire after timeout kept the line")
	}
	if a.Pending() != 0 {
		t.Errorf("Pending() = %d after expire, want 0", a.Pending())
	}
	// Nothing buffered, nothing to expire.
	if a.Expire() {
		t.Error("Expire on empty assembler reported a drop")
	}
}

func TestOverflowResetsWithoutDispatch(t *testing.T) {
	a, _ := newTestAssembler(0)

	for i := 0; i < MaxLineLen; i++ {
		if res := a.Feed('x'); res != FeedPending {
			t.Fatalf("byte %d: got %v, want PENDING", i, res)
		}
	}
	if res := a.Feed('x'); res != FeedDropped {
		t.Fatalf("overflow byte: got %v, want DROPPED", res)
	}
	if a.Pending() != 0 {
		t.Errorf("Pending() = %d after overflow, want 0", a.Pending())
	}
	if a.Line() != nil {
		t.Error("Line() non-nil after overflow")
	}
}

func TestTerminatorAtCapacityStillReady(t *testing.T) {
	a, _ := newTestAssembler(0)

	for i := 0; i < MaxLineLen-1; i++ {
		a.Feed('x')
	}
	if res := a.Feed('\n'); res != FeedReady {
		t.Fatalf("terminator at capacity: got %v, want READY", res)
	}
	if len(a.Line()) != MaxLineLen {
		t.Errorf("Line() length = %d, want %d", len(a.Line()), MaxLineLen)
	}
}

func TestNextFeedAfterReadyStartsFreshLine(t *testing.T) {
	a, _ := newTestAssembler(0)

	feedString(t, a, "vr\n")
	if res := feedString(t, a, "clear\n"); res != FeedReady {
		t.Fatalf("second line: got %v, want READY", res)
	}
	if got := string(a.Line()); got != "clear\n" {
		t.Errorf("Line() = %q, want %q", got, "clear\n")
	}
}
