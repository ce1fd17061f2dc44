package vrlink_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrlink-protocol/vrlink-go/internal/simdevice"
	"github.com/vrlink-protocol/vrlink-go/pkg/log"
	"github.com/vrlink-protocol/vrlink-go/pkg/session"
)

// streamSource feeds a fixed byte stream, then one idle poll per
// remaining gap, then EOF.
type streamSource struct {
	data []byte
	gaps int
}

func (s *streamSource) ReadByte() (byte, bool, error) {
	if len(s.data) > 0 {
		b := s.data[0]
		s.data = s.data[1:]
		return b, true, nil
	}
	if s.gaps > 0 {
		s.gaps--
		return 0, false, nil
	}
	return 0, false, io.EOF
}

// TestE2E_OperatorSession drives a whole operator session through the
// byte-stream front door: train, signature-train, load, query, a bad
// command, and an unsolicited recognition surfaced by the idle poll.
func TestE2E_OperatorSession(t *testing.T) {
	ctx := context.Background()
	dev := simdevice.New()

	script := "" +
		"train 0 2 14\r\n" +
		"SIGTRAIN 5 front door\r\n" +
		"load 0 5\n" +
		"vr\n" +
		"record\n" +
		"getsig 5\n" +
		"clear bogus\n" +
		"mystery\n"

	logger := &collectingLogger{}
	src := &streamSource{data: []byte(script)}

	var out bytes.Buffer
	s, err := session.New(session.Config{
		Device: dev,
		Source: src,
		Out:    &out,
		Logger: logger,
	})
	require.NoError(t, err)

	require.NoError(t, s.Run(ctx))

	text := out.String()
	assert.Contains(t, text, "train: 3 finished")
	assert.Contains(t, text, "sigtrain: record 5: Trained sig=front door")
	assert.Contains(t, text, "record 5: Loaded")
	assert.Contains(t, text, "recognizer: 2 valid, 4 trained total")
	assert.Contains(t, text, "record: 4 checked")
	assert.Contains(t, text, "getsig: front door")
	assert.Contains(t, text, "Command Format Error")
	assert.Contains(t, text, "Unknown Command")

	// Second act: the operator speaks record 5 and the idle poll
	// surfaces the recognition.
	require.NoError(t, dev.Say(5))
	src2 := &streamSource{gaps: 1}
	out.Reset()
	s2, err := session.New(session.Config{Device: dev, Source: src2, Out: &out, Logger: logger})
	require.NoError(t, err)
	require.NoError(t, s2.Run(ctx))

	assert.Contains(t, out.String(), "recognized: record 5")
	assert.Contains(t, out.String(), "sig=front door")

	// The protocol log captured both sessions.
	sessions := map[string]bool{}
	for _, e := range logger.events {
		sessions[e.SessionID] = true
	}
	assert.Len(t, sessions, 2)
}

type collectingLogger struct {
	events []log.Event
}

func (c *collectingLogger) Log(event log.Event) {
	c.events = append(c.events, event)
}
