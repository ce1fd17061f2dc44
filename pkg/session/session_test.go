package session

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrlink-protocol/vrlink-go/internal/simdevice"
	"github.com/vrlink-protocol/vrlink-go/pkg/log"
)

// scriptedSource replays a fixed sequence of poll outcomes.
type scriptedSource struct {
	steps []sourceStep
}

type sourceStep struct {
	b   byte
	ok  bool
	err error
}

func (s *scriptedSource) ReadByte() (byte, bool, error) {
	if len(s.steps) == 0 {
		return 0, false, io.EOF
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	return step.b, step.ok, step.err
}

func (s *scriptedSource) sendLine(line string) {
	for i := 0; i < len(line); i++ {
		s.steps = append(s.steps, sourceStep{b: line[i], ok: true})
	}
}

func (s *scriptedSource) gap() {
	s.steps = append(s.steps, sourceStep{ok: false})
}

func TestRunDispatchesCommandStream(t *testing.T) {
	dev := simdevice.New()
	src := &scriptedSource{}
	src.sendLine("train 0 2 14\r\n")
	src.sendLine("load 0 2 14\n")
	src.sendLine("vr\n")

	var out bytes.Buffer
	s, err := New(Config{Device: dev, Source: src, Out: &out})
	require.NoError(t, err)
	require.NotEmpty(t, s.ID())

	require.NoError(t, s.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "train: 3 finished")
	assert.Contains(t, text, "record 14: Trained")
	assert.Contains(t, text, "record 2: Loaded")
	assert.Contains(t, text, "recognizer: 3 valid")
}

func TestRunRendersDiagnostics(t *testing.T) {
	dev := simdevice.New()
	src := &scriptedSource{}
	src.sendLine("frobnicate\n")
	src.sendLine("clear extra\n")
	src.sendLine("test whatever\n")

	var out bytes.Buffer
	s, err := New(Config{Device: dev, Source: src, Out: &out})
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Unknown Command")
	assert.Contains(t, text, "Command Format Error")
	assert.Contains(t, text, "test: not supported")
}

func TestRunPollsRecognitionOnIdle(t *testing.T) {
	ctx := context.Background()
	dev := simdevice.New()
	_, err := dev.TrainWithSignature(ctx, 3, []byte("lamp"))
	require.NoError(t, err)
	_, err = dev.Load(ctx, []uint8{3})
	require.NoError(t, err)
	require.NoError(t, dev.Say(3))

	src := &scriptedSource{}
	src.gap()

	var out bytes.Buffer
	s, err := New(Config{Device: dev, Source: src, Out: &out})
	require.NoError(t, err)
	require.NoError(t, s.Run(ctx))

	assert.Contains(t, out.String(), "recognized: record 3 (slot 0, group NONE) sig=lamp")
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dev := simdevice.New()
	s, err := New(Config{Device: dev, Source: &scriptedSource{}})
	require.NoError(t, err)

	require.ErrorIs(t, s.Run(ctx), context.Canceled)
}

func TestHandleLineAppendsTerminator(t *testing.T) {
	dev := simdevice.New()
	var out bytes.Buffer
	s, err := New(Config{Device: dev, Out: &out})
	require.NoError(t, err)

	s.HandleLine(context.Background(), "record")
	assert.Contains(t, out.String(), "record: 0 checked")
}

func TestSessionLogsProtocolEvents(t *testing.T) {
	dev := simdevice.New()
	src := &scriptedSource{}
	src.sendLine("vr\n")
	src.gap()

	logger := &capturingLogger{}
	s, err := New(Config{
		Device:      dev,
		Source:      src,
		Logger:      logger,
		IdleTimeout: time.Millisecond,
	})
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	var categories []log.Category
	for _, e := range logger.events {
		assert.Equal(t, s.ID(), e.SessionID)
		categories = append(categories, e.Category)
	}
	assert.Contains(t, categories, log.CategoryLine)
	assert.Contains(t, categories, log.CategoryCommand)
	assert.Contains(t, categories, log.CategoryReply)
}

func TestNewRequiresDevice(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

// capturingLogger records events for assertions.
type capturingLogger struct {
	events []log.Event
}

func (c *capturingLogger) Log(event log.Event) {
	c.events = append(c.events, event)
}
