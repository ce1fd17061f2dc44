// Package session runs the terminal's single-threaded control loop:
// poll bytes from the transport, assemble and dispatch command lines,
// and poll the peripheral for unsolicited recognition events between
// commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/vrlink-protocol/vrlink-go/pkg/command"
	"github.com/vrlink-protocol/vrlink-go/pkg/device"
	"github.com/vrlink-protocol/vrlink-go/pkg/log"
	"github.com/vrlink-protocol/vrlink-go/pkg/wire"
)

// ByteSource yields one transport byte per poll. ReadByte returns
// ok=false when no byte arrived within the source's poll interval, and
// io.EOF when the transport is closed.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Config configures a Session.
type Config struct {
	// Device is the peripheral adapter. Required.
	Device device.Adapter

	// Source is the transport byte source. Required for Run; HandleLine
	// works without one.
	Source ByteSource

	// Out receives rendered command results and diagnostics.
	// Defaults to io.Discard.
	Out io.Writer

	// Logger receives protocol events. Nil disables logging.
	Logger log.Logger

	// IdleTimeout is the line assembler's idle timeout.
	// Non-positive selects the assembler default.
	IdleTimeout time.Duration
}

// Session owns one command/poll cycle at a time. Not safe for
// concurrent use; the loop is strictly sequential by design.
type Session struct {
	id     string
	asm    *command.LineAssembler
	disp   *command.Dispatcher
	dev    device.Adapter
	source ByteSource
	out    io.Writer
	logger log.Logger
}

// New creates a session. The session ID is a fresh UUID used to
// correlate protocol log events.
func New(cfg Config) (*Session, error) {
	if cfg.Device == nil {
		return nil, errors.New("session: device adapter is required")
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	s := &Session{
		id:     uuid.New().String(),
		asm:    command.NewLineAssembler(cfg.IdleTimeout),
		disp:   command.NewDispatcher(cfg.Device),
		dev:    cfg.Device,
		source: cfg.Source,
		out:    out,
		logger: cfg.Logger,
	}
	if cfg.Logger != nil {
		s.disp.SetLogger(cfg.Logger, s.id)
	}
	return s, nil
}

// ID returns the session's correlation UUID.
func (s *Session) ID() string {
	return s.id
}

// Run drives the control loop until the context is cancelled or the
// byte source reports EOF. Commands are processed one at a time in
// arrival order; the recognition poll runs only between commands.
func (s *Session) Run(ctx context.Context) error {
	if s.source == nil {
		return errors.New("session: byte source is required")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		b, ok, err := s.source.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("session: read transport: %w", err)
		}

		if !ok {
			if s.asm.Expire() {
				s.logLineDropped("timeout")
			}
			s.PollRecognition(ctx)
			continue
		}

		switch s.asm.Feed(b) {
		case command.FeedReady:
			line := s.asm.Line()
			s.logLine(line)
			s.dispatchLine(ctx, line)
		case command.FeedDropped:
			s.logLineDropped("overflow")
		}
	}
}

// HandleLine dispatches one operator-typed line, terminator optional.
// Used by the interactive console mode where readline already delivers
// whole lines.
func (s *Session) HandleLine(ctx context.Context, text string) {
	line := []byte(text)
	if len(line) == 0 || line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}
	if len(line) > command.MaxLineLen {
		s.logLineDropped("overflow")
		return
	}
	s.logLine(line)
	s.dispatchLine(ctx, line)
}

// PollRecognition asks the peripheral once for a pending recognition
// event and renders it when present.
func (s *Session) PollRecognition(ctx context.Context) {
	buf, err := s.dev.Recognize(ctx)
	if err != nil {
		if !errors.Is(err, device.ErrNoEvent) {
			s.logError("recognize poll", err)
		}
		return
	}

	reply, err := wire.DecodeRecognize(buf)
	if err != nil {
		s.logError("recognize decode", err)
		return
	}

	s.logRecognition(reply)
	renderRecognition(s.out, reply)
}

func (s *Session) dispatchLine(ctx context.Context, line []byte) {
	res, err := s.disp.Dispatch(ctx, line)
	if err != nil {
		renderDiagnostic(s.out, err)
		return
	}
	if res == nil {
		return
	}
	renderResult(s.out, res)
}

func (s *Session) logLine(line []byte) {
	if s.logger == nil {
		return
	}
	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Layer:     log.LayerLine,
		Category:  log.CategoryLine,
		Line: &log.LineEvent{
			Size: len(line),
			Data: append([]byte(nil), line...),
		},
	})
}

func (s *Session) logLineDropped(reason string) {
	if s.logger == nil {
		return
	}
	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Layer:     log.LayerLine,
		Category:  log.CategoryLine,
		Line: &log.LineEvent{
			Dropped: reason,
		},
	})
}

func (s *Session) logRecognition(reply wire.RecognizeReply) {
	if s.logger == nil {
		return
	}
	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Layer:     log.LayerDevice,
		Category:  log.CategoryRecognition,
		Recognition: &log.RecognitionEvent{
			Record:    reply.Record,
			Index:     reply.Index,
			Group:     reply.Group.String(),
			Signature: append([]byte(nil), reply.Signature...),
		},
	})
}

func (s *Session) logError(where string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: s.id,
		Layer:     log.LayerDevice,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Message: err.Error(),
			Context: where,
		},
	})
}
