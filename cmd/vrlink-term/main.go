// Command vrlink-term is an operator terminal for a voice-recognition
// peripheral speaking the vrlink line-command protocol.
//
// In serial mode the terminal reads operator command lines from a
// serial port, dispatches them against the peripheral and prints the
// decoded replies. Without a port it runs an interactive console
// against a simulated peripheral.
//
// Usage:
//
//	vrlink-term [flags]
//
// Flags:
//
//	-config string       Configuration file path (YAML)
//	-port string         Serial port carrying command lines, e.g. /dev/ttyUSB0
//	-baud int            Serial baud rate (default 115200)
//	-log-file string     CBOR protocol log path
//	-log-level string    Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Interactive console against the simulated peripheral
//	vrlink-term
//
//	# Serve an operator connected over a serial line
//	vrlink-term -port /dev/ttyUSB0 -baud 9600
//
//	# Capture a protocol trace
//	vrlink-term -log-file session.vlog -log-level debug
//
// Commands (sent over the line, or typed interactively):
//
//	train <r> [r...]     - train up to 7 records
//	load <r> [r...]      - load trained records into the recognizer
//	clear                - empty the recognizer
//	vr                   - show recognizer state
//	record [r...]        - show record training state
//	sigtrain <r> [sig]   - train one record with a signature
//	getsig <r>           - show one record's signature
//
// Interactive-only commands: help, say <r> (simulate a recognition),
// quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"go.bug.st/serial"

	"github.com/vrlink-protocol/vrlink-go/internal/simdevice"
	"github.com/vrlink-protocol/vrlink-go/pkg/log"
	"github.com/vrlink-protocol/vrlink-go/pkg/session"
)

func main() {
	configPath := flag.String("config", "", "Configuration file path (YAML)")
	port := flag.String("port", "", "Serial port carrying command lines")
	baud := flag.Int("baud", 0, "Serial baud rate")
	logFile := flag.String("log-file", "", "CBOR protocol log path")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	// Flags win over the config file.
	if *port != "" {
		cfg.Port = *port
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	})))

	logger, closeLogger, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLogger()

	dev := simdevice.New()

	if cfg.Port == "" {
		return runInteractive(ctx, cfg, dev, logger)
	}
	return runSerial(ctx, cfg, dev, logger)
}

// buildLogger assembles the protocol logger from the config: slog for
// development visibility, plus an optional CBOR file capture.
func buildLogger(cfg Config) (log.Logger, func(), error) {
	loggers := []log.Logger{log.NewSlogAdapter(slog.Default())}
	closeLogger := func() {}

	if cfg.LogFile != "" {
		fl, err := log.NewFileLogger(cfg.LogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open protocol log: %w", err)
		}
		loggers = append(loggers, fl)
		closeLogger = func() { _ = fl.Close() }
	}
	return log.NewMultiLogger(loggers...), closeLogger, nil
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// serialSource adapts a serial port to the session's byte poll.
type serialSource struct {
	port serial.Port
	buf  [1]byte
}

// ReadByte reads one byte, bounded by the port's read timeout.
func (s *serialSource) ReadByte() (byte, bool, error) {
	n, err := s.port.Read(s.buf[:])
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		// Poll timeout elapsed with nothing received.
		return 0, false, nil
	}
	return s.buf[0], true, nil
}

var _ session.ByteSource = (*serialSource)(nil)

func runSerial(ctx context.Context, cfg Config, dev *simdevice.Device, logger log.Logger) error {
	port, err := serial.Open(cfg.Port, &serial.Mode{
		BaudRate: cfg.Baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return fmt.Errorf("open serial port %s: %w", cfg.Port, err)
	}
	defer port.Close()

	if err := port.SetReadTimeout(cfg.PollInterval()); err != nil {
		return fmt.Errorf("set read timeout: %w", err)
	}

	s, err := session.New(session.Config{
		Device:      dev,
		Source:      &serialSource{port: port},
		Out:         os.Stdout,
		Logger:      logger,
		IdleTimeout: cfg.IdleTimeout(),
	})
	if err != nil {
		return err
	}

	slog.Info("serving serial session", "port", cfg.Port, "baud", cfg.Baud, "session_id", s.ID())
	err = s.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runInteractive(ctx context.Context, cfg Config, dev *simdevice.Device, logger log.Logger) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vrlink> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("create readline: %w", err)
	}
	defer rl.Close()

	s, err := session.New(session.Config{
		Device:      dev,
		Out:         rl.Stdout(),
		Logger:      logger,
		IdleTimeout: cfg.IdleTimeout(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(rl.Stdout(), "vrlink interactive console (simulated peripheral); type 'help' for commands")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		input, err := rl.Readline()
		if err != nil {
			// ^C clears, ^D exits.
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		switch {
		case input == "":
		case input == "help" || input == "?":
			printHelp(rl.Stdout())
		case input == "quit" || input == "exit" || input == "q":
			return nil
		case strings.HasPrefix(input, "say "):
			handleSay(rl.Stdout(), dev, strings.TrimSpace(input[4:]))
		default:
			s.HandleLine(ctx, input)
		}

		// Surface any recognition the last action produced.
		s.PollRecognition(ctx)
	}
}

func handleSay(w io.Writer, dev *simdevice.Device, arg string) {
	record, err := strconv.Atoi(arg)
	if err != nil || record < 0 || record > 254 {
		fmt.Fprintln(w, "usage: say <record 0..254>")
		return
	}
	if err := dev.Say(uint8(record)); err != nil {
		fmt.Fprintf(w, "say: %v\n", err)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `Protocol commands:
  train <r> [r...]     train up to 7 records
  load <r> [r...]      load trained records into the recognizer
  clear                empty the recognizer
  vr                   show recognizer state
  record [r...]        show record training state
  sigtrain <r> [sig]   train one record with a signature
  getsig <r>           show one record's signature

Console commands:
  say <r>              simulate the operator speaking record r
  help                 show this help
  quit                 exit
`)
}
