package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/vrlink-protocol/vrlink-go/pkg/command"
	"github.com/vrlink-protocol/vrlink-go/pkg/device"
	"github.com/vrlink-protocol/vrlink-go/pkg/wire"
)

// renderDiagnostic writes the single-line classification for a failed
// dispatch. Classifications carry no further structure.
func renderDiagnostic(w io.Writer, err error) {
	var delegate *device.DelegateError
	switch {
	case errors.Is(err, command.ErrMalformedCommand):
		fmt.Fprintln(w, "Malformed Command")
	case errors.Is(err, command.ErrUnknownCommand):
		fmt.Fprintln(w, "Unknown Command")
	case errors.Is(err, command.ErrCommandFormat):
		fmt.Fprintln(w, "Command Format Error")
	case errors.As(err, &delegate):
		fmt.Fprintf(w, "%s failed\n", delegate.Op)
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}

// renderResult writes the labeled fields of a decoded reply.
func renderResult(w io.Writer, res *command.Result) {
	if res.Unsupported {
		fmt.Fprintf(w, "%s: not supported\n", res.Kind)
		return
	}

	switch reply := res.Reply.(type) {
	case nil:
		fmt.Fprintf(w, "%s: ok\n", res.Kind)

	case wire.TrainReply:
		if len(reply.Results) == 0 {
			fmt.Fprintln(w, "train: all records trained")
			return
		}
		fmt.Fprintf(w, "train: %d finished\n", reply.Count)
		for _, r := range reply.Results {
			fmt.Fprintf(w, "  record %d: %s\n", r.Record, r.Status)
		}

	case wire.LoadReply:
		if len(reply.Results) == 0 {
			fmt.Fprintln(w, "load: all records loaded")
			return
		}
		fmt.Fprintf(w, "load: %d finished\n", reply.Count)
		for _, r := range reply.Results {
			fmt.Fprintf(w, "  record %d: %s\n", r.Record, r.Status)
		}

	case wire.SigTrainReply:
		fmt.Fprintf(w, "sigtrain: record %d: %s", reply.Record, reply.Status)
		if len(reply.Signature) > 0 {
			fmt.Fprintf(w, " sig=%s", wire.FormatSignature(reply.Signature))
		}
		fmt.Fprintln(w)

	case wire.RecognizerState:
		fmt.Fprintf(w, "recognizer: %d valid, %d trained total, group %s\n",
			reply.ValidCount, reply.Total, reply.Group)
		for i, rec := range reply.Slots {
			if rec == wire.UnsetSlot {
				continue
			}
			valid := " (invalid)"
			if reply.SlotValid(i) {
				valid = ""
			}
			fmt.Fprintf(w, "  slot %d: record %d%s\n", i, rec, valid)
		}

	case wire.RecordStates:
		fmt.Fprintf(w, "record: %d checked\n", reply.Count)
		for _, e := range reply.Entries {
			fmt.Fprintf(w, "  record %d: %s\n", e.Record, e.State)
		}

	case wire.SignatureReply:
		fmt.Fprintf(w, "getsig: %s\n", reply)

	default:
		fmt.Fprintf(w, "%s: ok\n", res.Kind)
	}
}

// renderRecognition writes an unsolicited recognition event.
func renderRecognition(w io.Writer, reply wire.RecognizeReply) {
	fmt.Fprintf(w, "recognized: record %d (slot %d, group %s)",
		reply.Record, reply.Index, reply.Group)
	if len(reply.Signature) > 0 {
		fmt.Fprintf(w, " sig=%s", wire.FormatSignature(reply.Signature))
	}
	fmt.Fprintln(w)
}
