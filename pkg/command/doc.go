// Package command implements the line-command protocol engine for the
// voice-recognition peripheral terminal.
//
// Raw bytes are reassembled into delimited command lines by the
// LineAssembler, tokenized into whitespace-separated parameters, matched
// case-insensitively against a fixed command vocabulary, validated for
// arity and argument values, and dispatched to the peripheral through a
// device.Adapter. Binary replies are handed to pkg/wire for decoding.
//
// The engine is single-owner: one Dispatcher processes one line at a
// time, and a Result only stays valid until the next dispatch cycle.
package command
