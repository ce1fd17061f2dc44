// Package wire decodes the fixed binary reply layouts returned by the
// voice-recognition peripheral.
//
// Layouts are not self-describing: the caller must know which operation
// produced a reply buffer and call the matching decoder. Decoders never
// mutate the buffer; they copy out variable-length fields (signatures)
// and translate sentinel-coded status bytes into closed enumerations.
//
// The layouts:
//
//   - Recognize:       group tag, record, index, signature length, signature
//   - Train / Load:    count, then (record, status) pairs
//   - SigTrain:        success count, record, status, echoed signature
//   - CheckRecognizer: count, 7 slots, total, validity mask, group tag
//   - CheckRecord:     count, then (record, state) pairs
//   - CheckSignature:  raw signature bytes, empty meaning "not set"
package wire
