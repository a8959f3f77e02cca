package sysex

import (
	"github.com/syxpack/syx-go/pkg/syxerr"
)

// DanglingPolicy controls what happens to an initiator that is still open
// when the input ends.
type DanglingPolicy uint8

const (
	// DanglingDrop silently discards the unterminated message.
	DanglingDrop DanglingPolicy = iota
	// DanglingReject fails with a KindDanglingMessage error.
	DanglingReject
)

// String returns the policy name as used in configuration files.
func (p DanglingPolicy) String() string {
	switch p {
	case DanglingDrop:
		return "drop"
	case DanglingReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseDanglingPolicy parses "drop" or "reject".
func ParseDanglingPolicy(s string) (DanglingPolicy, error) {
	switch s {
	case "drop", "":
		return DanglingDrop, nil
	case "reject":
		return DanglingReject, nil
	default:
		return DanglingDrop, syxerr.New(syxerr.KindDecode, "unknown dangling policy %q (want drop or reject)", s)
	}
}

// Span locates one framed message in a buffer. Start is the offset of the
// initiator and End is one past the terminator.
type Span struct {
	Start int
	End   int
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Splitter finds framed messages in a buffer.
// The zero value uses DanglingDrop.
type Splitter struct {
	Policy DanglingPolicy
}

// Spans returns the F0..F7 spans of buf in order.
//
// An initiator opens a message; a later initiator before any terminator
// restarts it. A terminator closes the open message, and terminators or other
// bytes outside a message are ignored.
func (s Splitter) Spans(buf []byte) ([]Span, error) {
	var spans []Span
	open := -1
	for i, b := range buf {
		switch b {
		case Initiator:
			open = i
		case Terminator:
			if open >= 0 {
				spans = append(spans, Span{Start: open, End: i + 1})
				open = -1
			}
		}
	}
	if open >= 0 && s.Policy == DanglingReject {
		return spans, syxerr.At(syxerr.KindDanglingMessage, open,
			"initiator has no terminator (%d trailing bytes)", len(buf)-open)
	}
	return spans, nil
}

// Split returns the framed messages of buf. The slices alias buf.
func (s Splitter) Split(buf []byte) ([][]byte, error) {
	spans, err := s.Spans(buf)
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(spans))
	for i, sp := range spans {
		out[i] = buf[sp.Start:sp.End:sp.End]
	}
	return out, nil
}

// Count returns the number of framed messages in buf, dropping an
// unterminated trailing message.
func Count(buf []byte) int {
	spans, _ := Splitter{}.Spans(buf)
	return len(spans)
}

// Split returns the framed messages of buf in order, dropping an
// unterminated trailing message. The slices alias buf.
func Split(buf []byte) [][]byte {
	out, _ := Splitter{}.Split(buf)
	return out
}
