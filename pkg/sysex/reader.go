package sysex

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/syxpack/syx-go/pkg/syxerr"
)

// DefaultMaxMessageSize is the default largest message a Reader accepts (1 MiB).
const DefaultMaxMessageSize = 1 << 20

// ErrMessageTooLarge indicates a message longer than the reader's limit.
var ErrMessageTooLarge = errors.New("message too large")

// Reader reads framed messages from a stream, one at a time.
// It finds the same messages Splitter finds in the equivalent buffer.
type Reader struct {
	r              *bufio.Reader
	policy         DanglingPolicy
	maxMessageSize int

	offset int // stream offset of the next byte to read
	buf    []byte
}

// NewReader creates a Reader with DanglingDrop and DefaultMaxMessageSize.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:              bufio.NewReader(r),
		maxMessageSize: DefaultMaxMessageSize,
	}
}

// SetPolicy sets the dangling message policy.
func (r *Reader) SetPolicy(p DanglingPolicy) {
	r.policy = p
}

// SetMaxMessageSize sets the largest accepted message, framing included.
func (r *Reader) SetMaxMessageSize(n int) {
	r.maxMessageSize = n
}

// Next returns the next framed message and its span in the stream.
// It returns io.EOF when the stream holds no further complete message.
// The returned slice is owned by the caller.
func (r *Reader) Next() ([]byte, Span, error) {
	open := -1
	r.buf = r.buf[:0]

	for {
		b, err := r.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				return nil, Span{}, err
			}
			if open >= 0 && r.policy == DanglingReject {
				return nil, Span{}, syxerr.At(syxerr.KindDanglingMessage, open,
					"initiator has no terminator (%d trailing bytes)", len(r.buf))
			}
			return nil, Span{}, io.EOF
		}
		pos := r.offset
		r.offset++

		switch {
		case b == Initiator:
			open = pos
			r.buf = append(r.buf[:0], b)
		case open < 0:
			// Stray byte between messages.
		default:
			if len(r.buf) >= r.maxMessageSize {
				return nil, Span{}, fmt.Errorf("%w: message at offset %d exceeds %d bytes",
					ErrMessageTooLarge, open, r.maxMessageSize)
			}
			r.buf = append(r.buf, b)
			if b == Terminator {
				return clone(r.buf), Span{Start: open, End: pos + 1}, nil
			}
		}
	}
}
