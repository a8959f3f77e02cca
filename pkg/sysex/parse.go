package sysex

import (
	"github.com/syxpack/syx-go/pkg/manufacturer"
	"github.com/syxpack/syx-go/pkg/syxerr"
)

// MinMessageLength is the length of an initiator followed by a terminator.
const MinMessageLength = 2

// Parse classifies one framed message. buf must start with 0xF0 and end with
// 0xF7; the returned message never aliases buf.
func Parse(buf []byte) (Message, error) {
	if len(buf) < MinMessageLength {
		return nil, syxerr.New(syxerr.KindMalformedFraming,
			"need at least %d bytes, got %d", MinMessageLength, len(buf))
	}
	if buf[0] != Initiator {
		return nil, syxerr.At(syxerr.KindMalformedFraming, 0,
			"expected initiator 0xF0, got 0x%02X", buf[0])
	}
	last := len(buf) - 1
	if buf[last] != Terminator {
		return nil, syxerr.At(syxerr.KindMalformedFraming, last,
			"expected terminator 0xF7, got 0x%02X", buf[last])
	}

	body := buf[1:last]
	if len(body) == 0 {
		return nil, syxerr.At(syxerr.KindTruncatedHeader, 1, "message has no identifier")
	}

	switch first := body[0]; {
	case IsUniversalKind(first):
		if len(body) < UniversalHeaderLength {
			return nil, syxerr.At(syxerr.KindTruncatedHeader, 1,
				"universal header needs %d bytes, got %d", UniversalHeaderLength, len(body))
		}
		return &Universal{
			Kind:    UniversalKind(first),
			Target:  body[1],
			SubID1:  body[2],
			SubID2:  body[3],
			Payload: clone(body[UniversalHeaderLength:]),
		}, nil

	case first == manufacturer.ExtendedPrefix:
		if len(body) < manufacturer.ExtendedLength {
			return nil, syxerr.At(syxerr.KindTruncatedHeader, 1,
				"extended manufacturer identifier needs %d bytes, got %d",
				manufacturer.ExtendedLength, len(body))
		}
		return newManufacturerSpecific(body, manufacturer.ExtendedLength)

	default:
		return newManufacturerSpecific(body, manufacturer.StandardLength)
	}
}

func newManufacturerSpecific(body []byte, idLen int) (Message, error) {
	m, err := manufacturer.New(body[:idLen])
	if err != nil {
		return nil, err
	}
	return &ManufacturerSpecific{Manufacturer: m, Payload: clone(body[idLen:])}, nil
}
