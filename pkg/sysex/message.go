package sysex

import (
	"bytes"
	"fmt"

	"github.com/syxpack/syx-go/pkg/manufacturer"
	"github.com/syxpack/syx-go/pkg/syxerr"
)

// Framing bytes.
const (
	// Initiator starts every System Exclusive message.
	Initiator byte = 0xF0
	// Terminator ends every System Exclusive message.
	Terminator byte = 0xF7
)

// UniversalHeaderLength is the number of header bytes in a universal message.
const UniversalHeaderLength = 4

// UniversalKind distinguishes non-realtime from realtime universal messages.
type UniversalKind byte

const (
	// UniversalNonRealTime is the 0x7E universal identifier.
	UniversalNonRealTime UniversalKind = 0x7E
	// UniversalRealTime is the 0x7F universal identifier.
	UniversalRealTime UniversalKind = 0x7F
)

// String returns the kind name.
func (k UniversalKind) String() string {
	switch k {
	case UniversalNonRealTime:
		return "Non-Real-time"
	case UniversalRealTime:
		return "Real-time"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", byte(k))
	}
}

// IsUniversalKind reports whether b is a universal identifier byte.
func IsUniversalKind(b byte) bool {
	return UniversalKind(b) == UniversalNonRealTime || UniversalKind(b) == UniversalRealTime
}

// Message is one System Exclusive message without its framing bytes.
// The concrete type is either *ManufacturerSpecific or *Universal.
type Message interface {
	// Header returns the identifier bytes that follow the initiator.
	Header() []byte

	// Data returns the payload between the header and the terminator.
	Data() []byte

	sealed()
}

// ManufacturerSpecific is a message addressed by a manufacturer identifier.
type ManufacturerSpecific struct {
	Manufacturer manufacturer.Manufacturer
	Payload      []byte
}

// Header returns the manufacturer code bytes.
func (m *ManufacturerSpecific) Header() []byte {
	return m.Manufacturer.Bytes()
}

// Data returns the payload.
func (m *ManufacturerSpecific) Data() []byte {
	return m.Payload
}

func (*ManufacturerSpecific) sealed() {}

// Universal is a universal (non-manufacturer) message.
type Universal struct {
	Kind   UniversalKind
	Target byte
	SubID1 byte
	SubID2 byte

	Payload []byte
}

// Header returns the four universal header bytes.
func (u *Universal) Header() []byte {
	return []byte{byte(u.Kind), u.Target, u.SubID1, u.SubID2}
}

// Data returns the payload.
func (u *Universal) Data() []byte {
	return u.Payload
}

func (*Universal) sealed() {}

// Compile-time interface satisfaction checks.
var (
	_ Message = (*ManufacturerSpecific)(nil)
	_ Message = (*Universal)(nil)
)

// CheckManufacturer returns a KindReservedManufacturer error if m is one of
// the standard codes 0x7E and 0x7F. Those are valid identifiers but Parse
// reads them as a universal header, so a message using them cannot round-trip.
func CheckManufacturer(m manufacturer.Manufacturer) error {
	if b := m.Bytes(); len(b) == 1 && IsUniversalKind(b[0]) {
		return syxerr.New(syxerr.KindReservedManufacturer,
			"code %s marks a universal message", m)
	}
	return nil
}

// NewManufacturerMessage validates code and builds a manufacturer-specific
// message carrying a copy of payload.
func NewManufacturerMessage(code []byte, payload []byte) (*ManufacturerSpecific, error) {
	m, err := manufacturer.New(code)
	if err != nil {
		return nil, err
	}
	if err := CheckManufacturer(m); err != nil {
		return nil, err
	}
	return &ManufacturerSpecific{Manufacturer: m, Payload: clone(payload)}, nil
}

// NewUniversal builds a universal message carrying a copy of payload.
// kind must be UniversalNonRealTime or UniversalRealTime.
func NewUniversal(kind UniversalKind, target, subID1, subID2 byte, payload []byte) (*Universal, error) {
	if !IsUniversalKind(byte(kind)) {
		return nil, syxerr.New(syxerr.KindInvalidUniversalKind,
			"0x%02X is not 0x7E or 0x7F", byte(kind))
	}
	return &Universal{
		Kind:    kind,
		Target:  target,
		SubID1:  subID1,
		SubID2:  subID2,
		Payload: clone(payload),
	}, nil
}

// Equal reports whether a and b are the same variant with equal fields.
// A nil payload equals an empty one.
func Equal(a, b Message) bool {
	switch x := a.(type) {
	case *ManufacturerSpecific:
		y, ok := b.(*ManufacturerSpecific)
		return ok && x.Manufacturer.Equal(y.Manufacturer) && bytes.Equal(x.Payload, y.Payload)
	case *Universal:
		y, ok := b.(*Universal)
		return ok && x.Kind == y.Kind && x.Target == y.Target &&
			x.SubID1 == y.SubID1 && x.SubID2 == y.SubID2 &&
			bytes.Equal(x.Payload, y.Payload)
	default:
		return false
	}
}

// clone returns a non-nil copy of b.
func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
