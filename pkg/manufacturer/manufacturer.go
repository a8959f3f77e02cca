package manufacturer

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/syxpack/syx-go/pkg/syxerr"
)

// ExtendedPrefix is the first byte of every 3-byte manufacturer code.
const ExtendedPrefix byte = 0x00

// Code lengths.
const (
	StandardLength = 1
	ExtendedLength = 3
)

// maxDataByte is the largest value a MIDI data byte can hold.
const maxDataByte byte = 0x7F

// Manufacturer is a validated 1- or 3-byte manufacturer identifier.
// The zero value is not a valid manufacturer; construct with New.
type Manufacturer struct {
	code [ExtendedLength]byte
	n    int
}

// New validates code and returns the Manufacturer it identifies.
//
// A standard code is a single byte in 0x01-0x7F. An extended code is three
// bytes, 0x00 followed by two data bytes.
func New(code []byte) (Manufacturer, error) {
	switch len(code) {
	case StandardLength:
		b := code[0]
		if b == ExtendedPrefix {
			return Manufacturer{}, syxerr.New(syxerr.KindInvalidManufacturerPrefix,
				"0x00 is only valid as the first byte of an extended code")
		}
		if b > maxDataByte {
			return Manufacturer{}, syxerr.New(syxerr.KindInvalidManufacturerValue,
				"standard code 0x%02X is outside 0x01-0x7F", b)
		}
	case ExtendedLength:
		if code[0] != ExtendedPrefix {
			return Manufacturer{}, syxerr.New(syxerr.KindInvalidManufacturerPrefix,
				"extended code must start with 0x00, got 0x%02X", code[0])
		}
		for i, b := range code[1:] {
			if b > maxDataByte {
				return Manufacturer{}, syxerr.New(syxerr.KindInvalidManufacturerValue,
					"extended code byte %d is 0x%02X", i+1, b)
			}
		}
	default:
		return Manufacturer{}, syxerr.New(syxerr.KindInvalidManufacturerLength,
			"code must be 1 or 3 bytes, got %d", len(code))
	}

	var m Manufacturer
	m.n = copy(m.code[:], code)
	return m, nil
}

// MustNew is like New but panics on an invalid code.
// It is intended for constant codes in tests and tables.
func MustNew(code ...byte) Manufacturer {
	m, err := New(code)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseHex parses a hex identifier such as "42" or "002109".
func ParseHex(s string) (Manufacturer, error) {
	s = strings.TrimSpace(s)
	code, err := hex.DecodeString(s)
	if err != nil {
		return Manufacturer{}, syxerr.Wrap(syxerr.KindDecode, err, "manufacturer identifier %q", s)
	}
	return New(code)
}

// Bytes returns a copy of the code bytes.
func (m Manufacturer) Bytes() []byte {
	out := make([]byte, m.n)
	copy(out, m.code[:m.n])
	return out
}

// Len returns the code length in bytes (1 or 3), or 0 for the zero value.
func (m Manufacturer) Len() int {
	return m.n
}

// IsValid reports whether m was produced by New.
func (m Manufacturer) IsValid() bool {
	return m.n == StandardLength || m.n == ExtendedLength
}

// IsExtended reports whether m is a 3-byte code.
func (m Manufacturer) IsExtended() bool {
	return m.n == ExtendedLength
}

// Group returns the geographic group implied by the code's byte range.
func (m Manufacturer) Group() Group {
	return GroupOf(m.code[:m.n])
}

// Equal reports whether m and other have the same code.
func (m Manufacturer) Equal(other Manufacturer) bool {
	return m.n == other.n && bytes.Equal(m.code[:m.n], other.code[:other.n])
}

// String returns the code as uppercase hex, e.g. "42" or "002109".
func (m Manufacturer) String() string {
	return strings.ToUpper(hex.EncodeToString(m.code[:m.n]))
}

// key is the registry map key for m.
func (m Manufacturer) key() string {
	return string(m.code[:m.n])
}

// GoString implements fmt.GoStringer for readable test failures.
func (m Manufacturer) GoString() string {
	parts := make([]string, m.n)
	for i, b := range m.code[:m.n] {
		parts[i] = fmt.Sprintf("0x%02X", b)
	}
	return "manufacturer.MustNew(" + strings.Join(parts, ", ") + ")"
}
