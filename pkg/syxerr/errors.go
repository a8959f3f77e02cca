// Package syxerr defines the closed set of error kinds reported by the
// System Exclusive core.
//
// Every failure returned by the parser, splitter and manufacturer packages is
// a *Error carrying one Kind. Callers can either compare against the
// package-level sentinels with errors.Is, or recover the kind with KindOf and
// switch over it exhaustively.
package syxerr

import (
	"errors"
	"fmt"
)

// Kind classifies a core error.
type Kind uint8

const (
	// KindUnknown is returned by KindOf for errors not produced by the core.
	KindUnknown Kind = iota

	// KindMalformedFraming indicates a missing or misplaced 0xF0/0xF7.
	KindMalformedFraming

	// KindTruncatedHeader indicates the buffer ended before the header was read.
	KindTruncatedHeader

	// KindInvalidManufacturerLength indicates a code that is not 1 or 3 bytes.
	KindInvalidManufacturerLength

	// KindInvalidManufacturerPrefix indicates a misplaced 0x00 extended marker.
	KindInvalidManufacturerPrefix

	// KindInvalidManufacturerValue indicates a code byte outside 0x00-0x7F.
	KindInvalidManufacturerValue

	// KindManufacturerNotFound indicates a registry name lookup miss.
	KindManufacturerNotFound

	// KindDecode indicates a text token that could not be decoded to bytes.
	KindDecode

	// KindDanglingMessage indicates an initiator with no terminator.
	KindDanglingMessage

	// KindReservedManufacturer indicates a valid manufacturer code (0x7E or
	// 0x7F) that cannot address a manufacturer-specific message because it
	// marks a universal message on the wire.
	KindReservedManufacturer

	// KindInvalidUniversalKind indicates a universal kind other than 0x7E/0x7F.
	KindInvalidUniversalKind
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMalformedFraming:
		return "MALFORMED_FRAMING"
	case KindTruncatedHeader:
		return "TRUNCATED_HEADER"
	case KindInvalidManufacturerLength:
		return "INVALID_MANUFACTURER_LENGTH"
	case KindInvalidManufacturerPrefix:
		return "INVALID_MANUFACTURER_PREFIX"
	case KindInvalidManufacturerValue:
		return "INVALID_MANUFACTURER_VALUE"
	case KindManufacturerNotFound:
		return "MANUFACTURER_NOT_FOUND"
	case KindDecode:
		return "DECODE_ERROR"
	case KindDanglingMessage:
		return "DANGLING_MESSAGE"
	case KindReservedManufacturer:
		return "RESERVED_MANUFACTURER"
	case KindInvalidUniversalKind:
		return "INVALID_UNIVERSAL_KIND"
	default:
		return "UNKNOWN"
	}
}

// description is the human-readable prefix used in Error().
func (k Kind) description() string {
	switch k {
	case KindMalformedFraming:
		return "malformed framing"
	case KindTruncatedHeader:
		return "truncated header"
	case KindInvalidManufacturerLength:
		return "invalid manufacturer length"
	case KindInvalidManufacturerPrefix:
		return "invalid manufacturer prefix"
	case KindInvalidManufacturerValue:
		return "invalid manufacturer value"
	case KindManufacturerNotFound:
		return "manufacturer not found"
	case KindDecode:
		return "decode error"
	case KindDanglingMessage:
		return "dangling message"
	case KindReservedManufacturer:
		return "reserved manufacturer"
	case KindInvalidUniversalKind:
		return "invalid universal kind"
	default:
		return "unknown error"
	}
}

// NoOffset marks an error that is not tied to a byte position.
const NoOffset = -1

// Error is a core error of a specific Kind.
type Error struct {
	Kind Kind

	// Offset is the byte offset the error refers to, or NoOffset.
	Offset int

	// Detail is an optional human-readable explanation.
	Detail string

	// Err is an optional underlying cause.
	Err error
}

// Sentinels for errors.Is comparisons. They match any *Error of the same kind.
var (
	ErrMalformedFraming          = &Error{Kind: KindMalformedFraming, Offset: NoOffset}
	ErrTruncatedHeader           = &Error{Kind: KindTruncatedHeader, Offset: NoOffset}
	ErrInvalidManufacturerLength = &Error{Kind: KindInvalidManufacturerLength, Offset: NoOffset}
	ErrInvalidManufacturerPrefix = &Error{Kind: KindInvalidManufacturerPrefix, Offset: NoOffset}
	ErrInvalidManufacturerValue  = &Error{Kind: KindInvalidManufacturerValue, Offset: NoOffset}
	ErrManufacturerNotFound      = &Error{Kind: KindManufacturerNotFound, Offset: NoOffset}
	ErrDecode                    = &Error{Kind: KindDecode, Offset: NoOffset}
	ErrDanglingMessage           = &Error{Kind: KindDanglingMessage, Offset: NoOffset}
	ErrReservedManufacturer      = &Error{Kind: KindReservedManufacturer, Offset: NoOffset}
	ErrInvalidUniversalKind      = &Error{Kind: KindInvalidUniversalKind, Offset: NoOffset}
)

// New creates an error of the given kind with a formatted detail.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: NoOffset, Detail: fmt.Sprintf(format, args...)}
}

// At creates an error of the given kind tied to a byte offset.
func At(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: NoOffset, Detail: fmt.Sprintf(format, args...), Err: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.description()
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
