package log

import (
	"time"
)

// Event is one capture log record.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies one syx invocation (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates whether bytes were read or written.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Source is the file path, or "stdin" for received messages.
	Source string `cbor:"5,keyasint,omitempty"`

	// Index is the 1-based position of the message within Source.
	Index int `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Message *MessageEvent   `cbor:"7,keyasint,omitempty"`
	Session *SessionEvent   `cbor:"8,keyasint,omitempty"`
	Error   *ErrorEventData `cbor:"9,keyasint,omitempty"`
}

// Direction indicates the direction of data flow.
type Direction uint8

const (
	// DirectionIn indicates a message that was read or received.
	DirectionIn Direction = 0
	// DirectionOut indicates a message that was written.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a System Exclusive message.
	CategoryMessage Category = 0
	// CategorySession indicates the start or end of a command.
	CategorySession Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategorySession:
		return "SESSION"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MessageEvent describes one System Exclusive message.
type MessageEvent struct {
	// Size is the message size in bytes, framing included.
	Size int `cbor:"1,keyasint"`

	// Variant is the parsed message variant.
	Variant Variant `cbor:"2,keyasint"`

	// Manufacturer is the identifier as hex (manufacturer-specific only).
	Manufacturer string `cbor:"3,keyasint,omitempty"`

	// ManufacturerName is the registry name (manufacturer-specific only).
	ManufacturerName string `cbor:"4,keyasint,omitempty"`

	// UniversalKind is 0x7E or 0x7F (universal only).
	UniversalKind uint8 `cbor:"5,keyasint,omitempty"`

	// Digest is the hex content digest of the whole message.
	Digest string `cbor:"6,keyasint,omitempty"`

	// Data is the raw message (may be truncated for large messages).
	Data []byte `cbor:"7,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"8,keyasint,omitempty"`

	// Skipped counts input tokens dropped while assembling a received message.
	Skipped int `cbor:"9,keyasint,omitempty"`
}

// Variant is the message variant recorded in a MessageEvent.
type Variant uint8

const (
	// VariantUnparsed indicates bytes that did not parse as a message.
	VariantUnparsed Variant = 0
	// VariantManufacturer indicates a manufacturer-specific message.
	VariantManufacturer Variant = 1
	// VariantUniversal indicates a universal message.
	VariantUniversal Variant = 2
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantUnparsed:
		return "UNPARSED"
	case VariantManufacturer:
		return "MANUFACTURER"
	case VariantUniversal:
		return "UNIVERSAL"
	default:
		return "UNKNOWN"
	}
}

// SessionEvent marks the start or end of a command.
type SessionEvent struct {
	// Command is the syx subcommand name.
	Command string `cbor:"1,keyasint"`

	// State is SessionStarted or SessionEnded.
	State string `cbor:"2,keyasint"`

	// Messages is the number of messages handled (end only).
	Messages int `cbor:"3,keyasint,omitempty"`
}

// Session states.
const (
	SessionStarted = "STARTED"
	SessionEnded   = "ENDED"
)

// ErrorEventData captures an error.
type ErrorEventData struct {
	// Kind is the error kind name (see syxerr.Kind), or empty.
	Kind string `cbor:"1,keyasint,omitempty"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
