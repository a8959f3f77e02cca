package sysex

import (
	"github.com/syxpack/syx-go/pkg/syxerr"
)

// SectionKind classifies a byte range of a message.
type SectionKind uint8

const (
	SectionInitiator SectionKind = iota
	SectionManufacturerID
	SectionUniversalID
	SectionPayload
	SectionTerminator
)

// String returns the display name of the section kind.
func (k SectionKind) String() string {
	switch k {
	case SectionInitiator:
		return "Message initiator"
	case SectionManufacturerID:
		return "Manufacturer identifier"
	case SectionUniversalID:
		return "Universal message identifier"
	case SectionPayload:
		return "Message payload"
	case SectionTerminator:
		return "Message terminator"
	default:
		return "Unknown section"
	}
}

// Section is a labeled byte range of a message.
type Section struct {
	Kind   SectionKind
	Name   string
	Offset int // from message start, inclusive
	Length int
}

// End returns the offset one past the section.
func (s Section) End() int {
	return s.Offset + s.Length
}

// Section names.
const (
	NameInitiator       = "System Exclusive Initiator"
	NameManufacturer    = "Manufacturer"
	NameUniversalKind   = "Universal kind"
	NameUniversalHeader = "Universal header"
	NamePayload         = "Message Payload"
	NameTerminator      = "System Exclusive Terminator"
)

// Analyze decomposes m, whose wire form is length bytes long, into sections
// that cover every byte exactly once, in order.
//
// The universal header is reported as two sections: the 0x7E/0x7F kind byte
// and the 3-byte target/sub-ID block. The payload section is always present
// and may be empty.
func Analyze(m Message, length int) ([]Section, error) {
	if want := EncodedLen(m); length != want {
		return nil, syxerr.New(syxerr.KindMalformedFraming,
			"buffer length %d does not match encoded length %d", length, want)
	}

	sections := make([]Section, 0, 5)
	sections = append(sections, Section{Kind: SectionInitiator, Name: NameInitiator, Offset: 0, Length: 1})
	offset := 1

	switch v := m.(type) {
	case *ManufacturerSpecific:
		n := v.Manufacturer.Len()
		sections = append(sections, Section{Kind: SectionManufacturerID, Name: NameManufacturer, Offset: offset, Length: n})
		offset += n
	case *Universal:
		sections = append(sections,
			Section{Kind: SectionUniversalID, Name: NameUniversalKind, Offset: offset, Length: 1},
			Section{Kind: SectionUniversalID, Name: NameUniversalHeader, Offset: offset + 1, Length: UniversalHeaderLength - 1},
		)
		offset += UniversalHeaderLength
	}

	sections = append(sections,
		Section{Kind: SectionPayload, Name: NamePayload, Offset: offset, Length: len(m.Data())},
		Section{Kind: SectionTerminator, Name: NameTerminator, Offset: length - 1, Length: 1},
	)
	return sections, nil
}

// AnalyzeBuffer parses buf and decomposes it into sections.
func AnalyzeBuffer(buf []byte) (Message, []Section, error) {
	m, err := Parse(buf)
	if err != nil {
		return nil, nil, err
	}
	sections, err := Analyze(m, len(buf))
	if err != nil {
		return nil, nil, err
	}
	return m, sections, nil
}
