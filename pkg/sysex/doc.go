// Package sysex parses, splits, analyzes and encodes MIDI System Exclusive
// messages.
//
// # Wire Format
//
// Every message is framed by an initiator and a terminator:
//
//	F0 <header> <payload> F7
//
// The first header byte selects the header layout:
//   - 0x7E or 0x7F: universal message, 4 header bytes (kind, target, sub-ID1, sub-ID2)
//   - 0x00: extended manufacturer identifier, 3 header bytes
//   - anything else: standard manufacturer identifier, 1 header byte
//
// The header is self-describing, so Parse reads a message in one forward
// pass without backtracking.
//
// # Messages
//
// Message is a closed sum type with two variants, *ManufacturerSpecific and
// *Universal. Handle it with a type switch:
//
//	switch m := msg.(type) {
//	case *sysex.ManufacturerSpecific:
//	    ...
//	case *sysex.Universal:
//	    ...
//	}
//
// Stored fields never include the framing bytes; Encode adds them back.
//
// # Multiple Messages
//
// Dump files often hold several concatenated messages. Count and Split find
// the F0..F7 spans in a buffer and ignore stray bytes between them. A
// Splitter makes the treatment of an unterminated trailing message explicit,
// and Reader applies the same rules to a stream.
package sysex
