// Package receive turns ReceiveMIDI-style text lines into System Exclusive
// messages.
//
// A line looks like
//
//	system-exclusive hex 43 10 4C 00 00 7E 00
//
// The first token selects SysEx handling, the second the numeric base of the
// byte tokens that follow. Lines of any other shape are ignored.
package receive

import (
	"strconv"
	"strings"

	"github.com/syxpack/syx-go/pkg/sysex"
)

// SysExToken is the first token of a System Exclusive line.
const SysExToken = "system-exclusive"

// minLineTokens is the literal, the base and at least one byte.
const minLineTokens = 3

// Base is the numeric base of byte tokens.
type Base int

const (
	Decimal Base = 10
	Hex     Base = 16
)

// String returns "hex" or "dec".
func (b Base) String() string {
	if b == Hex {
		return "hex"
	}
	return "dec"
}

// ParseBase maps a base token to a Base. Only "hex" selects hexadecimal;
// everything else is decimal.
func ParseBase(tok string) Base {
	if tok == "hex" {
		return Hex
	}
	return Decimal
}

// Line is a recognized SysEx line.
type Line struct {
	Base   Base
	Tokens []string
}

// ParseLine splits line on whitespace and reports whether it is a SysEx line.
func ParseLine(line string) (Line, bool) {
	parts := strings.Fields(line)
	if len(parts) < minLineTokens || parts[0] != SysExToken {
		return Line{}, false
	}
	return Line{Base: ParseBase(parts[1]), Tokens: parts[2:]}, true
}

// Assembled is a framed message built from byte tokens.
type Assembled struct {
	// Data is 0xF0, the decoded bytes, then 0xF7.
	Data []byte
	// Skipped holds the tokens that did not parse as a byte in the base.
	Skipped []string
}

// Assemble decodes tokens in base and frames the result. Bad tokens are
// skipped and never abort the message.
func Assemble(base Base, tokens []string) Assembled {
	data := make([]byte, 0, len(tokens)+2)
	data = append(data, sysex.Initiator)

	var skipped []string
	for _, tok := range tokens {
		// One leading plus sign is accepted, as in "+30".
		v, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), int(base), 8)
		if err != nil {
			skipped = append(skipped, tok)
			continue
		}
		data = append(data, byte(v))
	}

	data = append(data, sysex.Terminator)
	return Assembled{Data: data, Skipped: skipped}
}

// Assemble frames the line's tokens.
func (l Line) Assemble() Assembled {
	return Assemble(l.Base, l.Tokens)
}
