package receive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		ok     bool
		base   Base
		tokens []string
	}{
		{"hex", "system-exclusive hex 43 10 4C", true, Hex, []string{"43", "10", "4C"}},
		{"dec", "system-exclusive dec 67 16", true, Decimal, []string{"67", "16"}},
		{"unknown base is decimal", "system-exclusive oct 10", true, Decimal, []string{"10"}},
		{"extra whitespace", "  system-exclusive\thex   7E  \n", true, Hex, []string{"7E"}},
		{"too few tokens", "system-exclusive hex", false, 0, nil},
		{"other message", "note-on 1 60 100", false, 0, nil},
		{"empty", "", false, 0, nil},
		{"case sensitive literal", "System-Exclusive hex 01", false, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.base, got.Base)
			assert.Equal(t, tt.tokens, got.Tokens)
		})
	}
}

func TestAssembleSkipsBadTokens(t *testing.T) {
	line, ok := ParseLine("system-exclusive hex 30 ZZ 28")
	assert.True(t, ok)

	got := line.Assemble()
	assert.Equal(t, []byte{0xF0, 0x30, 0x28, 0xF7}, got.Data)
	assert.Equal(t, []string{"ZZ"}, got.Skipped)
}

func TestAssemble(t *testing.T) {
	tests := []struct {
		name    string
		base    Base
		tokens  []string
		want    []byte
		skipped int
	}{
		{"hex lowercase", Hex, []string{"7e", "7f", "06", "01"}, []byte{0xF0, 0x7E, 0x7F, 0x06, 0x01, 0xF7}, 0},
		{"decimal", Decimal, []string{"67", "0", "127"}, []byte{0xF0, 0x43, 0x00, 0x7F, 0xF7}, 0},
		{"decimal out of range", Decimal, []string{"256", "255"}, []byte{0xF0, 0xFF, 0xF7}, 1},
		{"hex in decimal base", Decimal, []string{"4C", "10"}, []byte{0xF0, 0x0A, 0xF7}, 1},
		{"all bad", Hex, []string{"G1", "-1"}, []byte{0xF0, 0xF7}, 2},
		{"no tokens", Hex, nil, []byte{0xF0, 0xF7}, 0},
		{"leading plus", Hex, []string{"+30", "28"}, []byte{0xF0, 0x30, 0x28, 0xF7}, 0},
		{"plus in decimal", Decimal, []string{"+65"}, []byte{0xF0, 0x41, 0xF7}, 0},
		{"bare or doubled plus", Hex, []string{"+", "++30", "30"}, []byte{0xF0, 0x30, 0xF7}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.base, tt.tokens)
			assert.Equal(t, tt.want, got.Data)
			assert.Len(t, got.Skipped, tt.skipped)
		})
	}
}

func TestBaseString(t *testing.T) {
	assert.Equal(t, "hex", Hex.String())
	assert.Equal(t, "dec", Decimal.String())
	assert.Equal(t, Hex, ParseBase("hex"))
	assert.Equal(t, Decimal, ParseBase("HEX"))
}
