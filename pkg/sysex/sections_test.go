package sysex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syxpack/syx-go/pkg/syxerr"
)

func assertCoverage(t *testing.T, sections []Section, length int) {
	t.Helper()
	total := 0
	next := 0
	for _, s := range sections {
		assert.Equal(t, next, s.Offset, "section %q starts at %d, want %d", s.Name, s.Offset, next)
		next = s.End()
		total += s.Length
	}
	assert.Equal(t, length, total, "section lengths must sum to the buffer length")
}

func TestAnalyzeStandardManufacturer(t *testing.T) {
	buf := []byte{0xF0, 0x42, 0x30, 0x28, 0x54, 0xF7}
	_, sections, err := AnalyzeBuffer(buf)
	require.NoError(t, err)

	assert.Equal(t, []Section{
		{Kind: SectionInitiator, Name: NameInitiator, Offset: 0, Length: 1},
		{Kind: SectionManufacturerID, Name: NameManufacturer, Offset: 1, Length: 1},
		{Kind: SectionPayload, Name: NamePayload, Offset: 2, Length: 3},
		{Kind: SectionTerminator, Name: NameTerminator, Offset: 5, Length: 1},
	}, sections)
	assertCoverage(t, sections, len(buf))
}

func TestAnalyzeExtendedManufacturer(t *testing.T) {
	buf := []byte{0xF0, 0x00, 0x21, 0x09, 0x30, 0x28, 0xF7}
	_, sections, err := AnalyzeBuffer(buf)
	require.NoError(t, err)

	require.Len(t, sections, 4)
	assert.Equal(t, 3, sections[1].Length)
	assert.Equal(t, 4, sections[2].Offset)
	assert.Equal(t, 6, sections[3].Offset)
	assertCoverage(t, sections, len(buf))
}

func TestAnalyzeUniversal(t *testing.T) {
	buf := []byte{0xF0, 0x7E, 0x01, 0x06, 0x02, 0xF7}
	_, sections, err := AnalyzeBuffer(buf)
	require.NoError(t, err)

	assert.Equal(t, []Section{
		{Kind: SectionInitiator, Name: NameInitiator, Offset: 0, Length: 1},
		{Kind: SectionUniversalID, Name: NameUniversalKind, Offset: 1, Length: 1},
		{Kind: SectionUniversalID, Name: NameUniversalHeader, Offset: 2, Length: 3},
		{Kind: SectionPayload, Name: NamePayload, Offset: 5, Length: 0},
		{Kind: SectionTerminator, Name: NameTerminator, Offset: 5, Length: 1},
	}, sections)
	assertCoverage(t, sections, len(buf))
}

func TestAnalyzeCoverageProperty(t *testing.T) {
	bufs := [][]byte{
		{0xF0, 0x01, 0xF7},
		{0xF0, 0x00, 0x00, 0x0E, 0xF7},
		{0xF0, 0x7F, 0x7F, 0x04, 0x01, 0x00, 0x40, 0xF7},
		append(append([]byte{0xF0, 0x43}, make([]byte, 1000)...), 0xF7),
	}
	for _, b := range bufs {
		_, sections, err := AnalyzeBuffer(b)
		require.NoError(t, err)
		assertCoverage(t, sections, len(b))
	}
}

func TestAnalyzeLengthMismatch(t *testing.T) {
	m, err := Parse([]byte{0xF0, 0x42, 0x01, 0xF7})
	require.NoError(t, err)

	_, err = Analyze(m, 10)
	assert.ErrorIs(t, err, syxerr.ErrMalformedFraming)
}

func TestAnalyzeBufferPropagatesParseErrors(t *testing.T) {
	_, _, err := AnalyzeBuffer([]byte{0xF0, 0x00, 0xF7})
	assert.ErrorIs(t, err, syxerr.ErrTruncatedHeader)
}

func TestSectionKindString(t *testing.T) {
	assert.Equal(t, "Message initiator", SectionInitiator.String())
	assert.Equal(t, "Manufacturer identifier", SectionManufacturerID.String())
	assert.Equal(t, "Universal message identifier", SectionUniversalID.String())
	assert.Equal(t, "Message payload", SectionPayload.String())
	assert.Equal(t, "Message terminator", SectionTerminator.String())
}
