package sysex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syxpack/syx-go/pkg/syxerr"
)

func TestSplitTwoMessages(t *testing.T) {
	buf := []byte{0xF0, 0x42, 0x01, 0xF7, 0xF0, 0x43, 0x02, 0xF7}

	assert.Equal(t, 2, Count(buf))
	assert.Equal(t, [][]byte{
		{0xF0, 0x42, 0x01, 0xF7},
		{0xF0, 0x43, 0x02, 0xF7},
	}, Split(buf))
}

func TestSplitCases(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want [][]byte
	}{
		{
			name: "empty",
			buf:  nil,
			want: [][]byte{},
		},
		{
			name: "single message",
			buf:  []byte{0xF0, 0x7E, 0x01, 0x06, 0x02, 0xF7},
			want: [][]byte{{0xF0, 0x7E, 0x01, 0x06, 0x02, 0xF7}},
		},
		{
			name: "stray bytes around and between",
			buf:  []byte{0x00, 0x01, 0xF0, 0x42, 0xF7, 0x55, 0xF7, 0xF0, 0x43, 0xF7, 0x99},
			want: [][]byte{{0xF0, 0x42, 0xF7}, {0xF0, 0x43, 0xF7}},
		},
		{
			name: "later initiator restarts open message",
			buf:  []byte{0xF0, 0x42, 0x01, 0xF0, 0x43, 0x02, 0xF7},
			want: [][]byte{{0xF0, 0x43, 0x02, 0xF7}},
		},
		{
			name: "dangling trailing message is dropped",
			buf:  []byte{0xF0, 0x42, 0xF7, 0xF0, 0x43, 0x01},
			want: [][]byte{{0xF0, 0x42, 0xF7}},
		},
		{
			name: "only terminators",
			buf:  []byte{0xF7, 0xF7},
			want: [][]byte{},
		},
		{
			name: "bare framing",
			buf:  []byte{0xF0, 0xF7},
			want: [][]byte{{0xF0, 0xF7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.buf)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), Count(tt.buf))
		})
	}
}

func TestCountMatchesSplitForBalancedInput(t *testing.T) {
	var buf []byte
	for i := 0; i < 50; i++ {
		buf = append(buf, 0x12) // stray
		buf = append(buf, 0xF0, 0x41, byte(i), 0x10, 0xF7)
	}
	assert.Equal(t, 50, Count(buf))
	assert.Len(t, Split(buf), Count(buf))
}

func TestSplitAliasesBuffer(t *testing.T) {
	buf := []byte{0xF0, 0x42, 0x01, 0xF7, 0xF0, 0x43, 0x02, 0xF7}
	parts := Split(buf)
	require.Len(t, parts, 2)

	// Appending to one part must not overwrite the next.
	_ = append(parts[0], 0xAA)
	assert.Equal(t, byte(0xF0), buf[4])
}

func TestSplitterSpans(t *testing.T) {
	buf := []byte{0x01, 0xF0, 0x42, 0xF7, 0xF0, 0x00, 0x21, 0x09, 0xF7}

	spans, err := Splitter{}.Spans(buf)
	require.NoError(t, err)
	assert.Equal(t, []Span{{Start: 1, End: 4}, {Start: 4, End: 9}}, spans)
	assert.Equal(t, 5, spans[1].Len())
}

func TestSplitterRejectsDangling(t *testing.T) {
	buf := []byte{0xF0, 0x42, 0xF7, 0x00, 0xF0, 0x43, 0x01}

	s := Splitter{Policy: DanglingReject}
	_, err := s.Split(buf)
	require.ErrorIs(t, err, syxerr.ErrDanglingMessage)

	var e *syxerr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 4, e.Offset)

	spans, err := s.Spans(buf)
	assert.Error(t, err)
	assert.Len(t, spans, 1, "complete spans are still reported")

	parts, err := s.Split([]byte{0xF0, 0x42, 0xF7})
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}

func TestParseDanglingPolicy(t *testing.T) {
	p, err := ParseDanglingPolicy("reject")
	require.NoError(t, err)
	assert.Equal(t, DanglingReject, p)

	p, err = ParseDanglingPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DanglingDrop, p)
	assert.Equal(t, "drop", p.String())

	_, err = ParseDanglingPolicy("keep")
	assert.ErrorIs(t, err, syxerr.ErrDecode)
}
