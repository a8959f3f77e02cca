package receive

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syxpack/syx-go/pkg/digest"
	syxlog "github.com/syxpack/syx-go/pkg/log"
	"github.com/syxpack/syx-go/pkg/manufacturer"
)

type memorySink struct {
	stored [][]byte
	err    error
}

func (m *memorySink) Store(data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.stored = append(m.stored, data)
	return "mem", nil
}

type recordingLogger struct {
	events []syxlog.Event
}

func (r *recordingLogger) Log(e syxlog.Event) {
	r.events = append(r.events, e)
}

const session = `note-on 1 60 100
system-exclusive hex 43 10 4C 00 00 7E 00
system-exclusive
clock
system-exclusive dec 65 16 ZZ 18
`

func TestReceiverRun(t *testing.T) {
	sink := &memorySink{}
	var out bytes.Buffer
	rec := &recordingLogger{}

	r := &Receiver{
		Lines:   NewScannerSource(strings.NewReader(session)),
		Sink:    sink,
		Out:     &out,
		Session: syxlog.NewSession(rec, "receive", manufacturer.Default(), digest.MD5),
	}
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, [][]byte{
		{0xF0, 0x43, 0x10, 0x4C, 0x00, 0x00, 0x7E, 0x00, 0xF7},
		{0xF0, 0x41, 0x10, 0x12, 0xF7},
	}, sink.stored)
	assert.Equal(t,
		"Received 9 bytes of System Exclusive data\nReceived 5 bytes of System Exclusive data\n",
		out.String())

	require.Len(t, rec.events, 2)
	assert.Equal(t, "Yamaha", rec.events[0].Message.ManufacturerName)
	assert.Equal(t, 2, rec.events[1].Index)
	assert.Equal(t, 1, rec.events[1].Message.Skipped)
}

func TestReceiverStopsOnSinkError(t *testing.T) {
	boom := errors.New("disk full")
	r := &Receiver{
		Lines: NewScannerSource(strings.NewReader("system-exclusive hex 01\nsystem-exclusive hex 02\n")),
		Sink:  &memorySink{err: boom},
	}
	err := r.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, r.Count())
}

func TestReceiverHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Receiver{
		Lines: NewScannerSource(strings.NewReader("system-exclusive hex 01\n")),
		Sink:  &memorySink{},
	}
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
}

func TestScannerSourceLongLine(t *testing.T) {
	long := "system-exclusive hex" + strings.Repeat(" 00", 100000)
	src := NewScannerSource(strings.NewReader(long))

	line, err := src.ReadLine()
	require.NoError(t, err)
	parsed, ok := ParseLine(line)
	require.True(t, ok)
	assert.Len(t, parsed.Tokens, 100000)
}

func TestReceiverLogsIgnoredLineTokenCount(t *testing.T) {
	var logs bytes.Buffer
	r := &Receiver{
		Lines:  NewScannerSource(strings.NewReader("note-on 1 60 100\n")),
		Sink:   &memorySink{},
		Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	require.NoError(t, r.Run(context.Background()))

	assert.Contains(t, logs.String(), `msg="ignoring line" tokens=4`)
}
