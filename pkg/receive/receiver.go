package receive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	syxlog "github.com/syxpack/syx-go/pkg/log"
)

// Source is the capture log source name of received messages.
const Source = "stdin"

// Receiver reads lines from a LineSource and stores each SysEx line as a
// message in a Sink.
type Receiver struct {
	Lines   LineSource
	Sink    Sink
	Out     io.Writer
	Logger  *slog.Logger
	Session *syxlog.Session

	count int
}

// Count returns the number of messages stored so far.
func (r *Receiver) Count() int {
	return r.count
}

// Run processes lines until EOF, ctx cancellation or a sink error. EOF is
// not an error.
func (r *Receiver) Run(ctx context.Context) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := r.Lines.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		line, ok := ParseLine(text)
		if !ok {
			logger.Debug("ignoring line", "tokens", len(strings.Fields(text)))
			continue
		}

		msg := line.Assemble()
		if len(msg.Skipped) > 0 {
			logger.Warn("skipped unparseable byte tokens",
				"base", line.Base.String(),
				"skipped", len(msg.Skipped),
				"first", msg.Skipped[0])
		}

		fmt.Fprintf(out, "Received %d bytes of System Exclusive data\n", len(msg.Data))

		path, err := r.Sink.Store(msg.Data)
		if err != nil {
			if r.Session != nil {
				r.Session.Error(Source, "store", err)
			}
			return err
		}
		r.count++
		logger.Debug("stored message", "path", path, "size", len(msg.Data))
		if r.Session != nil {
			r.Session.MessageSkipped(syxlog.DirectionIn, Source, r.count, msg.Data, len(msg.Skipped))
		}
	}
}
