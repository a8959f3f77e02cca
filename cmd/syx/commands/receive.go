package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/syxpack/syx-go/pkg/receive"
)

// ReceiveOptions configures RunReceive.
type ReceiveOptions struct {
	// Dir receives the message files. Empty means the working directory.
	Dir         string
	Interactive bool
	Prompt      string
}

// RunReceive reads ReceiveMIDI lines from in (or an interactive prompt) and
// stores each System Exclusive line as a file.
func RunReceive(ctx context.Context, env *Env, opts ReceiveOptions, in io.Reader, w io.Writer) (int, error) {
	s := env.session("receive")
	s.Start()

	var lines receive.LineSource
	if opts.Interactive {
		p, err := receive.NewPromptSource(opts.Prompt)
		if err != nil {
			s.End(0)
			return 0, err
		}
		w = p.Stdout()
		lines = p
	} else {
		lines = receive.NewScannerSource(in)
	}
	defer lines.Close()

	r := &receive.Receiver{
		Lines:   lines,
		Sink:    receive.NewFileSink(opts.Dir),
		Out:     w,
		Logger:  env.logger(),
		Session: s,
	}
	err := r.Run(ctx)
	s.End(r.Count())
	if err != nil {
		return r.Count(), fmt.Errorf("receive: %w", err)
	}
	return r.Count(), nil
}
