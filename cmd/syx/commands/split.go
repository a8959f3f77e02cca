package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/syxpack/syx-go/pkg/log"
)

// defaultExt is used for split output when the input has no extension.
const defaultExt = ".syx"

// SplitOptions configures RunSplit.
type SplitOptions struct {
	// Dir receives the output files. Empty means the working directory.
	Dir     string
	Verbose bool
}

// SplitName returns the output name of message n (1-based) of path:
// "<stem>-NNN<ext>".
func SplitName(path string, n int) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = defaultExt
	}
	return fmt.Sprintf("%s-%03d%s", stem, n, ext)
}

// RunSplit writes each message of a multi-message file to its own file.
// A single-message file is left alone. It returns the written paths.
func RunSplit(env *Env, path string, opts SplitOptions, w io.Writer) ([]string, error) {
	s := env.session("split")
	s.Start()

	in, err := env.readInput(s, path)
	if err != nil {
		s.End(0)
		return nil, err
	}

	count := len(in.messages)
	if opts.Verbose {
		if count == 1 {
			fmt.Fprintln(w, "Found one message")
		} else {
			fmt.Fprintf(w, "Found %d messages\n", count)
		}
	}
	if count == 1 {
		env.logger().Info("nothing to split", "path", path)
		s.End(0)
		return nil, nil
	}

	written := make([]string, 0, count)
	for i, raw := range in.messages {
		out := filepath.Join(opts.Dir, SplitName(path, i+1))
		if opts.Verbose {
			fmt.Fprintf(w, "Writing %s\n", out)
		}
		if err := os.WriteFile(out, raw, 0644); err != nil {
			s.Error(out, "write", err)
			s.End(len(written))
			return written, fmt.Errorf("failed to write %s: %w", out, err)
		}
		s.Message(log.DirectionOut, out, i+1, raw)
		written = append(written, out)
	}

	s.End(len(written))
	return written, nil
}
