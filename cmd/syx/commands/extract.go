package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/syxpack/syx-go/pkg/log"
)

// RunExtract writes the payload of the single message in path to output.
// The payload excludes framing and the manufacturer or universal header.
func RunExtract(env *Env, path, output string, w io.Writer) error {
	s := env.session("extract")
	s.Start()

	in, err := env.readInput(s, path)
	if err != nil {
		s.End(0)
		return err
	}
	raw, err := in.single()
	if err != nil {
		s.End(0)
		return err
	}

	m, err := parse(s, path, raw)
	if err != nil {
		s.End(0)
		return err
	}
	s.Message(log.DirectionIn, path, 1, raw)

	payload := m.Data()
	if err := os.WriteFile(output, payload, 0644); err != nil {
		s.Error(output, "write", err)
		s.End(1)
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	env.logger().Debug("extracted payload", "path", output, "size", len(payload))
	fmt.Fprintf(w, "Wrote %d payload bytes to %s\n", len(payload), output)

	s.End(1)
	return nil
}
