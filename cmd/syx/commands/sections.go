package commands

import (
	"fmt"
	"io"

	"github.com/syxpack/syx-go/pkg/log"
	"github.com/syxpack/syx-go/pkg/sysex"
)

// SectionsOptions configures RunSections.
type SectionsOptions struct {
	// ShowBytes prints a preview of each section's bytes.
	ShowBytes bool
}

// RunSections lists the byte ranges of the single message in path.
func RunSections(env *Env, path string, opts SectionsOptions, w io.Writer) error {
	s := env.session("sections")
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
	sections, err := sysex.Analyze(m, len(raw))
	if err != nil {
		s.Error(path, "analyze", err)
		s.End(0)
		return fmt.Errorf("%s: %w", path, err)
	}
	s.Message(log.DirectionIn, path, 1, raw)

	var preview []byte
	if opts.ShowBytes {
		preview = raw
	}
	fmt.Fprint(w, env.formatter().FormatSections(sections, preview))

	s.End(1)
	return nil
}
