package commands

import (
	"fmt"
	"io"

	"github.com/syxpack/syx-go/pkg/log"
)

// RunIdentify describes every message in path.
func RunIdentify(env *Env, path string, w io.Writer) error {
	s := env.session("identify")
	s.Start()

	in, err := env.readInput(s, path)
	if err != nil {
		s.End(0)
		return err
	}

	f := env.formatter()
	count := len(in.messages)
	for i, raw := range in.messages {
		m, err := parse(s, path, raw)
		if err != nil {
			s.End(i)
			return err
		}
		s.Message(log.DirectionIn, path, i+1, raw)

		fmt.Fprint(w, f.FormatIdentify(m, raw, i+1, count))
		fmt.Fprintln(w)
	}

	s.End(count)
	return nil
}
