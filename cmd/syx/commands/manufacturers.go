package commands

import (
	"fmt"
	"io"

	"github.com/syxpack/syx-go/pkg/inspect"
)

// RunManufacturers lists registry entries whose name contains query.
// An empty query lists everything.
func RunManufacturers(env *Env, query string, w io.Writer) error {
	entries := env.registry().Search(query)
	if len(entries) == 0 {
		fmt.Fprintf(w, "No manufacturers match %q\n", query)
		return nil
	}
	for _, e := range entries {
		fmt.Fprintln(w, inspect.FormatEntry(e))
	}
	return nil
}
