package commands

import (
	"fmt"
	"io"

	"github.com/syxpack/syx-go/pkg/version"
)

// RunVersion prints the tool version, the registry schema version and the
// number of registry entries.
func RunVersion(env *Env, w io.Writer) error {
	fmt.Fprintf(w, "syx %s\n", version.Tool)
	fmt.Fprintf(w, "registry schema %s, %d manufacturers\n", version.RegistrySchema, env.registry().Len())
	return nil
}
