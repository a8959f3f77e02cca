// Package version provides the tool version and registry schema version helpers.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Tool is the syx release version. Overridden at build time with
// -ldflags "-X github.com/syxpack/syx-go/pkg/version.Tool=...".
var Tool = "0.5.0"

// RegistrySchema is the manufacturer registry document version this build reads.
const RegistrySchema = "1.0"

// SchemaVersion represents a parsed "major.minor" document version.
type SchemaVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (SchemaVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return SchemaVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v SchemaVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v SchemaVersion) Compatible(other SchemaVersion) bool {
	return v.Major == other.Major
}

// CheckRegistrySchema returns an error unless doc is a version string
// compatible with RegistrySchema. An empty doc is treated as RegistrySchema.
func CheckRegistrySchema(doc string) error {
	if doc == "" {
		return nil
	}
	got, err := Parse(doc)
	if err != nil {
		return err
	}
	want, _ := Parse(RegistrySchema)
	if !want.Compatible(got) {
		return fmt.Errorf("unsupported registry schema %s (this build reads %s)", got, want)
	}
	return nil
}
