package manufacturer

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/syxpack/syx-go/pkg/syxerr"
	"github.com/syxpack/syx-go/pkg/version"
)

// UnknownName is reported for codes that have no registry entry.
const UnknownName = "Unknown"

//go:embed registry.yaml
var embeddedRegistry []byte

// Entry is one registry row.
type Entry struct {
	Manufacturer Manufacturer
	Name         string
}

// Group returns the entry's geographic group.
func (e Entry) Group() Group {
	return e.Manufacturer.Group()
}

// Registry is a read-only table of manufacturer codes and names.
// It is safe for concurrent use once constructed.
type Registry struct {
	entries []Entry
	byCode  map[string]int
}

// registryDocument is the YAML layout of a registry file.
type registryDocument struct {
	Version       string          `yaml:"version"`
	Manufacturers []registryEntry `yaml:"manufacturers"`
}

type registryEntry struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// NewRegistry builds a registry from entries, keeping their order.
// Entries must have valid codes, non-empty names and unique codes.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if !e.Manufacturer.IsValid() {
			return nil, fmt.Errorf("entry %d (%q): invalid manufacturer code", i, e.Name)
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("entry %d (%s): name is required", i, e.Manufacturer)
		}
		k := e.Manufacturer.key()
		if prev, dup := r.byCode[k]; dup {
			return nil, fmt.Errorf("entry %d (%q): code %s already used by %q",
				i, e.Name, e.Manufacturer, r.entries[prev].Name)
		}
		r.byCode[k] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// LoadRegistry parses a YAML registry document.
func LoadRegistry(data []byte) (*Registry, error) {
	var doc registryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}
	if err := version.CheckRegistrySchema(doc.Version); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(doc.Manufacturers))
	for i, raw := range doc.Manufacturers {
		m, err := ParseHex(raw.Code)
		if err != nil {
			return nil, fmt.Errorf("registry entry %d (%q): %w", i, raw.Name, err)
		}
		entries = append(entries, Entry{Manufacturer: m, Name: strings.TrimSpace(raw.Name)})
	}
	return NewRegistry(entries)
}

// LoadRegistryFile reads and parses a YAML registry file.
func LoadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}
	r, err := LoadRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded table.
// It is parsed once; the embedded data is covered by tests, so a parse
// failure is a build defect and panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := LoadRegistry(embeddedRegistry)
		if err != nil {
			panic(fmt.Sprintf("embedded manufacturer registry: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of all entries in table order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// LookupByCode returns the entry for m's exact code.
func (r *Registry) LookupByCode(m Manufacturer) (Entry, bool) {
	i, ok := r.byCode[m.key()]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Name returns the registered name of m, or UnknownName.
func (r *Registry) Name(m Manufacturer) string {
	if e, ok := r.LookupByCode(m); ok {
		return e.Name
	}
	return UnknownName
}

// LookupByName resolves a manufacturer by name (case-insensitive).
// An exact name match wins over a prefix match; among prefix matches the
// first entry in table order is returned.
func (r *Registry) LookupByName(query string) (Manufacturer, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Manufacturer{}, syxerr.New(syxerr.KindManufacturerNotFound, "empty name")
	}

	prefix := -1
	for i, e := range r.entries {
		name := strings.ToLower(e.Name)
		if name == q {
			return e.Manufacturer, nil
		}
		if prefix < 0 && strings.HasPrefix(name, q) {
			prefix = i
		}
	}
	if prefix >= 0 {
		return r.entries[prefix].Manufacturer, nil
	}
	return Manufacturer{}, syxerr.New(syxerr.KindManufacturerNotFound, "%q", query)
}

// Search returns every entry whose name contains query (case-insensitive).
// An empty query returns all entries.
func (r *Registry) Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.Entries()
	}
	var out []Entry
	for _, e := range r.entries {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}
