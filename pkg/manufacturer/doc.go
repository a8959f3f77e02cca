// Package manufacturer models MIDI manufacturer identifiers and the registry
// that maps them to names.
//
// A standard identifier is one byte in 0x01-0x7F. When the single-byte space
// ran out, extended identifiers were introduced: three bytes, the first of
// which is always 0x00.
//
// # Registry
//
// The registry is plain data. Default returns the table embedded in this
// package; LoadRegistryFile reads an alternative table with the same YAML
// layout:
//
//	version: "1.0"
//	manufacturers:
//	  - code: "42"
//	    name: Korg
//	  - code: "002109"
//	    name: Native Instruments
//
// A *Registry is immutable and is passed explicitly to the code that needs
// names, so lookups never depend on global state.
package manufacturer
