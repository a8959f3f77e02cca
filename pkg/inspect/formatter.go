// Package inspect formats System Exclusive messages for display.
package inspect

import (
	"fmt"
	"strings"

	"github.com/syxpack/syx-go/pkg/digest"
	"github.com/syxpack/syx-go/pkg/manufacturer"
	"github.com/syxpack/syx-go/pkg/sysex"
)

// Formatter formats inspection output.
type Formatter struct {
	// Registry resolves manufacturer names. Nil means manufacturer.Default().
	Registry *manufacturer.Registry

	// Digest selects the digest printed by FormatIdentify.
	Digest digest.Algorithm

	// ShowDigest includes the digest line.
	ShowDigest bool

	// ShowSubIDNames adds well-known names of universal sub-IDs.
	ShowSubIDNames bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter(reg *manufacturer.Registry) *Formatter {
	return &Formatter{
		Registry:       reg,
		Digest:         digest.MD5,
		ShowDigest:     true,
		ShowSubIDNames: true,
		IndentWidth:    2,
	}
}

func (f *Formatter) registry() *manufacturer.Registry {
	if f.Registry == nil {
		return manufacturer.Default()
	}
	return f.Registry
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatIdentify describes one message. raw is the framed message and is
// only used for the digest. index and count number the message within its
// file; the heading is omitted when count is 1.
func (f *Formatter) FormatIdentify(m sysex.Message, raw []byte, index, count int) string {
	var sb strings.Builder
	if count > 1 {
		fmt.Fprintf(&sb, "Message %d of %d\n", index, count)
	}

	switch m := m.(type) {
	case *sysex.ManufacturerSpecific:
		sb.WriteString("Manufacturer\n")
		sb.WriteString(f.Indent(1, fmt.Sprintf("Identifier: %x\n", m.Manufacturer.Bytes())))
		sb.WriteString(f.Indent(1, fmt.Sprintf("Name: %s\n", f.registry().Name(m.Manufacturer))))
		sb.WriteString(f.Indent(1, fmt.Sprintf("Group: %s\n", m.Manufacturer.Group())))
		fmt.Fprintf(&sb, "Payload: %s\n", FormatByteCount(len(m.Payload)))

	case *sysex.Universal:
		fmt.Fprintf(&sb, "Universal, kind: %s, target: %d, Sub ID1: %X Sub ID2: %X Payload: %s\n",
			m.Kind, m.Target, m.SubID1, m.SubID2, FormatByteCount(len(m.Payload)))
		if f.ShowSubIDNames {
			if name := UniversalSubIDName(m.Kind, m.SubID1, m.SubID2); name != "" {
				sb.WriteString(f.Indent(1, fmt.Sprintf("Message: %s\n", name)))
			}
		}
	}

	if f.ShowDigest {
		fmt.Fprintf(&sb, "%s digest: %s\n", strings.ToUpper(f.Digest.String()), f.Digest.Hex(raw))
	}
	return sb.String()
}

// FormatSection formats one section as "OOOOOO: name (kind, n bytes)".
func FormatSection(s sysex.Section) string {
	unit := "bytes"
	if s.Length == 1 {
		unit = "byte"
	}
	return fmt.Sprintf("%06X: %s (%s, %d %s)", s.Offset, s.Name, s.Kind, s.Length, unit)
}

// FormatSections formats sections one per line. With buf set, each line is
// followed by an indented preview of the section's bytes.
func (f *Formatter) FormatSections(sections []sysex.Section, buf []byte) string {
	var sb strings.Builder
	for _, s := range sections {
		sb.WriteString(FormatSection(s))
		sb.WriteString("\n")
		if buf != nil && s.Length > 0 && s.End() <= len(buf) {
			sb.WriteString(f.Indent(1, FormatBytesPreview(buf[s.Offset:s.End()], previewBytes)))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// previewBytes is the number of bytes shown by FormatSections.
const previewBytes = 16

// FormatBytesPreview formats up to max bytes as spaced hex, with an ellipsis
// when data is longer.
func FormatBytesPreview(data []byte, max int) string {
	if max <= 0 || len(data) <= max {
		return fmt.Sprintf("% X", data)
	}
	return fmt.Sprintf("% X ...", data[:max])
}

// FormatByteCount returns "1 byte" or "n bytes".
func FormatByteCount(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}

// FormatEntry formats a registry entry for listings.
func FormatEntry(e manufacturer.Entry) string {
	return fmt.Sprintf("%-6s  %-8s  %s", e.Manufacturer.String(), e.Group(), e.Name)
}
