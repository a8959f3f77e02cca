package inspect_test

import (
	"testing"

	"github.com/syxpack/syx-go/pkg/inspect"
	"github.com/syxpack/syx-go/pkg/sysex"
)

func TestUniversalSubIDName(t *testing.T) {
	tests := []struct {
		name string
		kind sysex.UniversalKind
		sub1 byte
		sub2 byte
		want string
	}{
		{"identity request", sysex.UniversalNonRealTime, 0x06, 0x01, "General Information, Identity Request"},
		{"gm on", sysex.UniversalNonRealTime, 0x09, 0x01, "General MIDI, General MIDI 1 System On"},
		{"master volume", sysex.UniversalRealTime, 0x04, 0x01, "Device Control, Master Volume"},
		{"unknown sub2", sysex.UniversalNonRealTime, 0x06, 0x7F, "General Information"},
		{"no sub2 table", sysex.UniversalNonRealTime, 0x7F, 0x00, "ACK"},
		{"same sub1 differs by kind", sysex.UniversalRealTime, 0x01, 0x01, "MIDI Time Code, Full Message"},
		{"unknown sub1", sysex.UniversalRealTime, 0x70, 0x00, ""},
		{"not universal", sysex.UniversalKind(0x42), 0x06, 0x01, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inspect.UniversalSubIDName(tt.kind, tt.sub1, tt.sub2)
			if got != tt.want {
				t.Errorf("UniversalSubIDName(%v, 0x%02X, 0x%02X) = %q, want %q", tt.kind, tt.sub1, tt.sub2, got, tt.want)
			}
		})
	}
}
