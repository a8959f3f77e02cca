package inspect

import (
	"github.com/syxpack/syx-go/pkg/sysex"
)

type subID struct {
	name string
	sub2 map[byte]string
}

// Universal sub-ID names per kind, keyed by sub-ID #1.
var (
	nonRealTimeNames = map[byte]subID{
		0x01: {name: "Sample Dump Header"},
		0x02: {name: "Sample Data Packet"},
		0x03: {name: "Sample Dump Request"},
		0x04: {name: "MIDI Time Code"},
		0x05: {name: "Sample Dump Extensions"},
		0x06: {name: "General Information", sub2: map[byte]string{
			0x01: "Identity Request",
			0x02: "Identity Reply",
		}},
		0x07: {name: "File Dump"},
		0x08: {name: "MIDI Tuning Standard"},
		0x09: {name: "General MIDI", sub2: map[byte]string{
			0x01: "General MIDI 1 System On",
			0x02: "General MIDI System Off",
			0x03: "General MIDI 2 System On",
		}},
		0x0A: {name: "Downloadable Sounds"},
		0x0B: {name: "File Reference Message"},
		0x0C: {name: "MIDI Visual Control"},
		0x0D: {name: "MIDI Capability Inquiry"},
		0x7B: {name: "End of File"},
		0x7C: {name: "Wait"},
		0x7D: {name: "Cancel"},
		0x7E: {name: "NAK"},
		0x7F: {name: "ACK"},
	}

	realTimeNames = map[byte]subID{
		0x01: {name: "MIDI Time Code", sub2: map[byte]string{
			0x01: "Full Message",
			0x02: "User Bits",
		}},
		0x02: {name: "MIDI Show Control"},
		0x03: {name: "Notation Information"},
		0x04: {name: "Device Control", sub2: map[byte]string{
			0x01: "Master Volume",
			0x02: "Master Balance",
			0x03: "Master Fine Tuning",
			0x04: "Master Coarse Tuning",
			0x05: "Global Parameter Control",
		}},
		0x05: {name: "Real Time MTC Cueing"},
		0x06: {name: "MIDI Machine Control Commands"},
		0x07: {name: "MIDI Machine Control Responses"},
		0x08: {name: "MIDI Tuning Standard"},
		0x09: {name: "Controller Destination Setting"},
		0x0A: {name: "Key-based Instrument Control"},
		0x0B: {name: "Scalable Polyphony MIDI MIP Message"},
		0x0C: {name: "Mobile Phone Control Message"},
	}
)

// UniversalSubIDName returns a name for the sub-ID pair, e.g.
// "General Information, Identity Request", or "" if sub-ID #1 is unknown.
// An unknown sub-ID #2 yields the sub-ID #1 name alone.
func UniversalSubIDName(kind sysex.UniversalKind, sub1, sub2 byte) string {
	var table map[byte]subID
	switch kind {
	case sysex.UniversalNonRealTime:
		table = nonRealTimeNames
	case sysex.UniversalRealTime:
		table = realTimeNames
	default:
		return ""
	}

	id, ok := table[sub1]
	if !ok {
		return ""
	}
	if name, ok := id.sub2[sub2]; ok {
		return id.name + ", " + name
	}
	return id.name
}
