package sysex

// EncodedLen returns the number of wire bytes Encode produces for m.
func EncodedLen(m Message) int {
	return 1 + headerLen(m) + len(m.Data()) + 1
}

// Encode serializes m to wire bytes: initiator, header, payload, terminator.
// It is the inverse of Parse for messages returned by Parse,
// NewManufacturerMessage and NewUniversal. Struct literals are not checked.
func Encode(m Message) []byte {
	out := make([]byte, 0, EncodedLen(m))
	out = append(out, Initiator)
	out = append(out, m.Header()...)
	out = append(out, m.Data()...)
	return append(out, Terminator)
}

func headerLen(m Message) int {
	switch v := m.(type) {
	case *ManufacturerSpecific:
		return v.Manufacturer.Len()
	case *Universal:
		return UniversalHeaderLength
	default:
		return len(m.Header())
	}
}
