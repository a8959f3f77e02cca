package manufacturer

// Group is the geographic group a manufacturer code was allocated from.
type Group uint8

const (
	// GroupUnknown is returned for codes that are not valid manufacturer codes.
	GroupUnknown Group = iota
	// GroupAmerican covers 0x01-0x1F and 00 00-1F xx.
	GroupAmerican
	// GroupEuropean covers 0x20-0x3F and 00 20-3F xx.
	GroupEuropean
	// GroupJapanese covers 0x40-0x5F and 00 40-5F xx.
	GroupJapanese
	// GroupOther covers 0x60-0x7C and 00 60-7F xx.
	GroupOther
	// GroupSpecial covers 0x7D-0x7F (non-commercial and universal IDs).
	GroupSpecial
)

// String returns the group name.
func (g Group) String() string {
	switch g {
	case GroupAmerican:
		return "American"
	case GroupEuropean:
		return "European"
	case GroupJapanese:
		return "Japanese"
	case GroupOther:
		return "Other"
	case GroupSpecial:
		return "Special"
	default:
		return "Unknown"
	}
}

// GroupOf classifies a raw 1- or 3-byte code by byte range.
// It does not validate the code beyond its length.
func GroupOf(code []byte) Group {
	switch len(code) {
	case StandardLength:
		b := code[0]
		switch {
		case b == 0x00 || b > 0x7F:
			return GroupUnknown
		case b <= 0x1F:
			return GroupAmerican
		case b <= 0x3F:
			return GroupEuropean
		case b <= 0x5F:
			return GroupJapanese
		case b <= 0x7C:
			return GroupOther
		default:
			return GroupSpecial
		}
	case ExtendedLength:
		if code[0] != ExtendedPrefix {
			return GroupUnknown
		}
		b := code[1]
		switch {
		case b <= 0x1F:
			return GroupAmerican
		case b <= 0x3F:
			return GroupEuropean
		case b <= 0x5F:
			return GroupJapanese
		case b <= 0x7F:
			return GroupOther
		default:
			return GroupUnknown
		}
	default:
		return GroupUnknown
	}
}
