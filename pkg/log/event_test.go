package log

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirectionIn, "IN"},
		{DirectionOut, "OUT"},
		{Direction(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.dir.String()
		if got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryMessage, "MESSAGE"},
		{CategorySession, "SESSION"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.cat.String()
		if got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestVariantString(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{VariantUnparsed, "UNPARSED"},
		{VariantManufacturer, "MANUFACTURER"},
		{VariantUniversal, "UNIVERSAL"},
		{Variant(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.v.String()
		if got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

// Values are persisted in log files and must not change.
func TestEnumWireValues(t *testing.T) {
	if DirectionIn != 0 || DirectionOut != 1 {
		t.Error("Direction values changed")
	}
	if CategoryMessage != 0 || CategorySession != 1 || CategoryError != 2 {
		t.Error("Category values changed")
	}
	if VariantUnparsed != 0 || VariantManufacturer != 1 || VariantUniversal != 2 {
		t.Error("Variant values changed")
	}
}
