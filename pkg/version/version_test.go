package version

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		major uint16
		minor uint16
	}{
		{"1.0", 1, 0},
		{"1.1", 1, 1},
		{"2.0", 2, 0},
		{"10.23", 10, 23},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v.Major != tt.major {
				t.Errorf("Major = %d, want %d", v.Major, tt.major)
			}
			if v.Minor != tt.minor {
				t.Errorf("Minor = %d, want %d", v.Minor, tt.minor)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"1",
		"abc",
		"1.0.0",
		"1.x",
		"-1.0",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestSchemaVersion_String(t *testing.T) {
	v := SchemaVersion{Major: 1, Minor: 2}
	if got := v.String(); got != "1.2" {
		t.Errorf("String() = %q, want %q", got, "1.2")
	}
}

func TestCheckRegistrySchema(t *testing.T) {
	tests := []struct {
		doc     string
		wantErr bool
	}{
		{"", false},
		{"1.0", false},
		{"1.7", false},
		{"2.0", true},
		{"one", true},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			err := CheckRegistrySchema(tt.doc)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckRegistrySchema(%q) error = %v, wantErr %v", tt.doc, err, tt.wantErr)
			}
		})
	}
}
