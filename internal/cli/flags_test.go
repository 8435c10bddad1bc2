package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"SubsLanguage", flags.SubsLanguage, "auto"},
		{"TargetLanguage", flags.TargetLanguage, "en"},
		{"Output", flags.Output, "output.txt"},
		{"InputExtension", flags.InputExtension, "txt"},
		{"MinWordSize", flags.MinWordSize, 1},
		{"MinAppearance", flags.MinAppearance, 4},
		{"Encoding", flags.Encoding, "utf-8"},
		{"Engine", flags.Engine, "google"},
		{"Jobs", flags.Jobs, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"JSONOutput", flags.JSONOutput},
		{"ListEngines", flags.ListEngines},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	if flags.CfgFile != "" {
		t.Errorf("CfgFile = %v, want empty string", flags.CfgFile)
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flags := &Flags{}
	flagsType := reflect.TypeOf(*flags)

	expectedFields := []string{
		"CfgFile", "SubsLanguage", "TargetLanguage", "Output",
		"InputExtension", "MinWordSize", "MinAppearance", "Encoding",
		"Engine", "Jobs", "JSONOutput", "ListEngines",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
