package cli

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate(NewFlags()); err != nil {
		t.Errorf("Expected default flags to validate, got: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Flags)
		wantErr string
	}{
		{
			name:    "unknown encoding",
			mutate:  func(f *Flags) { f.Encoding = "no-such-encoding" },
			wantErr: "encoding",
		},
		{
			name:    "malformed subtitle language",
			mutate:  func(f *Flags) { f.SubsLanguage = "not a language!" },
			wantErr: "subtitle language",
		},
		{
			name:    "malformed target language",
			mutate:  func(f *Flags) { f.TargetLanguage = "not a language!" },
			wantErr: "target language",
		},
		{
			name:    "unknown engine",
			mutate:  func(f *Flags) { f.Engine = "babelfish" },
			wantErr: "unknown translation engine",
		},
		{
			name:    "zero min_word_size",
			mutate:  func(f *Flags) { f.MinWordSize = 0 },
			wantErr: "min_word_size",
		},
		{
			name:    "zero min_appearance",
			mutate:  func(f *Flags) { f.MinAppearance = 0 },
			wantErr: "min_appearance",
		},
		{
			name:    "zero jobs",
			mutate:  func(f *Flags) { f.Jobs = 0 },
			wantErr: "jobs",
		},
		{
			name:    "empty output",
			mutate:  func(f *Flags) { f.Output = "" },
			wantErr: "output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			tt.mutate(flags)

			err := Validate(flags)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error to mention %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_AutoSubsLanguage(t *testing.T) {
	flags := NewFlags()
	flags.SubsLanguage = "auto"

	if err := Validate(flags); err != nil {
		t.Errorf("Expected 'auto' subtitle language to validate, got: %v", err)
	}
}

func TestValidate_RegionalLanguageTags(t *testing.T) {
	flags := NewFlags()
	flags.SubsLanguage = "pt-BR"
	flags.TargetLanguage = "zh-CN"

	if err := Validate(flags); err != nil {
		t.Errorf("Expected regional language tags to validate, got: %v", err)
	}
}
