package tokenizer

import (
	"reflect"
	"slices"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple words",
			text: "cat dog cat bird cat dog",
			want: []string{"cat", "dog", "cat", "bird", "cat", "dog"},
		},
		{
			name: "case is normalized",
			text: "Cat CAT cAt",
			want: []string{"cat", "cat", "cat"},
		},
		{
			name: "digits separate words",
			text: "word 1234 w1rd",
			want: []string{"word", "w", "rd"},
		},
		{
			name: "punctuation separates words",
			text: "don't stop, believing!",
			want: []string{"don", "t", "stop", "believing"},
		},
		{
			name: "non-latin letters",
			text: "Здравей, свят! Здравей.",
			want: []string{"здравей", "свят", "здравей"},
		},
		{
			name: "accented letters stay together",
			text: "un café, s'il vous plaît",
			want: []string{"un", "café", "s", "il", "vous", "plaît"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "no letters at all",
			text: "12 34 ... !!",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Tokens(tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokens_Restartable(t *testing.T) {
	seq := Tokens("one two three")

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Second pass %v differs from first %v", second, first)
	}
}

func TestTokens_EarlyStop(t *testing.T) {
	var got []string
	for word := range Tokens("alpha beta gamma") {
		got = append(got, word)
		if len(got) == 2 {
			break
		}
	}

	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens with early stop = %v, want %v", got, want)
	}
}
