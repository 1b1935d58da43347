package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"only whitespace", " \t\n\r\v\f ", []string{}},
		{"simple lowercase", "hello world", []string{"hello", "world"}},
		{"with punctuation", "hello, world!", []string{"hello", "world"}},
		{"with numbers", "item123 test", []string{"item123", "test"}},
		{"leading/trailing spaces", "  hello world  ", []string{"hello", "world"}},
		{"multiple spaces between words", "hello   world", []string{"hello", "world"}},
		{"tabs and newlines", "hello\tbig\nworld", []string{"hello", "big", "world"}},
		{"all caps word", "HELLO WORLD", []string{"hello", "world"}},
		{"hyphen is stripped not split", "state-of-the-art", []string{"stateoftheart"}},
		{"underscore is stripped", "my_variable_name", []string{"myvariablename"}},
		{"punctuation-only chunk vanishes", "before -- after", []string{"before", "after"}},
		{"only symbols", "!@#$%^", []string{}},
		{"only numbers", "12345 67890", []string{"12345", "67890"}},
		{"version string", "API_v1.0-beta!", []string{"apiv10beta"}},
		{"camelCase is not split", "theOffice", []string{"theoffice"}},
		{"non-ascii bytes are stripped", "café naïve", []string{"caf", "nave"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokens(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize_Restartable(t *testing.T) {
	seq := Tokenize("One two, THREE")

	var first, second []string
	for token := range seq {
		first = append(first, token)
	}
	for token := range seq {
		second = append(second, token)
	}

	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("first pass = %v, want %v", first, want)
	}
	if !reflect.DeepEqual(second, want) {
		t.Errorf("second pass = %v, want %v", second, want)
	}
}

func TestTokenize_EarlyStop(t *testing.T) {
	var got []string
	for token := range Tokenize("alpha beta gamma delta") {
		got = append(got, token)
		if len(got) == 2 {
			break
		}
	}

	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"already lower", "already lower"},
		{"MiXeD CaSe 123", "mixed case 123"},
		{"Punctuation-Stays!", "punctuation-stays!"},
		{"ÉCOLE", "École"}, // only ASCII letters are folded
	}

	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFieldsAndCountWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "   \n\t ", []string{}},
		{"punctuation kept", "wait -- what?", []string{"wait", "--", "what?"}},
		{"mixed whitespace", "a\tb\nc  d", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fields(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Fields(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Fields(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
			if n := CountWords(tt.input); n != len(tt.want) {
				t.Errorf("CountWords(%q) = %d, want %d", tt.input, n, len(tt.want))
			}
		})
	}
}
