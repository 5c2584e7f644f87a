package keypad

import (
	"errors"
	"testing"
)

func TestCode(t *testing.T) {
	testCases := []struct {
		word     string
		expected string
	}{
		{"a", "2"},
		{"abc", "222"},
		{"def", "333"},
		{"ghi", "444"},
		{"jkl", "555"},
		{"mno", "666"},
		{"pqrs", "7777"},
		{"tuv", "888"},
		{"wxyz", "9999"},
		{"cougar", "268427"},
		{"Cougar", "268427"},
		{"HELLO", "43556"},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			code, err := Code(tc.word)
			if err != nil {
				t.Fatalf("Code(%q) returned error: %v", tc.word, err)
			}
			if code != tc.expected {
				t.Errorf("Code(%q): expected %s, got %s", tc.word, tc.expected, code)
			}
		})
	}
}

func TestCodeRejectsNonLetters(t *testing.T) {
	for _, word := range []string{"a1", "it's", "naïve", "a b"} {
		if _, err := Code(word); !errors.Is(err, ErrNotLetter) {
			t.Errorf("Code(%q): expected ErrNotLetter, got %v", word, err)
		}
	}
}

func TestIsWord(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"a", true},
		{"Phone", true},
		{"numbers", true},
		{"toolongs", false},
		{"e-mail", false},
		{"abc123", false},
	}

	for _, tc := range testCases {
		if got := IsWord(tc.input); got != tc.expected {
			t.Errorf("IsWord(%q): expected %v, got %v", tc.input, tc.expected, got)
		}
	}
}

func TestLetters(t *testing.T) {
	if got := Letters('7'); got != "pqrs" {
		t.Errorf("expected pqrs, got %s", got)
	}
	if got := Letters('1'); got != "" {
		t.Errorf("expected no letters on 1, got %s", got)
	}
}
