// Package keypad maps letters onto the digits of a telephone keypad.
//
//	2 (A B C)   3 (D E F)   4 (G H I)
//	5 (J K L)   6 (M N O)   7 (P Q R S)
//	8 (T U V)   9 (W X Y Z)
package keypad

import (
	"errors"
	"fmt"
)

// MaxWordSize is the longest word that can be placed on a phone number,
// which is also the number of digits following the area code.
const MaxWordSize = 7

// ErrNotLetter is returned by Code for input containing anything other than ASCII letters.
var ErrNotLetter = errors.New("not a letter")

// letterDigits is indexed by letter - 'a'.
var letterDigits = [26]byte{
	'2', '2', '2',
	'3', '3', '3',
	'4', '4', '4',
	'5', '5', '5',
	'6', '6', '6',
	'7', '7', '7', '7',
	'8', '8', '8',
	'9', '9', '9', '9',
}

// Digit returns the keypad digit for a letter, ignoring case.
func Digit(r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return letterDigits[r-'a'], true
	case r >= 'A' && r <= 'Z':
		return letterDigits[r-'A'], true
	}
	return 0, false
}

// Code returns the digit string a word is dialed as.
func Code(word string) (string, error) {
	code := make([]byte, len(word))
	for i, r := range word {
		d, ok := Digit(r)
		if !ok {
			return "", fmt.Errorf("%w: %q in %q", ErrNotLetter, r, word)
		}
		code[i] = d
	}
	return string(code), nil
}

// IsWord reports whether s can be placed on a number: 1 to MaxWordSize ASCII letters.
func IsWord(s string) bool {
	if len(s) == 0 || len(s) > MaxWordSize {
		return false
	}
	for _, r := range s {
		if _, ok := Digit(r); !ok {
			return false
		}
	}
	return true
}

// Letters returns the lowercase letters printed on digit key d.
func Letters(d byte) string {
	var out []byte
	for i, ld := range letterDigits {
		if ld == d {
			out = append(out, byte('a'+i))
		}
	}
	return string(out)
}
