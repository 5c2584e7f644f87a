package numeronym

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
)

// AreaCodeLength is the number of leading digits that are printed but never searched.
const AreaCodeLength = 3

// Number is a phone number split into the part shown as-is and the part spelled with words.
type Number struct {
	Raw      string
	AreaCode string
	Digits   string
}

// Result pairs a number with the paths found for it.
type Result struct {
	Number Number
	Paths  []Path
}

// ParseNumber strips whitespace from raw and splits it into area code and digits.
// Anything other than AreaCodeLength+SequenceLength decimal digits is rejected.
func ParseNumber(raw string) (Number, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if len(compact) != AreaCodeLength+SequenceLength {
		return Number{}, fmt.Errorf("%w: %q is not a %d digit phone number",
			ErrInvalidSequence, raw, AreaCodeLength+SequenceLength)
	}
	n := Number{
		Raw:      compact,
		AreaCode: compact[:AreaCodeLength],
		Digits:   compact[AreaCodeLength:],
	}
	for i := 0; i < AreaCodeLength; i++ {
		if n.AreaCode[i] < '0' || n.AreaCode[i] > '9' {
			return Number{}, fmt.Errorf("%w: area code %q is not numeric", ErrInvalidSequence, n.AreaCode)
		}
	}
	if err := validateDigits(n.Digits); err != nil {
		return Number{}, err
	}
	return n, nil
}

// Solve runs Generate on the searchable digits of n.
func Solve(n Number, ix *lexicon.Index) (Result, error) {
	store, err := Generate(n.Digits, ix)
	if err != nil {
		return Result{Number: n}, fmt.Errorf("number %s: %w", n.Raw, err)
	}
	return Result{Number: n, Paths: store.Paths()}, nil
}
