/*
Package numeronym finds every way to spell the last seven digits of a phone
number as a run of dictionary words.

A number such as 250-466-3277 is split into its area code (250) and the seven
digits that are searched (4663277). Generate walks every way of cutting those
digits into spans, longest span first, and keeps each cut whose spans all dial
as at least one dictionary word:

	b := lexicon.NewBuilder()
	b.Add("home")
	b.Add("good")
	b.Add("app")
	store, err := numeronym.Generate("4663277", b.Build())
	// one path: [good home] [app]

Words sharing a code are not separate paths. A Step records the whole run of
tied words, so the number of paths is the number of distinct cuts.
*/
package numeronym

import (
	"fmt"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/keypad"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
)

// SequenceLength is the number of digits searched for words.
const SequenceLength = keypad.MaxWordSize

// enumerator holds the state of one Generate call.
type enumerator struct {
	digits  string
	index   *lexicon.Index
	scratch []Step
	store   *Store
}

// Generate returns every segmentation of digits into dictionary words.
// A number with no segmentation gives an empty Store and a nil error.
func Generate(digits string, ix *lexicon.Index) (*Store, error) {
	if err := validateDigits(digits); err != nil {
		return nil, err
	}
	e := &enumerator{
		digits:  digits,
		index:   ix,
		scratch: make([]Step, 0, SequenceLength),
		store:   NewStore(),
	}
	if err := e.walk(0, SequenceLength, 0); err != nil {
		return nil, err
	}
	return e.store, nil
}

// walk tries the span digits[min:max] at depth, then the same start with a
// span one digit shorter. min is where the uncovered digits begin.
func (e *enumerator) walk(min, max, depth int) error {
	if min == max {
		if min == SequenceLength {
			return e.store.Capture(e.scratch[:depth])
		}
		return nil
	}

	length := max - min
	if r, ok := e.index.Bucket(length).FindRange(e.digits[min:max]); ok {
		e.scratch = append(e.scratch[:depth], Step{Match: r, Length: length})
		if err := e.walk(max, SequenceLength, depth+1); err != nil {
			return err
		}
	}
	e.scratch = e.scratch[:depth]

	return e.walk(min, max-1, depth)
}

func validateDigits(digits string) error {
	if len(digits) != SequenceLength {
		return fmt.Errorf("%w: %q has %d digits, want %d", ErrInvalidSequence, digits, len(digits), SequenceLength)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidSequence, digits, digits[i])
		}
	}
	return nil
}
