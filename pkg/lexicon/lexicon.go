// Package lexicon holds the dictionary grouped by word length and sorted by
// keypad code, and answers "which words dial as this code" lookups.
package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/keypad"
)

// ErrInvalidWord is returned when a word cannot be placed on a phone number.
var ErrInvalidWord = errors.New("invalid word")

// Entry is a dictionary word and the code it is dialed as.
type Entry struct {
	Word string `msgpack:"w"`
	Code string `msgpack:"c"`
}

// Index is a read-only dictionary with one Bucket per word length.
// It is safe for concurrent readers.
type Index struct {
	buckets [keypad.MaxWordSize]Bucket
}

// Builder collects words before they are sorted into an Index.
type Builder struct {
	buckets [keypad.MaxWordSize]Bucket
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add lowercases and validates word, then files it under its length.
func (b *Builder) Add(word string) error {
	if !keypad.IsWord(word) {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	word = strings.ToLower(word)
	code, err := keypad.Code(word)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWord, err)
	}
	b.buckets[len(word)-1] = append(b.buckets[len(word)-1], Entry{Word: word, Code: code})
	return nil
}

// Build sorts every bucket by code and returns the finished Index.
// The Builder must not be used afterwards.
func (b *Builder) Build() *Index {
	ix := &Index{buckets: b.buckets}
	for i := range ix.buckets {
		ix.buckets[i].sort()
	}
	return ix
}

// FromEntries builds an Index from entries that already carry their code,
// such as a decoded snapshot. Entries whose code does not match their word are rejected.
func FromEntries(entries []Entry) (*Index, error) {
	ix := &Index{}
	for _, e := range entries {
		if !keypad.IsWord(e.Word) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, e.Word)
		}
		if code, _ := keypad.Code(e.Word); code != e.Code {
			return nil, fmt.Errorf("%w: %q is dialed as %s, not %s", ErrInvalidWord, e.Word, code, e.Code)
		}
		ix.buckets[len(e.Word)-1] = append(ix.buckets[len(e.Word)-1], e)
	}
	for i := range ix.buckets {
		if !ix.buckets[i].sorted() {
			ix.buckets[i].sort()
		}
	}
	return ix, nil
}

// Bucket returns the words of the given length, sorted by code.
// Lengths outside 1..MaxWordSize give an empty bucket.
func (ix *Index) Bucket(length int) Bucket {
	if ix == nil || length < 1 || length > keypad.MaxWordSize {
		return nil
	}
	return ix.buckets[length-1]
}

// Find looks code up in the bucket matching its length.
func (ix *Index) Find(code string) (Range, bool) {
	return ix.Bucket(len(code)).FindRange(code)
}

// Word returns the i'th word of the given length.
func (ix *Index) Word(length, i int) string {
	return ix.Bucket(length)[i].Word
}

// Words returns every word in r, in bucket order.
func (ix *Index) Words(length int, r Range) []string {
	b := ix.Bucket(length)
	words := make([]string, 0, r.Len())
	for i := r.Lower; i <= r.Upper; i++ {
		words = append(words, b[i].Word)
	}
	return words
}

// Entries returns every entry, shortest words first.
func (ix *Index) Entries() []Entry {
	entries := make([]Entry, 0, ix.Len())
	for _, b := range ix.buckets {
		entries = append(entries, b...)
	}
	return entries
}

// Len returns the total number of words.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	n := 0
	for _, b := range ix.buckets {
		n += len(b)
	}
	return n
}

// Sizes returns the number of words of each length; Sizes()[0] counts one-letter words.
func (ix *Index) Sizes() [keypad.MaxWordSize]int {
	var sizes [keypad.MaxWordSize]int
	if ix == nil {
		return sizes
	}
	for i, b := range ix.buckets {
		sizes[i] = len(b)
	}
	return sizes
}

func (b Bucket) sort() {
	sort.SliceStable(b, func(i, j int) bool {
		return b[i].Code < b[j].Code
	})
}

func (b Bucket) sorted() bool {
	return sort.SliceIsSorted(b, func(i, j int) bool {
		return b[i].Code < b[j].Code
	})
}
