package numeronym

import (
	"fmt"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
)

// StoreCapacity bounds the paths kept for one number: 7!, far above the
// 2^6 ways there are to cut seven digits.
const StoreCapacity = 5040

// Step is one span of a path: the words matching the span and its length in digits.
type Step struct {
	Match  lexicon.Range `msgpack:"m"`
	Length int           `msgpack:"n"`
}

// Path is a completed segmentation of the seven digits, in order.
type Path []Step

// Store keeps completed paths in the order they were found.
type Store struct {
	paths []Path
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Capture saves a copy of scratch. The caller keeps ownership of scratch and may reuse it.
func (s *Store) Capture(scratch []Step) error {
	if len(s.paths) >= StoreCapacity {
		return fmt.Errorf("%w: capacity %d reached", ErrStoreOverflow, StoreCapacity)
	}
	p := make(Path, len(scratch))
	copy(p, scratch)
	s.paths = append(s.paths, p)
	return nil
}

// Paths returns the captured paths in discovery order.
func (s *Store) Paths() []Path {
	return s.paths
}

// Len returns the number of captured paths.
func (s *Store) Len() int {
	return len(s.paths)
}
