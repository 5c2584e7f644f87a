// Package suggest offers T9 style predictions: given the digits typed so far
// it lists the words whose keypad code starts with them.
package suggest

// ICompleter defines the interface for keypad completion engines
type ICompleter interface {
	// Complete returns words whose code starts with digits, at most limit of them
	Complete(digits string, limit int) []Suggestion

	// AddWord indexes a word under its keypad code
	AddWord(word string) error

	// Stats returns statistics about the indexed words
	Stats() map[string]int
}

var _ ICompleter = (*Completer)(nil)
