package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/brennanwilkes/Numeronym-Generator/internal/utils"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/keypad"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
)

// Suggestion is one predicted word.
type Suggestion struct {
	Word  string `msgpack:"word"`
	Code  string `msgpack:"code"`
	Exact bool   `msgpack:"exact,omitempty"`
}

// Completer maps keypad codes to words.
type Completer struct {
	trie       *patricia.Trie
	totalWords int
	codes      int
	longest    int
}

// NewCompleter indexes every word of ix. A nil ix gives an empty Completer.
func NewCompleter(ix *lexicon.Index) *Completer {
	c := &Completer{trie: patricia.NewTrie()}
	if ix == nil {
		return c
	}
	for _, e := range ix.Entries() {
		c.insert(e.Code, e.Word)
	}
	return c
}

// AddWord indexes a single word. The word must be 1 to 7 ASCII letters.
func (c *Completer) AddWord(word string) error {
	if !keypad.IsWord(word) {
		return fmt.Errorf("%w: %q", lexicon.ErrInvalidWord, word)
	}
	word = strings.ToLower(word)
	code, err := keypad.Code(word)
	if err != nil {
		return err
	}
	c.insert(code, word)
	return nil
}

func (c *Completer) insert(code, word string) {
	key := patricia.Prefix(code)
	if item := c.trie.Get(key); item != nil {
		c.trie.Set(key, append(item.([]string), word))
	} else {
		c.trie.Insert(key, []string{word})
		c.codes++
	}
	c.totalWords++
	if len(code) > c.longest {
		c.longest = len(code)
	}
}

// Complete returns the words whose code starts with digits. Words typed
// exactly by digits come first, then shorter codes before longer ones, then
// codes in order. A limit below 1 returns everything. Input that is empty or
// not all digits yields nothing.
func (c *Completer) Complete(digits string, limit int) []Suggestion {
	if digits == "" || !utils.IsOnlyNumbers(digits) {
		return nil
	}

	groups := searchTrie(c.trie, digits)
	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i].code, groups[j].code
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})

	var suggestions []Suggestion
	for _, g := range groups {
		for _, w := range g.words {
			if limit > 0 && len(suggestions) == limit {
				return suggestions
			}
			suggestions = append(suggestions, Suggestion{
				Word:  w,
				Code:  g.code,
				Exact: g.code == digits,
			})
		}
	}
	return suggestions
}

func (c *Completer) Stats() map[string]int {
	return map[string]int{
		"totalWords":  c.totalWords,
		"codes":       c.codes,
		"longestCode": c.longest,
	}
}
