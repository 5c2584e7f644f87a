package suggest

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// group is every word sharing one keypad code, in insertion order.
type group struct {
	code  string
	words []string
}

// searchTrie collects the groups stored under codes that start with digits.
func searchTrie(trie *patricia.Trie, digits string) []group {
	if trie == nil {
		return nil
	}

	var groups []group
	err := trie.VisitSubtree(patricia.Prefix(digits), func(p patricia.Prefix, item patricia.Item) error {
		words, ok := item.([]string)
		if !ok {
			log.Errorf("Unknown item type: %T for code %s", item, p)
			return nil
		}
		groups = append(groups, group{code: string(p), words: words})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}
	return groups
}
