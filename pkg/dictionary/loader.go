// Package dictionary reads the phone number list and the word list from disk
// and turns the word list into a sorted lexicon.Index.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/keypad"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
)

// LoadStats describes what happened to the tokens of a word list
type LoadStats struct {
	Accepted [keypad.MaxWordSize]int // Accepted[0] counts one-letter words
	Rejected int
}

// Total returns the number of accepted words
func (s LoadStats) Total() int {
	n := 0
	for _, c := range s.Accepted {
		n += c
	}
	return n
}

// ReadNumbers reads one phone number per line with all whitespace removed.
// Blank lines are skipped; validating the numbers is left to the caller.
func ReadNumbers(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open phone number file %s: %w", filename, err)
	}
	defer file.Close()

	var numbers []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := stripSpace(scanner.Text())
		if line == "" {
			continue
		}
		numbers = append(numbers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read phone number file %s: %w", filename, err)
	}

	log.Debugf("Read %d phone numbers from %s", len(numbers), filename)
	return numbers, nil
}

// LoadWords reads a whitespace separated word list and builds the lexicon from
// every token that can be placed on a phone number. Other tokens are counted and dropped.
func LoadWords(filename string) (*lexicon.Index, LoadStats, error) {
	var stats LoadStats

	file, err := os.Open(filename)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to open word list %s: %w", filename, err)
	}
	defer file.Close()

	lower := cases.Lower(language.Und)
	builder := lexicon.NewBuilder()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := lower.String(scanner.Text())
		if !keypad.IsWord(word) {
			stats.Rejected++
			continue
		}
		if err := builder.Add(word); err != nil {
			stats.Rejected++
			continue
		}
		stats.Accepted[len(word)-1]++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read word list %s: %w", filename, err)
	}

	log.Debugf("Loaded %d words from %s (%d rejected)", stats.Total(), filename, stats.Rejected)
	return builder.Build(), stats, nil
}

// Load builds a lexicon from either a word list or a snapshot, based on the file's format
func Load(filename string) (*lexicon.Index, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, err
	}
	format, err := DetectFileFormat(filename)
	if err != nil {
		return nil, err
	}
	if info, ok := GetFormatInfo(format); ok {
		log.Debugf("Loading %s as %s", filename, info.Description)
	}

	switch format {
	case FormatSnapshot:
		return LoadSnapshot(filename)
	case FormatText:
		ix, _, err := LoadWords(filename)
		return ix, err
	}
	return nil, fmt.Errorf("unsupported dictionary format for %s", filename)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
