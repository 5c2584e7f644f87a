/*
Package report renders numeronym results as the plain text report.

Each number with at least one path gets a section. Every path repeats the
area code and then lists the words of each span right-aligned to the column
where that span ends, so the words line up under the digits they replace:

	TEL: 2504663277
	250
	   good
	   home
	       app

Sections are separated by a line of dashes. Options cap how many paths and
how many tied words per span are printed; the caps never change what was found.
*/
package report

import (
	"fmt"
	"io"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/numeronym"
)

// Separator is written between two number sections.
const Separator = "--------"

// Options holds the display caps.
type Options struct {
	MaxPaths        int
	MaxPermutations int
}

// DefaultOptions returns the caps used when nothing is configured.
func DefaultOptions() Options {
	return Options{MaxPaths: 10, MaxPermutations: 3}
}

// Writer renders results to an io.Writer.
type Writer struct {
	w        io.Writer
	ix       *lexicon.Index
	opts     Options
	sections int
}

// New creates a Writer. Caps below 1 are raised to 1.
func New(w io.Writer, ix *lexicon.Index, opts Options) *Writer {
	if opts.MaxPaths < 1 {
		opts.MaxPaths = 1
	}
	if opts.MaxPermutations < 1 {
		opts.MaxPermutations = 1
	}
	return &Writer{w: w, ix: ix, opts: opts}
}

// Write renders each result in order. Results without paths are skipped.
// A Writer may be called repeatedly; separators carry over between calls.
func (rw *Writer) Write(results ...numeronym.Result) error {
	for _, res := range results {
		if len(res.Paths) == 0 {
			continue
		}
		if err := rw.writeSection(res); err != nil {
			return err
		}
	}
	return nil
}

// Sections returns how many number sections have been written.
func (rw *Writer) Sections() int {
	return rw.sections
}

func (rw *Writer) writeSection(res numeronym.Result) error {
	if rw.sections > 0 {
		if _, err := fmt.Fprintln(rw.w, Separator); err != nil {
			return err
		}
	}
	rw.sections++

	if _, err := fmt.Fprintf(rw.w, "TEL: %s\n", res.Number.Raw); err != nil {
		return err
	}
	for i, p := range res.Paths {
		if i >= rw.opts.MaxPaths {
			break
		}
		if err := rw.writePath(res.Number.AreaCode, p); err != nil {
			return err
		}
	}
	return nil
}

func (rw *Writer) writePath(areaCode string, p numeronym.Path) error {
	if _, err := fmt.Fprintln(rw.w, areaCode); err != nil {
		return err
	}
	column := len(areaCode)
	for i, words := range Expand(rw.ix, p, rw.opts.MaxPermutations) {
		column += p[i].Length
		for _, word := range words {
			if _, err := fmt.Fprintf(rw.w, "%*s\n", column, word); err != nil {
				return err
			}
		}
	}
	return nil
}

// Expand looks up the words of every step of p, keeping at most maxPerms
// per step (all of them when maxPerms < 1).
func Expand(ix *lexicon.Index, p numeronym.Path, maxPerms int) [][]string {
	spans := make([][]string, len(p))
	for i, step := range p {
		words := ix.Words(step.Length, step.Match)
		if maxPerms > 0 && len(words) > maxPerms {
			words = words[:maxPerms]
		}
		spans[i] = words
	}
	return spans
}
