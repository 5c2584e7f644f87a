// Package batch solves a list of phone numbers in parallel.
//
// Every number gets its own enumeration on a pool worker; the lexicon is
// shared read-only. A number that fails to parse or trips an internal check
// is reported as a Failure and the rest of the batch carries on.
package batch

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brennanwilkes/Numeronym-Generator/internal/logger"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/numeronym"
)

// Failure records a number that could not be processed.
type Failure struct {
	Index  int
	Number string
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("number %d (%s): %v", f.Index+1, f.Number, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Runner solves numbers against one lexicon.
type Runner struct {
	ix      *lexicon.Index
	workers int
	log     *log.Logger
}

// NewRunner creates a Runner using the given number of workers (at least 1).
func NewRunner(ix *lexicon.Index, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{ix: ix, workers: workers, log: logger.New("batch")}
}

// Run solves every number. Results come back in input order, without the
// failed numbers, which are returned separately. The error is non-nil only
// when ctx ended before every number was processed.
func (r *Runner) Run(ctx context.Context, numbers []string) ([]numeronym.Result, []Failure, error) {
	start := time.Now()

	results := make([]numeronym.Result, len(numbers))
	done := make([]bool, len(numbers))
	var (
		mu       sync.Mutex
		failures []Failure
	)

	pool := NewWorkerPool(r.workers, r.workers*2)
	pool.Start(ctx)

	for i, raw := range numbers {
		if ctx.Err() != nil {
			break
		}
		i, raw := i, raw // per-iteration copies; go directive is below 1.22
		err := pool.Submit(ctx, func(ctx context.Context) error {
			res, err := solve(raw, r.ix)
			mu.Lock()
			defer mu.Unlock()
			done[i] = true
			if err != nil {
				failures = append(failures, Failure{Index: i, Number: raw, Err: err})
				return err
			}
			results[i] = res
			return nil
		})
		if err != nil {
			break
		}
	}
	pool.Close()

	mu.Lock()
	defer mu.Unlock()

	out := make([]numeronym.Result, 0, len(numbers))
	processed := 0
	for i := range numbers {
		if !done[i] {
			continue
		}
		processed++
		if results[i].Number.Raw != "" {
			out = append(out, results[i])
		}
	}
	sortFailures(failures)
	for _, f := range failures {
		if numeronym.IsInternal(f.Err) {
			r.log.Error("Internal error, number skipped", "number", f.Number, "err", f.Err)
		} else {
			r.log.Warn("Invalid number skipped", "line", f.Index+1, "number", f.Number, "err", f.Err)
		}
	}
	r.log.Debugf("Processed %d/%d numbers in %v with %d workers", processed, len(numbers), time.Since(start), r.workers)

	if processed < len(numbers) {
		if err := ctx.Err(); err != nil {
			return out, failures, fmt.Errorf("batch interrupted after %d of %d numbers: %w", processed, len(numbers), err)
		}
	}
	return out, failures, nil
}

func solve(raw string, ix *lexicon.Index) (numeronym.Result, error) {
	n, err := numeronym.ParseNumber(raw)
	if err != nil {
		return numeronym.Result{}, err
	}
	return numeronym.Solve(n, ix)
}

// sortFailures orders failures by input position; workers finish out of order.
func sortFailures(failures []Failure) {
	sort.Slice(failures, func(i, j int) bool {
		return failures[i].Index < failures[j].Index
	})
}
