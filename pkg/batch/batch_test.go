package batch

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/numeronym"
)

func fixture(t *testing.T) *lexicon.Index {
	t.Helper()
	b := lexicon.NewBuilder()
	for _, w := range []string{"good", "home", "app", "numbers", "a", "ca"} {
		require.NoError(t, b.Add(w))
	}
	return b.Build()
}

func TestWorkerPoolRunsJobs(t *testing.T) {
	p := NewWorkerPool(4, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	var ran int32
	jobs := 100
	for i := 0; i < jobs; i++ {
		err := p.Submit(ctx, func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	p.Close()

	if got := atomic.LoadInt32(&ran); int(got) != jobs {
		t.Fatalf("expected %d jobs executed, got %d", jobs, got)
	}
}

func TestSubmitAfterClose(t *testing.T) {
	p := NewWorkerPool(1, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	p.Close()
	if err := p.Submit(ctx, func(ctx context.Context) error { return nil }); err != ErrPoolClosed {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
}

func TestSubmitHonoursContext(t *testing.T) {
	// no workers started, so the second job cannot be queued
	p := NewWorkerPool(1, 1)
	require.NoError(t, p.Submit(context.Background(), func(ctx context.Context) error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Submit(ctx, func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunKeepsInputOrder(t *testing.T) {
	ix := fixture(t)
	numbers := []string{"2504663277", "6046862377", "7782222222", "2500000000"}

	results, failures, err := NewRunner(ix, 3).Run(context.Background(), numbers)
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, results, 4)
	for i, res := range results {
		assert.Equal(t, numbers[i], res.Number.Raw)
	}
	assert.Len(t, results[0].Paths, 1)
	assert.Len(t, results[1].Paths, 1)
	assert.Len(t, results[2].Paths, 21)
	assert.Empty(t, results[3].Paths)
}

func TestRunIsolatesFailures(t *testing.T) {
	ix := fixture(t)
	numbers := []string{"bad", "2504663277", "250466327", "6046862377"}

	results, failures, err := NewRunner(ix, 2).Run(context.Background(), numbers)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "2504663277", results[0].Number.Raw)
	assert.Equal(t, "6046862377", results[1].Number.Raw)

	require.Len(t, failures, 2)
	assert.Equal(t, 0, failures[0].Index)
	assert.Equal(t, 2, failures[1].Index)
	for _, f := range failures {
		assert.ErrorIs(t, f, numeronym.ErrInvalidSequence)
	}
}

func TestRunMatchesSequentialSolve(t *testing.T) {
	ix := fixture(t)
	numbers := make([]string, 50)
	for i := range numbers {
		numbers[i] = "7782222222"
	}

	parallel, _, err := NewRunner(ix, 8).Run(context.Background(), numbers)
	require.NoError(t, err)

	n, err := numeronym.ParseNumber("7782222222")
	require.NoError(t, err)
	want, err := numeronym.Solve(n, ix)
	require.NoError(t, err)
	for _, res := range parallel {
		assert.Equal(t, want.Paths, res.Paths)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewRunner(fixture(t), 1).Run(ctx, []string{"2504663277", "2504663277"})
	assert.ErrorIs(t, err, context.Canceled)
}
