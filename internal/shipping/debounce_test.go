package shipping

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadpress/internal/domain"
)

func (d *Debouncer) pendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func TestDebouncerCollapsesRapidInput(t *testing.T) {
	repo := &stubRuleRepo{rules: map[string]*domain.ShippingRule{"pakistan": pakistanRule()}}
	debouncer := NewDebouncer(NewQuoter(repo, nil), 40*time.Millisecond)
	ctx := context.Background()

	// Simulates typing: each partial input replaces the pending one, and
	// every caller receives the quote for the final destination.
	inputs := []string{"P", "Pa", "Pakistan"}
	quotes := make([]domain.ShippingQuote, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	for i, country := range inputs {
		wg.Add(1)
		go func(i int, country string) {
			defer wg.Done()
			quotes[i], errs[i] = debouncer.Request(ctx, "s1", country, 5)
		}(i, country)
		time.Sleep(10 * time.Millisecond)
	}
	wg.Wait()

	assert.Equal(t, 1, repo.callCount())
	for i := range inputs {
		require.NoError(t, errs[i])
		assert.Equal(t, NoteFreeShipping, quotes[i].Note)
		assert.Zero(t, quotes[i].FeeCents)
	}
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	repo := &stubRuleRepo{rules: map[string]*domain.ShippingRule{"pakistan": pakistanRule()}}
	debouncer := NewDebouncer(NewQuoter(repo, nil), 20*time.Millisecond)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, key := range []string{"s1", "s2"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			_, err := debouncer.Request(ctx, key, "Pakistan", 5)
			assert.NoError(t, err)
		}(key)
	}
	wg.Wait()

	assert.Equal(t, 2, repo.callCount())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	repo := &stubRuleRepo{rules: map[string]*domain.ShippingRule{"pakistan": pakistanRule()}}
	debouncer := NewDebouncer(NewQuoter(repo, nil), time.Minute)

	errCh := make(chan error, 1)
	go func() {
		_, err := debouncer.Request(context.Background(), "s1", "Pakistan", 5)
		errCh <- err
	}()

	require.Eventually(t, func() bool {
		return debouncer.pendingCount() == 1
	}, time.Second, 5*time.Millisecond)
	debouncer.Stop()

	require.ErrorIs(t, <-errCh, context.Canceled)
	assert.Zero(t, repo.callCount())
}

func TestDebouncerContextCancellation(t *testing.T) {
	repo := &stubRuleRepo{rules: map[string]*domain.ShippingRule{"pakistan": pakistanRule()}}
	debouncer := NewDebouncer(NewQuoter(repo, nil), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := debouncer.Request(ctx, "s1", "Pakistan", 5)
		errCh <- err
	}()

	require.Eventually(t, func() bool {
		return debouncer.pendingCount() == 1
	}, time.Second, 5*time.Millisecond)
	cancel()

	require.ErrorIs(t, <-errCh, context.Canceled)
}

func TestDebouncerDefaultInterval(t *testing.T) {
	d := NewDebouncer(nil, 0)
	assert.Equal(t, DefaultDebounce, d.interval)
}
