package shipping

import (
	"context"
	"sync"
	"time"

	"threadpress/internal/domain"
)

// DefaultDebounce is how long destination input must be stable before a rule
// lookup is issued. Keystroke-level country edits would otherwise flood the
// rule store.
const DefaultDebounce = 600 * time.Millisecond

type quoteResult struct {
	quote domain.ShippingQuote
	err   error
}

type pendingQuote struct {
	timer    *time.Timer
	country  string
	quantity int
	waiters  []chan quoteResult
}

// Debouncer coalesces rapid quote requests into a single trailing-edge lookup
// per key. A new request for a key replaces the pending destination and
// restarts the timer; once the input has been stable for the interval, one
// lookup runs and every caller that asked during the window receives its
// result. Keys are independent of each other.
type Debouncer struct {
	quoter   *Quoter
	interval time.Duration

	mu      sync.Mutex
	pending map[string]*pendingQuote
}

func NewDebouncer(quoter *Quoter, interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Debouncer{
		quoter:   quoter,
		interval: interval,
		pending:  make(map[string]*pendingQuote),
	}
}

// Request schedules a quote for the key's latest destination and blocks until
// the lookup fires or ctx is cancelled. The latest country and quantity seen
// for the key win; earlier callers in the same window get that final answer.
func (d *Debouncer) Request(ctx context.Context, key, country string, quantity int) (domain.ShippingQuote, error) {
	ch := make(chan quoteResult, 1)

	d.mu.Lock()
	p, ok := d.pending[key]
	if !ok {
		p = &pendingQuote{}
		d.pending[key] = p
	}
	p.country = country
	p.quantity = quantity
	p.waiters = append(p.waiters, ch)
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(d.interval, func() { d.fire(key) })
	d.mu.Unlock()

	select {
	case res := <-ch:
		return res.quote, res.err
	case <-ctx.Done():
		return domain.ShippingQuote{}, ctx.Err()
	}
}

func (d *Debouncer) fire(key string) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if ok {
		delete(d.pending, key)
	}
	d.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	quote, err := d.quoter.Quote(ctx, p.country, p.quantity)
	for _, ch := range p.waiters {
		ch <- quoteResult{quote: quote, err: err}
	}
}

// Stop cancels every pending lookup; blocked callers get context.Canceled.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, p := range d.pending {
		if p.timer != nil {
			p.timer.Stop()
		}
		for _, ch := range p.waiters {
			ch <- quoteResult{err: context.Canceled}
		}
		delete(d.pending, key)
	}
}
