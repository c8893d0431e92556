// Package cart implements the per-session shopping cart: line-item merge
// rules, quantity updates, derived totals, and write-through persistence.
package cart

import (
	"context"
	"io"
	"log"
	"sync"

	"threadpress/internal/domain"
)

// Persister stores the full line-item collection for a session. Implementations
// must treat the slice as the complete cart state, not a delta.
type Persister interface {
	Save(ctx context.Context, sessionID string, lines []domain.CartLine) error
	Load(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	Delete(ctx context.Context, sessionID string) error
}

// Store owns one session's cart. Construct one per session; there are no
// package-level singletons. Every mutation writes through to the persister;
// persistence failures are logged and do not fail the mutation.
type Store struct {
	sessionID string
	persister Persister
	logger    *log.Logger

	mu    sync.Mutex
	lines []domain.CartLine
}

// New returns an empty cart store for the session.
func New(sessionID string, persister Persister, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{sessionID: sessionID, persister: persister, logger: logger}
}

// Load builds a store rehydrated from the persister. A missing or unreadable
// payload yields an empty cart; the error is logged, never returned.
func Load(ctx context.Context, sessionID string, persister Persister, logger *log.Logger) *Store {
	s := New(sessionID, persister, logger)
	if persister == nil {
		return s
	}
	lines, err := persister.Load(ctx, sessionID)
	if err != nil {
		s.logger.Printf("cart: rehydrate session=%s error=%v, starting empty", sessionID, err)
		return s
	}
	s.lines = lines
	return s
}

// AddInput carries everything needed to append or merge a line item.
type AddInput struct {
	ProductID      string
	ProductName    string
	ProductType    domain.ProductType
	VariantID      string
	Size           string
	PageType       string
	Color          string
	ColorCode      string
	PriceMode      domain.PriceMode
	UnitPriceCents int64
	Image          string
}

// AddItem merges into an existing line with the same identity key by
// incrementing its quantity by one, or appends a new line with quantity one.
func (s *Store) AddItem(ctx context.Context, in AddInput) {
	line := domain.CartLine{
		ProductID:      in.ProductID,
		ProductName:    in.ProductName,
		ProductType:    in.ProductType,
		VariantID:      in.VariantID,
		Size:           in.Size,
		PageType:       in.PageType,
		Color:          in.Color,
		ColorCode:      in.ColorCode,
		PriceMode:      in.PriceMode,
		Quantity:       1,
		UnitPriceCents: in.UnitPriceCents,
		Image:          in.Image,
	}

	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].SameIdentity(line) {
			s.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, line)
	}
	s.persistLocked(ctx)
	s.mu.Unlock()
}

// RemoveItem drops the line matching the given key exactly. Removing a line
// that is not present leaves the cart unchanged.
func (s *Store) RemoveItem(ctx context.Context, productID, variantID, size, colorCode string, priceMode domain.PriceMode) {
	s.mu.Lock()
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ProductID == productID && l.VariantID == variantID && l.Size == size &&
			l.ColorCode == colorCode && l.PriceMode == priceMode {
			continue
		}
		kept = append(kept, l)
	}
	s.lines = kept
	s.persistLocked(ctx)
	s.mu.Unlock()
}

// UpdateQuantity applies a quantity delta to lines matching variant, size and
// color code, clamping at one. Matching deliberately omits product ID, price
// mode and page type to mirror the storefront's historical behavior; see
// DESIGN.md before tightening the key. Dropping to zero requires RemoveItem.
func (s *Store) UpdateQuantity(ctx context.Context, variantID, size, colorCode string, delta int) {
	s.mu.Lock()
	for i := range s.lines {
		l := &s.lines[i]
		if l.VariantID != variantID || l.Size != size || l.ColorCode != colorCode {
			continue
		}
		l.Quantity += delta
		if l.Quantity < 1 {
			l.Quantity = 1
		}
	}
	s.persistLocked(ctx)
	s.mu.Unlock()
}

// Clear empties the cart and removes the persisted copy.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	if s.persister != nil {
		if err := s.persister.Delete(ctx, s.sessionID); err != nil {
			s.logger.Printf("cart: clear session=%s error=%v", s.sessionID, err)
		}
	}
	s.mu.Unlock()
}

// Lines returns a copy of the current line items.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalCents is the sum of unit price times quantity over all lines.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, l := range s.lines {
		total += l.TotalCents()
	}
	return total
}

// Count is the aggregate item quantity across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

func (s *Store) persistLocked(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.sessionID, s.lines); err != nil {
		s.logger.Printf("cart: persist session=%s error=%v", s.sessionID, err)
	}
}
