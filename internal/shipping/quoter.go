// Package shipping computes delivery quotes from per-country rules.
package shipping

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"threadpress/internal/domain"
)

// Notes surfaced on a quote. The "not configured" case is a degraded state the
// checkout renders as-is, not an error.
const (
	NoteNotConfigured = "shipping is not configured for this country"
	NoteFreeShipping  = "free shipping applied"
	NoteStandardRates = "standard shipping rates apply"
)

// RuleRepo looks up the shipping rule for a destination. Country matching is
// case-insensitive and returns domain.ErrNotFound when no rule exists.
type RuleRepo interface {
	GetByCountry(ctx context.Context, country string) (*domain.ShippingRule, error)
}

type Quoter struct {
	rules  RuleRepo
	logger *log.Logger
}

func NewQuoter(rules RuleRepo, logger *log.Logger) *Quoter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Quoter{rules: rules, logger: logger}
}

// Quote computes the fee and eligibility note for a destination country and
// the cart's aggregate item quantity.
func (q *Quoter) Quote(ctx context.Context, country string, quantity int) (domain.ShippingQuote, error) {
	rule, err := q.rules.GetByCountry(ctx, country)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ShippingQuote{Note: NoteNotConfigured}, nil
	}
	if err != nil {
		return domain.ShippingQuote{}, fmt.Errorf("shipping rule lookup: %w", err)
	}

	quote := domain.ShippingQuote{
		FeeCents:              rule.FeeCents,
		FreeShippingThreshold: rule.FreeShippingMinOrder,
	}
	switch {
	case rule.FreeShippingMinOrder > 0 && quantity >= rule.FreeShippingMinOrder:
		quote.FeeCents = 0
		quote.Note = NoteFreeShipping
	case rule.FreeShippingMinOrder > 0:
		remaining := rule.FreeShippingMinOrder - quantity
		unit := "items"
		if remaining == 1 {
			unit = "item"
		}
		quote.Note = fmt.Sprintf("add %d more %s to qualify for free shipping", remaining, unit)
	case rule.Note != "":
		quote.Note = rule.Note
	default:
		quote.Note = NoteStandardRates
	}
	return quote, nil
}
