package newsletter

import (
	"context"
	"errors"
	"testing"
	"time"

	"threadpress/internal/domain"
)

type stubRepo struct {
	existing  map[string]bool
	lastEmail string
}

func (s *stubRepo) Subscribe(_ context.Context, email string) (*domain.Subscription, error) {
	s.lastEmail = email
	if s.existing[email] {
		return nil, domain.ErrDuplicate
	}
	return &domain.Subscription{ID: "sub-1", Email: email, SubscribedAt: time.Now()}, nil
}

func (s *stubRepo) Exists(_ context.Context, email string) (bool, error) {
	return s.existing[email], nil
}

func TestSubscribeNormalisesEmail(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	sub, err := svc.Subscribe(context.Background(), "  Ayesha@Example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Email != "ayesha@example.com" {
		t.Fatalf("expected lowercased trimmed email, got %q", sub.Email)
	}
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	_, err := svc.Subscribe(context.Background(), "not-an-email")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if repo.lastEmail != "" {
		t.Fatalf("invalid email must not reach the repository")
	}
}

func TestSubscribeDuplicateSurfaces(t *testing.T) {
	repo := &stubRepo{existing: map[string]bool{"ayesha@example.com": true}}
	svc := New(repo)

	_, err := svc.Subscribe(context.Background(), "ayesha@example.com")
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestSubscribeCaseVariantIsDuplicate(t *testing.T) {
	repo := &stubRepo{existing: map[string]bool{"ayesha@example.com": true}}
	svc := New(repo)

	_, err := svc.Subscribe(context.Background(), "Ayesha@EXAMPLE.com")
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("case-variant resubmission must read as duplicate, got %v", err)
	}
}
