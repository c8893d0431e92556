// Package newsletter handles signup requests for the mailing list.
package newsletter

import (
	"context"
	"errors"
	"strings"

	"threadpress/internal/domain"
	newsletterrepo "threadpress/internal/repository/newsletter"
	contactsvc "threadpress/internal/service/contact"
)

var ErrInvalidEmail = errors.New("a valid email address is required")

type Service struct {
	repo newsletterrepo.Repository
}

func New(repo newsletterrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Subscribe records the email, returning domain.ErrDuplicate when it is
// already on the list.
func (s *Service) Subscribe(ctx context.Context, email string) (*domain.Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !contactsvc.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	return s.repo.Subscribe(ctx, email)
}
