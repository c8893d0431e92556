// Package contact validates and stores custom-design inquiries.
package contact

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"threadpress/internal/domain"
	contactrepo "threadpress/internal/repository/contact"
)

// emailPattern is deliberately permissive; real verification happens when we
// reply to the address.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrNameTooShort          = errors.New("name must be at least 2 characters")
	ErrInvalidEmail          = errors.New("a valid email address is required")
	ErrCustomizationTooShort = errors.New("customization details must be at least 5 characters")
	ErrMessageTooShort       = errors.New("message must be at least 10 characters")
)

type Service struct {
	repo contactrepo.Repository
}

func New(repo contactrepo.Repository) *Service {
	return &Service{repo: repo}
}

type SubmitInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Customization  string `json:"customization"`
	Message        string `json:"message"`
	ReferenceImage string `json:"referenceImage,omitempty"`
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.ContactForm, error) {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return nil, ErrNameTooShort
	}
	if !ValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	if len(strings.TrimSpace(in.Customization)) < 5 {
		return nil, ErrCustomizationTooShort
	}
	if len(strings.TrimSpace(in.Message)) < 10 {
		return nil, ErrMessageTooShort
	}
	return s.repo.Create(ctx, domain.ContactForm{
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Customization:  strings.TrimSpace(in.Customization),
		Message:        strings.TrimSpace(in.Message),
		ReferenceImage: strings.TrimSpace(in.ReferenceImage),
	})
}

// ValidEmail reports whether the address passes the storefront's permissive
// shape check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsValidationErr reports whether the error is one of the user-facing
// validation failures.
func IsValidationErr(err error) bool {
	return errors.Is(err, ErrNameTooShort) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrCustomizationTooShort) ||
		errors.Is(err, ErrMessageTooShort)
}
