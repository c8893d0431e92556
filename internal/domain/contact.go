package domain

import "time"

// ContactForm is a custom-design inquiry submitted from the storefront.
type ContactForm struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Customization  string    `json:"customization"`
	Message        string    `json:"message"`
	ReferenceImage string    `json:"referenceImage,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Subscription is a newsletter signup. Email is unique in the store.
type Subscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
