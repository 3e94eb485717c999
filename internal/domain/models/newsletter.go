package models

import "time"

// NewsletterSubscriber is unique by Email. Unsubscribing clears Active; the
// row is kept so a later subscription reactivates it.
type NewsletterSubscriber struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email" validate:"required,email"`
	Name      string    `json:"name" db:"name"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (s NewsletterSubscriber) GetID() int64 { return s.ID }

func (s *NewsletterSubscriber) SetIdentity(id int64, createdAt time.Time) {
	s.ID = id
	s.CreatedAt = createdAt
	s.Email = NormalizeEmail(s.Email)
	s.Active = true
}

func (s NewsletterSubscriber) Validate() error { return validateStruct(s) }

func (s NewsletterSubscriber) Clone() NewsletterSubscriber { return s }

type NewsletterSubscriberPatch struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func (p NewsletterSubscriberPatch) Apply(s *NewsletterSubscriber) error {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Active != nil {
		s.Active = *p.Active
	}

	return nil
}
