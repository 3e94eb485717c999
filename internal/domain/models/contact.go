package models

import "time"

type ContactMessage struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	Email     string    `json:"email" db:"email" validate:"required,email"`
	Phone     string    `json:"phone" db:"phone"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message" validate:"required"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (c ContactMessage) GetID() int64 { return c.ID }

func (c *ContactMessage) SetIdentity(id int64, createdAt time.Time) {
	c.ID = id
	c.CreatedAt = createdAt
	c.Email = NormalizeEmail(c.Email)
}

func (c ContactMessage) Validate() error { return validateStruct(c) }

func (c ContactMessage) Clone() ContactMessage { return c }

type ContactMessagePatch struct {
	Subject *string `json:"subject,omitempty"`
	Message *string `json:"message,omitempty"`
	Read    *bool   `json:"read,omitempty"`
}

func (p ContactMessagePatch) Apply(c *ContactMessage) error {
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.Message != nil {
		c.Message = *p.Message
	}
	if p.Read != nil {
		c.Read = *p.Read
	}

	return nil
}
