package models

import "time"

// Testimonial is a guest review shown on the public site.
type Testimonial struct {
	ID           int64     `json:"id" db:"id"`
	GuestName    string    `json:"guest_name" db:"guest_name" validate:"required"`
	GuestCountry string    `json:"guest_country" db:"guest_country"`
	Rating       int       `json:"rating" db:"rating" validate:"min=1,max=5"`
	Comment      string    `json:"comment" db:"comment" validate:"required"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func (t Testimonial) GetID() int64 { return t.ID }

func (t *Testimonial) SetIdentity(id int64, createdAt time.Time) {
	t.ID = id
	t.CreatedAt = createdAt
}

func (t Testimonial) Validate() error { return validateStruct(t) }

func (t Testimonial) Clone() Testimonial { return t }

type TestimonialPatch struct {
	GuestName    *string `json:"guest_name,omitempty"`
	GuestCountry *string `json:"guest_country,omitempty"`
	Rating       *int    `json:"rating,omitempty"`
	Comment      *string `json:"comment,omitempty"`
}

func (p TestimonialPatch) Apply(t *Testimonial) error {
	if p.GuestName != nil {
		t.GuestName = *p.GuestName
	}
	if p.GuestCountry != nil {
		t.GuestCountry = *p.GuestCountry
	}
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	if p.Comment != nil {
		t.Comment = *p.Comment
	}

	return nil
}
