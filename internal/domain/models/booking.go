package models

import "time"

// BookingInquiry is a reservation request. It references a room by ID only.
type BookingInquiry struct {
	ID        int64     `json:"id" db:"id"`
	CheckIn   time.Time `json:"check_in" db:"check_in" validate:"required"`
	CheckOut  time.Time `json:"check_out" db:"check_out" validate:"required"`
	Guests    int       `json:"guests" db:"guests" validate:"min=1"`
	RoomID    *int64    `json:"room_id,omitempty" db:"room_id"`
	GuestName string    `json:"guest_name" db:"guest_name" validate:"required"`
	Email     string    `json:"email" db:"email" validate:"required,email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	Processed bool      `json:"processed" db:"processed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (b BookingInquiry) GetID() int64 { return b.ID }

func (b *BookingInquiry) SetIdentity(id int64, createdAt time.Time) {
	b.ID = id
	b.CreatedAt = createdAt
	b.Email = NormalizeEmail(b.Email)
}

// Validate checks the stay dates against each other and against the day the
// inquiry was submitted.
func (b BookingInquiry) Validate() error {
	var extra []string

	if !b.CheckIn.IsZero() && !b.CheckOut.IsZero() && !b.CheckOut.After(b.CheckIn) {
		extra = append(extra, "check_out must be after check_in")
	}
	if !b.CreatedAt.IsZero() {
		submitted := day(b.CreatedAt)
		if !b.CheckIn.IsZero() && day(b.CheckIn).Before(submitted) {
			extra = append(extra, "check_in must not be before the submission date")
		}
		if !b.CheckOut.IsZero() && day(b.CheckOut).Before(submitted) {
			extra = append(extra, "check_out must not be before the submission date")
		}
	}

	return validateStruct(b, extra...)
}

func (b BookingInquiry) Clone() BookingInquiry {
	if b.RoomID != nil {
		id := *b.RoomID
		b.RoomID = &id
	}
	return b
}

type BookingInquiryPatch struct {
	CheckIn   *time.Time `json:"check_in,omitempty"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	Guests    *int       `json:"guests,omitempty"`
	RoomID    *int64     `json:"room_id,omitempty"`
	GuestName *string    `json:"guest_name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Message   *string    `json:"message,omitempty"`
	Processed *bool      `json:"processed,omitempty"`
}

func (p BookingInquiryPatch) Apply(b *BookingInquiry) error {
	if p.CheckIn != nil {
		b.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		b.CheckOut = *p.CheckOut
	}
	if p.Guests != nil {
		b.Guests = *p.Guests
	}
	if p.RoomID != nil {
		id := *p.RoomID
		b.RoomID = &id
	}
	if p.GuestName != nil {
		b.GuestName = *p.GuestName
	}
	if p.Email != nil {
		b.Email = NormalizeEmail(*p.Email)
	}
	if p.Phone != nil {
		b.Phone = *p.Phone
	}
	if p.Message != nil {
		b.Message = *p.Message
	}
	if p.Processed != nil {
		b.Processed = *p.Processed
	}

	return nil
}
