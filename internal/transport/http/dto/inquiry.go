package dto

import (
	"time"

	"villa_cms/internal/domain/models"
)

type BookingRequest struct {
	CheckIn   time.Time `json:"check_in" validate:"required"`
	CheckOut  time.Time `json:"check_out" validate:"required"`
	Guests    int       `json:"guests" validate:"min=1"`
	RoomID    *int64    `json:"room_id,omitempty"`
	GuestName string    `json:"guest_name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
}

func (r BookingRequest) ToDomain() models.BookingInquiry {
	return models.BookingInquiry{
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		Guests:    r.Guests,
		RoomID:    r.RoomID,
		GuestName: r.GuestName,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
	}
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

func (r ContactRequest) ToDomain() models.ContactMessage {
	return models.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}
