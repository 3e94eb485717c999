package postgres

import (
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"villa_cms/internal/domain/models"
)

type BookingRepo struct {
	crud[models.BookingInquiry, models.BookingInquiryPatch, *models.BookingInquiry]
}

func NewBookingRepo(db *pgxpool.Pool, timeout time.Duration) *BookingRepo {
	return &BookingRepo{newCRUD[models.BookingInquiry, models.BookingInquiryPatch, *models.BookingInquiry](db, timeout, mapping[models.BookingInquiry]{
		entity: "booking_inquiry",
		table:  "booking_inquiries",
		columns: []string{
			"check_in",
			"check_out",
			"guests",
			"room_id",
			"guest_name",
			"email",
			"phone",
			"message",
			"processed",
			"created_at",
		},
		values: func(b models.BookingInquiry) []interface{} {
			return []interface{}{b.CheckIn, b.CheckOut, b.Guests, b.RoomID, b.GuestName, b.Email, b.Phone, b.Message, b.Processed, b.CreatedAt}
		},
		scan: func(row pgx.Row) (models.BookingInquiry, error) {
			var b models.BookingInquiry
			err := row.Scan(&b.ID, &b.CheckIn, &b.CheckOut, &b.Guests, &b.RoomID, &b.GuestName, &b.Email, &b.Phone, &b.Message, &b.Processed, &b.CreatedAt)
			b.CheckIn = b.CheckIn.UTC()
			b.CheckOut = b.CheckOut.UTC()
			b.CreatedAt = b.CreatedAt.UTC()
			return b, err
		},
	})}
}

type ContactRepo struct {
	crud[models.ContactMessage, models.ContactMessagePatch, *models.ContactMessage]
}

func NewContactRepo(db *pgxpool.Pool, timeout time.Duration) *ContactRepo {
	return &ContactRepo{newCRUD[models.ContactMessage, models.ContactMessagePatch, *models.ContactMessage](db, timeout, mapping[models.ContactMessage]{
		entity:  "contact_message",
		table:   "contact_messages",
		columns: []string{"name", "email", "phone", "subject", "message", "read", "created_at"},
		values: func(m models.ContactMessage) []interface{} {
			return []interface{}{m.Name, m.Email, m.Phone, m.Subject, m.Message, m.Read, m.CreatedAt}
		},
		scan: func(row pgx.Row) (models.ContactMessage, error) {
			var m models.ContactMessage
			err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.Read, &m.CreatedAt)
			m.CreatedAt = m.CreatedAt.UTC()
			return m, err
		},
	})}
}
