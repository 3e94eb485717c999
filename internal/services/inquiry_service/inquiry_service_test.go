package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/repository/memory"
	"villa_cms/internal/storage"
)

func newInquiryService() *InquiryService {
	repo := memory.New()
	return NewInquiryService(slog.Default(), repo.Bookings, repo.Contacts, repo.Newsletter)
}

func TestInquiryService_Bookings(t *testing.T) {
	svc := newInquiryService()
	ctx := context.Background()

	checkIn := time.Now().UTC().AddDate(0, 0, 14)

	tests := []struct {
		name    string
		booking models.BookingInquiry
		wantErr error
	}{
		{
			name: "valid",
			booking: models.BookingInquiry{
				CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 4), Guests: 3,
				GuestName: gofakeit.Name(), Email: gofakeit.Email(), Processed: true,
			},
		},
		{
			name: "check out before check in",
			booking: models.BookingInquiry{
				CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, -1), Guests: 2,
				GuestName: gofakeit.Name(), Email: gofakeit.Email(),
			},
			wantErr: storage.ErrValidation,
		},
		{
			name: "check in in the past",
			booking: models.BookingInquiry{
				CheckIn: time.Now().AddDate(0, 0, -3), CheckOut: checkIn, Guests: 2,
				GuestName: gofakeit.Name(), Email: gofakeit.Email(),
			},
			wantErr: storage.ErrValidation,
		},
		{
			name: "no guests",
			booking: models.BookingInquiry{
				CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1),
				GuestName: gofakeit.Name(), Email: gofakeit.Email(),
			},
			wantErr: storage.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SubmitBooking(ctx, tt.booking)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, got.Processed)

			processed, err := svc.MarkBookingProcessed(ctx, got.ID)
			require.NoError(t, err)
			assert.True(t, processed.Processed)
			assert.Equal(t, got.GuestName, processed.GuestName)
		})
	}

	all, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.MarkBookingProcessed(ctx, 404)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestInquiryService_Contacts(t *testing.T) {
	svc := newInquiryService()
	ctx := context.Background()

	msg, err := svc.SubmitContact(ctx, models.ContactMessage{
		Name:    gofakeit.Name(),
		Email:   gofakeit.Email(),
		Subject: "Airport transfer",
		Message: "Can you arrange a pickup from Colombo?",
		Read:    true,
	})
	require.NoError(t, err)
	assert.False(t, msg.Read)

	read, err := svc.MarkContactRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)
	assert.Equal(t, msg.Subject, read.Subject)

	_, err = svc.SubmitContact(ctx, models.ContactMessage{Name: "x", Email: "not-an-email", Message: "hi"})
	assert.ErrorIs(t, err, storage.ErrValidation)

	all, err := svc.ListContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInquiryService_Newsletter(t *testing.T) {
	svc := newInquiryService()
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, "Traveller@Example.com", "Mia")
	require.NoError(t, err)
	assert.True(t, sub.Active)

	again, err := svc.Subscribe(ctx, "traveller@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, sub, again)

	off, err := svc.Unsubscribe(ctx, "traveller@example.com")
	require.NoError(t, err)
	assert.False(t, off.Active)

	back, err := svc.Subscribe(ctx, "traveller@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, back.ID)
	assert.True(t, back.Active)

	_, err = svc.Unsubscribe(ctx, "stranger@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = svc.Subscribe(ctx, "nope", "")
	assert.ErrorIs(t, err, storage.ErrValidation)

	all, err := svc.ListSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
