package services

import (
	"context"
	"fmt"
	"log/slog"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/lib/logger/sl"
	"villa_cms/internal/repository"
)

// InquiryService takes in what visitors send through the site forms and
// lets the admin work through it.
type InquiryService struct {
	log        *slog.Logger
	bookings   repository.BookingRepository
	contacts   repository.ContactRepository
	newsletter repository.NewsletterRepository
}

func NewInquiryService(log *slog.Logger, bookings repository.BookingRepository, contacts repository.ContactRepository, newsletter repository.NewsletterRepository) *InquiryService {
	return &InquiryService{
		log:        log,
		bookings:   bookings,
		contacts:   contacts,
		newsletter: newsletter,
	}
}

func (s *InquiryService) SubmitBooking(ctx context.Context, b models.BookingInquiry) (models.BookingInquiry, error) {
	const op = "service.InquiryService.SubmitBooking"
	log := s.log.With(slog.String("op", op))

	b.Processed = false
	created, err := s.bookings.Create(ctx, b)
	if err != nil {
		log.Warn("booking inquiry rejected", sl.Err(err))
		return models.BookingInquiry{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking inquiry received",
		slog.Int64("id", created.ID),
		slog.Int("guests", created.Guests),
	)

	return created, nil
}

func (s *InquiryService) ListBookings(ctx context.Context) ([]models.BookingInquiry, error) {
	const op = "service.InquiryService.ListBookings"

	out, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *InquiryService) MarkBookingProcessed(ctx context.Context, id int64) (models.BookingInquiry, error) {
	const op = "service.InquiryService.MarkBookingProcessed"

	processed := true
	out, err := s.bookings.Update(ctx, id, models.BookingInquiryPatch{Processed: &processed})
	if err != nil {
		s.log.Warn("failed to mark booking processed", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.BookingInquiry{}, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *InquiryService) SubmitContact(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	const op = "service.InquiryService.SubmitContact"
	log := s.log.With(slog.String("op", op))

	m.Read = false
	created, err := s.contacts.Create(ctx, m)
	if err != nil {
		log.Warn("contact message rejected", sl.Err(err))
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("contact message received", slog.Int64("id", created.ID))

	return created, nil
}

func (s *InquiryService) ListContacts(ctx context.Context) ([]models.ContactMessage, error) {
	const op = "service.InquiryService.ListContacts"

	out, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *InquiryService) MarkContactRead(ctx context.Context, id int64) (models.ContactMessage, error) {
	const op = "service.InquiryService.MarkContactRead"

	read := true
	out, err := s.contacts.Update(ctx, id, models.ContactMessagePatch{Read: &read})
	if err != nil {
		s.log.Warn("failed to mark message read", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Subscribe is idempotent: an address that is already subscribed is returned as is.
func (s *InquiryService) Subscribe(ctx context.Context, email, name string) (models.NewsletterSubscriber, error) {
	const op = "service.InquiryService.Subscribe"

	sub, err := s.newsletter.Subscribe(ctx, email, name)
	if err != nil {
		s.log.Warn("subscription failed", slog.String("op", op), sl.Err(err))
		return models.NewsletterSubscriber{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("newsletter subscription", slog.String("op", op), slog.Int64("id", sub.ID))

	return sub, nil
}

func (s *InquiryService) Unsubscribe(ctx context.Context, email string) (models.NewsletterSubscriber, error) {
	const op = "service.InquiryService.Unsubscribe"

	sub, err := s.newsletter.Unsubscribe(ctx, email)
	if err != nil {
		return models.NewsletterSubscriber{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("newsletter unsubscription", slog.String("op", op), slog.Int64("id", sub.ID))

	return sub, nil
}

func (s *InquiryService) ListSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	const op = "service.InquiryService.ListSubscribers"

	out, err := s.newsletter.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
