// Package memory is the in-process repository backend used for demo data
// and fast tests. Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/repository"
	"villa_cms/internal/storage"
)

type RoomRepo struct {
	crud[models.Room, models.RoomPatch, *models.Room]
}

type TestimonialRepo struct {
	crud[models.Testimonial, models.TestimonialPatch, *models.Testimonial]
}

type ActivityRepo struct {
	crud[models.Activity, models.ActivityPatch, *models.Activity]
}

type DiningRepo struct {
	crud[models.DiningOption, models.DiningOptionPatch, *models.DiningOption]
}

type BookingRepo struct {
	crud[models.BookingInquiry, models.BookingInquiryPatch, *models.BookingInquiry]
}

type ContactRepo struct {
	crud[models.ContactMessage, models.ContactMessagePatch, *models.ContactMessage]
}

// New builds a Repository whose every collection lives in this process.
func New() *repository.Repository {
	repo := repository.New(nil)

	repo.Rooms = &RoomRepo{newCRUD[models.Room, models.RoomPatch, *models.Room]("room", nil)}
	repo.Testimonials = &TestimonialRepo{newCRUD[models.Testimonial, models.TestimonialPatch, *models.Testimonial]("testimonial", nil)}
	repo.Activities = &ActivityRepo{newCRUD[models.Activity, models.ActivityPatch, *models.Activity]("activity", nil)}
	repo.Dining = &DiningRepo{newCRUD[models.DiningOption, models.DiningOptionPatch, *models.DiningOption]("dining_option", nil)}
	repo.Media = NewMediaRepo()
	repo.Documents = NewContentRepo()
	repo.Bookings = &BookingRepo{newCRUD[models.BookingInquiry, models.BookingInquiryPatch, *models.BookingInquiry]("booking_inquiry", nil)}
	repo.Contacts = &ContactRepo{newCRUD[models.ContactMessage, models.ContactMessagePatch, *models.ContactMessage]("contact_message", nil)}
	repo.Newsletter = NewNewsletterRepo()
	repo.Submissions = NewSubmissionRepo()

	return repo
}

type MediaRepo struct {
	crud[models.MediaAsset, models.MediaAssetPatch, *models.MediaAsset]
}

func NewMediaRepo() *MediaRepo {
	return &MediaRepo{newCRUD[models.MediaAsset, models.MediaAssetPatch, *models.MediaAsset]("media_asset", models.CompareMedia)}
}

func (r *MediaRepo) ListByCategory(_ context.Context, category models.Category) ([]models.MediaAsset, error) {
	return r.t.list(func(m models.MediaAsset) bool { return m.Category == category }), nil
}

func (r *MediaRepo) ListByTags(_ context.Context, tags []string, matchAll bool) ([]models.MediaAsset, error) {
	if len(tags) == 0 {
		return r.t.list(nil), nil
	}

	return r.t.list(func(m models.MediaAsset) bool {
		if matchAll {
			for _, tag := range tags {
				if !slices.Contains(m.Tags, tag) {
					return false
				}
			}
			return true
		}
		for _, tag := range tags {
			if slices.Contains(m.Tags, tag) {
				return true
			}
		}
		return false
	}), nil
}

func (r *MediaRepo) GetByIDs(_ context.Context, ids []int64) ([]models.MediaAsset, error) {
	if len(ids) == 0 {
		return []models.MediaAsset{}, nil
	}

	return r.t.list(func(m models.MediaAsset) bool { return slices.Contains(ids, m.ID) }), nil
}

func (r *MediaRepo) BatchUpdate(_ context.Context, updates []models.MediaAssetUpdate) ([]models.MediaAsset, error) {
	const op = "memory.media_asset.BatchUpdate"

	changes := make([]change[models.MediaAsset], 0, len(updates))
	for _, u := range updates {
		changes = append(changes, change[models.MediaAsset]{id: u.ID, mutate: u.Patch.Apply})
	}

	updated, err := r.t.updateAll(changes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	slices.SortFunc(updated, models.CompareMedia)

	return updated, nil
}

type ContentRepo struct {
	crud[models.ContentDocument, models.ContentDocumentPatch, *models.ContentDocument]
}

func NewContentRepo() *ContentRepo {
	return &ContentRepo{newCRUD[models.ContentDocument, models.ContentDocumentPatch, *models.ContentDocument]("content_document", models.CompareDocuments)}
}

func (r *ContentRepo) ListByCategory(_ context.Context, category models.DocumentCategory) ([]models.ContentDocument, error) {
	return r.t.list(func(d models.ContentDocument) bool { return d.Category == category }), nil
}

type NewsletterRepo struct {
	crud[models.NewsletterSubscriber, models.NewsletterSubscriberPatch, *models.NewsletterSubscriber]
}

func NewNewsletterRepo() *NewsletterRepo {
	return &NewsletterRepo{newCRUD[models.NewsletterSubscriber, models.NewsletterSubscriberPatch, *models.NewsletterSubscriber]("newsletter_subscriber", nil)}
}

func byEmail(email string) func(models.NewsletterSubscriber) bool {
	email = models.NormalizeEmail(email)
	return func(s models.NewsletterSubscriber) bool { return s.Email == email }
}

func (r *NewsletterRepo) GetByEmail(_ context.Context, email string) (models.NewsletterSubscriber, bool, error) {
	sub, ok := r.t.find(byEmail(email))
	return sub, ok, nil
}

func (r *NewsletterRepo) Create(_ context.Context, sub models.NewsletterSubscriber) (models.NewsletterSubscriber, error) {
	const op = "memory.newsletter_subscriber.Create"

	out, existed, err := r.upsert(sub)
	if err != nil {
		return out, fmt.Errorf("%s: %w", op, err)
	}
	if existed {
		return models.NewsletterSubscriber{}, fmt.Errorf("%s: %w", op,
			storage.NewValidationError(fmt.Sprintf("email %s is already subscribed", out.Email)))
	}

	return out, nil
}

func (r *NewsletterRepo) Subscribe(_ context.Context, email, name string) (models.NewsletterSubscriber, error) {
	const op = "memory.newsletter_subscriber.Subscribe"

	out, _, err := r.upsert(models.NewsletterSubscriber{Email: email, Name: name})
	if err != nil {
		return out, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// upsert inserts a new subscriber or reactivates an inactive one. existed
// reports that the email was already active, in which case nothing changed.
func (r *NewsletterRepo) upsert(sub models.NewsletterSubscriber) (models.NewsletterSubscriber, bool, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	cur, ok := r.t.findLocked(byEmail(sub.Email))
	if !ok {
		out, err := r.t.insertLocked(sub)
		return out, false, err
	}
	if cur.Active {
		return cur, true, nil
	}

	out, err := r.t.updateLocked(cur.ID, func(s *models.NewsletterSubscriber) error {
		s.Active = true
		if strings.TrimSpace(sub.Name) != "" {
			s.Name = sub.Name
		}
		return nil
	})

	return out, false, err
}

func (r *NewsletterRepo) Unsubscribe(_ context.Context, email string) (models.NewsletterSubscriber, error) {
	const op = "memory.newsletter_subscriber.Unsubscribe"

	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	cur, ok := r.t.findLocked(byEmail(email))
	if !ok {
		return models.NewsletterSubscriber{}, fmt.Errorf("%s: %w", op,
			&storage.NotFoundError{Entity: r.t.name, ID: models.NormalizeEmail(email)})
	}

	out, err := r.t.updateLocked(cur.ID, func(s *models.NewsletterSubscriber) error {
		s.Active = false
		return nil
	})
	if err != nil {
		return out, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

type SubmissionRepo struct {
	crud[models.VisitorSubmission, models.SubmissionPatch, *models.VisitorSubmission]
}

func NewSubmissionRepo() *SubmissionRepo {
	return &SubmissionRepo{newCRUD[models.VisitorSubmission, models.SubmissionPatch, *models.VisitorSubmission]("visitor_submission", nil)}
}

func (r *SubmissionRepo) ListByStatus(_ context.Context, status models.SubmissionStatus) ([]models.VisitorSubmission, error) {
	return r.t.list(func(s models.VisitorSubmission) bool { return s.Status == status }), nil
}

func (r *SubmissionRepo) Decide(_ context.Context, id int64, decision models.Decision) (models.VisitorSubmission, error) {
	const op = "memory.visitor_submission.Decide"

	out, err := r.t.update(id, decision.Apply)
	if err != nil {
		return out, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
