package repository

import (
	"context"

	"villa_cms/internal/domain/models"
)

// CRUD is the contract every entity kind exposes, whatever the backend.
//
// GetByID and Delete report absence through their bool result, never as an
// error. Update merges only the fields set in the patch and fails with a
// *storage.NotFoundError for an unknown id. ID and CreatedAt are owned by the
// store and never change after Create.
type CRUD[T any, P any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, bool, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, patch P) (T, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteAll(ctx context.Context) (int, error)
}

type RoomRepository interface {
	CRUD[models.Room, models.RoomPatch]
}

type TestimonialRepository interface {
	CRUD[models.Testimonial, models.TestimonialPatch]
}

type ActivityRepository interface {
	CRUD[models.Activity, models.ActivityPatch]
}

type DiningRepository interface {
	CRUD[models.DiningOption, models.DiningOptionPatch]
}

// MediaRepository lists assets ordered by SortOrder, then ID.
type MediaRepository interface {
	CRUD[models.MediaAsset, models.MediaAssetPatch]
	ListByCategory(ctx context.Context, category models.Category) ([]models.MediaAsset, error)
	// ListByTags matches assets carrying all (matchAll) or any of the tags.
	ListByTags(ctx context.Context, tags []string, matchAll bool) ([]models.MediaAsset, error)
	// GetByIDs skips ids that do not exist.
	GetByIDs(ctx context.Context, ids []int64) ([]models.MediaAsset, error)
	// BatchUpdate applies every update or none of them.
	BatchUpdate(ctx context.Context, updates []models.MediaAssetUpdate) ([]models.MediaAsset, error)
}

type ContentRepository interface {
	CRUD[models.ContentDocument, models.ContentDocumentPatch]
	ListByCategory(ctx context.Context, category models.DocumentCategory) ([]models.ContentDocument, error)
}

type BookingRepository interface {
	CRUD[models.BookingInquiry, models.BookingInquiryPatch]
}

type ContactRepository interface {
	CRUD[models.ContactMessage, models.ContactMessagePatch]
}

// NewsletterRepository keeps one row per email.
//
// Create rejects an email that is already active and reactivates an inactive
// one. Subscribe is the idempotent form: an already active email returns the
// existing record unchanged.
type NewsletterRepository interface {
	CRUD[models.NewsletterSubscriber, models.NewsletterSubscriberPatch]
	GetByEmail(ctx context.Context, email string) (models.NewsletterSubscriber, bool, error)
	Subscribe(ctx context.Context, email, name string) (models.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, email string) (models.NewsletterSubscriber, error)
}

type SubmissionRepository interface {
	CRUD[models.VisitorSubmission, models.SubmissionPatch]
	ListByStatus(ctx context.Context, status models.SubmissionStatus) ([]models.VisitorSubmission, error)
	// Decide applies a moderation decision to a pending submission atomically.
	Decide(ctx context.Context, id int64, decision models.Decision) (models.VisitorSubmission, error)
}
