package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/lib/logger/sl"
	"villa_cms/internal/metrics"
	"villa_cms/internal/repository"
	"villa_cms/internal/storage"
)

// MediaCreator is where published submissions go. The gallery service
// satisfies it, so publishing goes through the same Create path as admin uploads.
type MediaCreator interface {
	Create(ctx context.Context, asset models.MediaAsset) (models.MediaAsset, error)
}

type ModerationService struct {
	log         *slog.Logger
	submissions repository.SubmissionRepository
	media       MediaCreator
	now         func() time.Time
}

func NewModerationService(log *slog.Logger, submissions repository.SubmissionRepository, media MediaCreator) *ModerationService {
	return &ModerationService{
		log:         log,
		submissions: submissions,
		media:       media,
		now:         time.Now,
	}
}

// Submit stores a visitor's submission. It always starts pending.
func (s *ModerationService) Submit(ctx context.Context, sub models.VisitorSubmission) (models.VisitorSubmission, error) {
	const op = "service.ModerationService.Submit"
	log := s.log.With(
		slog.String("op", op),
		slog.String("category", string(sub.Category)),
	)

	created, err := s.submissions.Create(ctx, sub)
	if err != nil {
		log.Warn("submission rejected", sl.Err(err))
		return models.VisitorSubmission{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("submission received", slog.Int64("id", created.ID))

	return created, nil
}

// List returns every submission, or only those in status when it is set.
func (s *ModerationService) List(ctx context.Context, status models.SubmissionStatus) ([]models.VisitorSubmission, error) {
	const op = "service.ModerationService.List"

	var (
		subs []models.VisitorSubmission
		err  error
	)
	switch {
	case status == "":
		subs, err = s.submissions.List(ctx)
	case !status.Valid():
		return nil, fmt.Errorf("%s: %w", op, storage.NewValidationError(fmt.Sprintf("status has unknown value %q", status)))
	default:
		subs, err = s.submissions.ListByStatus(ctx, status)
	}
	if err != nil {
		s.log.Error("failed to list submissions", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return subs, nil
}

func (s *ModerationService) Get(ctx context.Context, id int64) (models.VisitorSubmission, error) {
	const op = "service.ModerationService.Get"

	sub, ok, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return models.VisitorSubmission{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return models.VisitorSubmission{}, fmt.Errorf("%s: %w", op, &storage.NotFoundError{Entity: "visitor_submission", ID: id})
	}

	return sub, nil
}

func (s *ModerationService) Approve(ctx context.Context, id int64, moderatorID, notes string) (models.VisitorSubmission, error) {
	return s.decide(ctx, "service.ModerationService.Approve", id, models.Approve(moderatorID, notes, s.now()))
}

func (s *ModerationService) Reject(ctx context.Context, id int64, moderatorID, notes string) (models.VisitorSubmission, error) {
	return s.decide(ctx, "service.ModerationService.Reject", id, models.Reject(moderatorID, notes, s.now()))
}

func (s *ModerationService) decide(ctx context.Context, op string, id int64, d models.Decision) (models.VisitorSubmission, error) {
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", id),
		slog.String("moderator", d.ModeratorID),
	)

	sub, err := s.submissions.Decide(ctx, id, d)
	if err != nil {
		log.Warn("decision refused", sl.Err(err))
		return models.VisitorSubmission{}, fmt.Errorf("%s: %w", op, err)
	}
	metrics.SubmissionDecisions.WithLabelValues(string(d.Status)).Inc()

	log.Info("submission decided", slog.String("status", string(sub.Status)))

	return sub, nil
}

// Publish copies an approved submission into the gallery. The submission
// itself is left as it is, so publishing again creates another asset.
func (s *ModerationService) Publish(ctx context.Context, id int64) (models.MediaAsset, error) {
	const op = "service.ModerationService.Publish"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", id),
	)

	sub, err := s.Get(ctx, id)
	if err != nil {
		return models.MediaAsset{}, fmt.Errorf("%s: %w", op, err)
	}
	if sub.Status != models.SubmissionApproved {
		return models.MediaAsset{}, fmt.Errorf("%s: %w", op, &storage.PreconditionError{
			Op:     op,
			Reason: fmt.Sprintf("submission %d is %s, only approved submissions can be published", id, sub.Status),
		})
	}

	asset, err := s.media.Create(ctx, sub.ToMediaAsset())
	if err != nil {
		log.Error("failed to publish submission", sl.Err(err))
		return models.MediaAsset{}, fmt.Errorf("%s: %w", op, err)
	}
	metrics.SubmissionDecisions.WithLabelValues("published").Inc()

	log.Info("submission published", slog.Int64("media_id", asset.ID))

	return asset, nil
}

// Delete removes a submission in any state. Assets already published from it stay.
func (s *ModerationService) Delete(ctx context.Context, id int64) (bool, error) {
	const op = "service.ModerationService.Delete"

	deleted, err := s.submissions.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete submission", slog.String("op", op), sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}
