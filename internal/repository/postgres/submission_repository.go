package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"villa_cms/internal/domain/models"
)

type SubmissionRepo struct {
	crud[models.VisitorSubmission, models.SubmissionPatch, *models.VisitorSubmission]
}

func NewSubmissionRepo(db *pgxpool.Pool, timeout time.Duration) *SubmissionRepo {
	return &SubmissionRepo{newCRUD[models.VisitorSubmission, models.SubmissionPatch, *models.VisitorSubmission](db, timeout, mapping[models.VisitorSubmission]{
		entity: "visitor_submission",
		table:  "visitor_submissions",
		columns: []string{
			"media_url",
			"alt_text",
			"category",
			"media_type",
			"submitter_name",
			"submitter_email",
			"status",
			"moderator_id",
			"moderator_notes",
			"reviewed_at",
			"approved_at",
			"created_at",
		},
		values: func(s models.VisitorSubmission) []interface{} {
			return []interface{}{
				s.MediaURL,
				s.AltText,
				string(s.Category),
				string(s.MediaType),
				s.SubmitterName,
				s.SubmitterEmail,
				string(s.Status),
				s.ModeratorID,
				s.ModeratorNotes,
				s.ReviewedAt,
				s.ApprovedAt,
				s.CreatedAt,
			}
		},
		scan: func(row pgx.Row) (models.VisitorSubmission, error) {
			var (
				s                           models.VisitorSubmission
				category, mediaType, status string
			)
			err := row.Scan(
				&s.ID,
				&s.MediaURL,
				&s.AltText,
				&category,
				&mediaType,
				&s.SubmitterName,
				&s.SubmitterEmail,
				&status,
				&s.ModeratorID,
				&s.ModeratorNotes,
				&s.ReviewedAt,
				&s.ApprovedAt,
				&s.CreatedAt,
			)
			s.Category = models.Category(category)
			s.MediaType = models.MediaType(mediaType)
			s.Status = models.SubmissionStatus(status)
			s.ReviewedAt = utcPtr(s.ReviewedAt)
			s.ApprovedAt = utcPtr(s.ApprovedAt)
			s.CreatedAt = s.CreatedAt.UTC()
			return s, err
		},
	})}
}

func (r *SubmissionRepo) ListByStatus(ctx context.Context, status models.SubmissionStatus) ([]models.VisitorSubmission, error) {
	return r.list(ctx, r.op("ListByStatus"), sq.Eq{"status": string(status)})
}

// Decide locks the row for the whole check-and-set, so two moderators racing
// on one submission cannot both succeed.
func (r *SubmissionRepo) Decide(ctx context.Context, id int64, decision models.Decision) (models.VisitorSubmission, error) {
	decision.At = decision.At.UTC().Truncate(time.Microsecond)
	return r.update(ctx, r.op("Decide"), id, decision.Apply)
}
