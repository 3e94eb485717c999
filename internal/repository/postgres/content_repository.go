package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"villa_cms/internal/domain/models"
)

type ContentRepo struct {
	crud[models.ContentDocument, models.ContentDocumentPatch, *models.ContentDocument]
}

func NewContentRepo(db *pgxpool.Pool, timeout time.Duration) *ContentRepo {
	return &ContentRepo{newCRUD[models.ContentDocument, models.ContentDocumentPatch, *models.ContentDocument](db, timeout, mapping[models.ContentDocument]{
		entity: "content_document",
		table:  "content_documents",
		columns: []string{
			"title",
			"description",
			"file_url",
			"file_type",
			"category",
			"target_audience",
			"status",
			"sort_order",
			"created_at",
			"updated_at",
		},
		values: func(d models.ContentDocument) []interface{} {
			return []interface{}{
				d.Title,
				d.Description,
				d.FileURL,
				d.FileType,
				string(d.Category),
				strs(d.TargetAudience),
				string(d.Status),
				d.SortOrder,
				d.CreatedAt,
				d.UpdatedAt,
			}
		},
		scan: func(row pgx.Row) (models.ContentDocument, error) {
			var (
				d        models.ContentDocument
				category string
				status   string
			)
			err := row.Scan(
				&d.ID,
				&d.Title,
				&d.Description,
				&d.FileURL,
				&d.FileType,
				&category,
				&d.TargetAudience,
				&status,
				&d.SortOrder,
				&d.CreatedAt,
				&d.UpdatedAt,
			)
			d.Category = models.DocumentCategory(category)
			d.Status = models.DocumentStatus(status)
			d.CreatedAt = d.CreatedAt.UTC()
			d.UpdatedAt = d.UpdatedAt.UTC()
			return d, err
		},
		orderBy: []string{"sort_order", "id"},
	})}
}

func (r *ContentRepo) ListByCategory(ctx context.Context, category models.DocumentCategory) ([]models.ContentDocument, error) {
	return r.list(ctx, r.op("ListByCategory"), sq.Eq{"category": string(category)})
}
