package postgres

import (
	"context"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"villa_cms/internal/domain/models"
)

type MediaRepo struct {
	crud[models.MediaAsset, models.MediaAssetPatch, *models.MediaAsset]
}

func NewMediaRepo(db *pgxpool.Pool, timeout time.Duration) *MediaRepo {
	return &MediaRepo{newCRUD[models.MediaAsset, models.MediaAssetPatch, *models.MediaAsset](db, timeout, mapping[models.MediaAsset]{
		entity: "media_asset",
		table:  "media_assets",
		columns: []string{
			"url",
			"alt_text",
			"title",
			"description",
			"category",
			"tags",
			"media_type",
			"featured",
			"sort_order",
			"file_size",
			"created_at",
		},
		values: func(m models.MediaAsset) []interface{} {
			return []interface{}{
				m.URL,
				m.AltText,
				m.Title,
				m.Description,
				string(m.Category),
				strs(m.Tags),
				string(m.MediaType),
				m.Featured,
				m.SortOrder,
				m.FileSize,
				m.CreatedAt,
			}
		},
		scan:    scanMedia,
		orderBy: []string{"sort_order", "id"},
	})}
}

func scanMedia(row pgx.Row) (models.MediaAsset, error) {
	var (
		m         models.MediaAsset
		category  string
		mediaType string
	)

	err := row.Scan(
		&m.ID,
		&m.URL,
		&m.AltText,
		&m.Title,
		&m.Description,
		&category,
		&m.Tags,
		&mediaType,
		&m.Featured,
		&m.SortOrder,
		&m.FileSize,
		&m.CreatedAt,
	)
	m.Category = models.Category(category)
	m.MediaType = models.MediaType(mediaType)
	m.CreatedAt = m.CreatedAt.UTC()

	return m, err
}

func (r *MediaRepo) ListByCategory(ctx context.Context, category models.Category) ([]models.MediaAsset, error) {
	return r.list(ctx, r.op("ListByCategory"), sq.Eq{"category": string(category)})
}

// ListByTags uses the array containment operators, so the GIN index on tags
// serves both modes.
func (r *MediaRepo) ListByTags(ctx context.Context, tags []string, matchAll bool) ([]models.MediaAsset, error) {
	if len(tags) == 0 {
		return r.List(ctx)
	}

	if matchAll {
		return r.list(ctx, r.op("ListByTags"), "tags @> ?", tags)
	}
	return r.list(ctx, r.op("ListByTags"), "tags && ?", tags)
}

func (r *MediaRepo) GetByIDs(ctx context.Context, ids []int64) ([]models.MediaAsset, error) {
	if len(ids) == 0 {
		return []models.MediaAsset{}, nil
	}

	return r.list(ctx, r.op("GetByIDs"), "id = ANY(?)", ids)
}

// BatchUpdate applies the updates in order inside one transaction. The first
// failure rolls back the whole batch.
func (r *MediaRepo) BatchUpdate(ctx context.Context, updates []models.MediaAssetUpdate) ([]models.MediaAsset, error) {
	op := r.op("BatchUpdate")

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	byID := make(map[int64]models.MediaAsset, len(updates))
	order := make([]int64, 0, len(updates))

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		for i, u := range updates {
			updated, err := r.updateTx(ctx, tx, u.ID, u.Patch.Apply)
			if err != nil {
				return fmt.Errorf("update %d (id %d): %w", i, u.ID, err)
			}
			if _, seen := byID[u.ID]; !seen {
				order = append(order, u.ID)
			}
			byID[u.ID] = updated
		}
		return nil
	})
	if err != nil {
		return nil, classify(op, err)
	}

	out := make([]models.MediaAsset, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	slices.SortFunc(out, models.CompareMedia)

	return out, nil
}
