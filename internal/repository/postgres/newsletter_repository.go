package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/storage"
)

type NewsletterRepo struct {
	crud[models.NewsletterSubscriber, models.NewsletterSubscriberPatch, *models.NewsletterSubscriber]
}

func NewNewsletterRepo(db *pgxpool.Pool, timeout time.Duration) *NewsletterRepo {
	return &NewsletterRepo{newCRUD[models.NewsletterSubscriber, models.NewsletterSubscriberPatch, *models.NewsletterSubscriber](db, timeout, mapping[models.NewsletterSubscriber]{
		entity:  "newsletter_subscriber",
		table:   "newsletter_subscribers",
		columns: []string{"email", "name", "active", "created_at"},
		values: func(s models.NewsletterSubscriber) []interface{} {
			return []interface{}{s.Email, s.Name, s.Active, s.CreatedAt}
		},
		scan: func(row pgx.Row) (models.NewsletterSubscriber, error) {
			var s models.NewsletterSubscriber
			err := row.Scan(&s.ID, &s.Email, &s.Name, &s.Active, &s.CreatedAt)
			s.CreatedAt = s.CreatedAt.UTC()
			return s, err
		},
	})}
}

// reactivate turns an insert into a no-op for active emails and into a
// reactivation for inactive ones. A blank name keeps the stored one.
const reactivate = `ON CONFLICT (email) DO UPDATE SET
	active = TRUE,
	name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE newsletter_subscribers.name END
WHERE newsletter_subscribers.active = FALSE`

func (r *NewsletterRepo) GetByEmail(ctx context.Context, email string) (models.NewsletterSubscriber, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	sub, ok, err := r.getOne(ctx, r.db, sq.Eq{"email": models.NormalizeEmail(email)}, "")
	if err != nil {
		return sub, false, classify(r.op("GetByEmail"), err)
	}

	return sub, ok, nil
}

// upsert inserts sub or reactivates its inactive row. existed reports that
// the email was already active, in which case nothing was written.
func (r *NewsletterRepo) upsert(ctx context.Context, sub models.NewsletterSubscriber) (models.NewsletterSubscriber, bool, error) {
	row, err := r.prepare(sub)
	if err != nil {
		return row, false, err
	}
	row.Name = strings.TrimSpace(row.Name)

	out, err := r.insert(ctx, r.db, row, reactivate)
	if errors.Is(err, pgx.ErrNoRows) {
		cur, ok, err := r.getOne(ctx, r.db, sq.Eq{"email": row.Email}, "")
		if err != nil {
			return cur, false, err
		}
		if !ok {
			return cur, false, &storage.NotFoundError{Entity: r.m.entity, ID: row.Email}
		}
		return cur, true, nil
	}
	if err != nil {
		return out, false, err
	}

	return out, false, nil
}

func (r *NewsletterRepo) Create(ctx context.Context, sub models.NewsletterSubscriber) (models.NewsletterSubscriber, error) {
	op := r.op("Create")

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	out, existed, err := r.upsert(ctx, sub)
	if err != nil {
		return models.NewsletterSubscriber{}, classify(op, err)
	}
	if existed {
		return models.NewsletterSubscriber{}, fmt.Errorf("%s: %w", op,
			storage.NewValidationError(fmt.Sprintf("email %s is already subscribed", out.Email)))
	}

	return out, nil
}

func (r *NewsletterRepo) Subscribe(ctx context.Context, email, name string) (models.NewsletterSubscriber, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	out, _, err := r.upsert(ctx, models.NewsletterSubscriber{Email: email, Name: name})
	if err != nil {
		return models.NewsletterSubscriber{}, classify(r.op("Subscribe"), err)
	}

	return out, nil
}

func (r *NewsletterRepo) Unsubscribe(ctx context.Context, email string) (models.NewsletterSubscriber, error) {
	op := r.op("Unsubscribe")

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	email = models.NormalizeEmail(email)

	query, args, err := r.sb.Update(r.m.table).
		Set("active", false).
		Where(sq.Eq{"email": email}).
		Suffix("RETURNING " + joinColumns(r.m.selectColumns())).
		ToSql()
	if err != nil {
		return models.NewsletterSubscriber{}, classify(op, fmt.Errorf("can't build sql: %w", err))
	}

	out, err := r.m.scan(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.NewsletterSubscriber{}, fmt.Errorf("%s: %w", op, &storage.NotFoundError{Entity: r.m.entity, ID: email})
	}
	if err != nil {
		return models.NewsletterSubscriber{}, classify(op, err)
	}

	return out, nil
}
