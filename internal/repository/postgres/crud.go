package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/storage"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// mapping describes how one entity kind is laid out in its table. columns
// excludes id, and values must return one value per column in the same order.
// scan reads a row selected as id followed by columns.
type mapping[T any] struct {
	entity  string
	table   string
	columns []string
	values  func(T) []interface{}
	scan    func(pgx.Row) (T, error)
	orderBy []string
}

func (m mapping[T]) selectColumns() []string {
	return append([]string{"id"}, m.columns...)
}

type crud[T any, P models.Patch[T], PT models.Record[T]] struct {
	db      *pgxpool.Pool
	sb      sq.StatementBuilderType
	timeout time.Duration
	m       mapping[T]
	now     func() time.Time
}

func newCRUD[T any, P models.Patch[T], PT models.Record[T]](db *pgxpool.Pool, timeout time.Duration, m mapping[T]) crud[T, P, PT] {
	if len(m.orderBy) == 0 {
		m.orderBy = []string{"id"}
	}

	return crud[T, P, PT]{
		db:      db,
		sb:      sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		timeout: timeout,
		m:       m,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (c crud[T, P, PT]) op(name string) string {
	return "postgres." + c.m.entity + "." + name
}

func (c crud[T, P, PT]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c crud[T, P, PT]) selectAll() sq.SelectBuilder {
	return c.sb.Select(c.m.selectColumns()...).
		From(pq.QuoteIdentifier(c.m.table)).
		OrderBy(c.m.orderBy...)
}

func (c crud[T, P, PT]) query(ctx context.Context, q querier, b sq.SelectBuilder) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("can't build sql: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := c.m.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, rows.Err()
}

func (c crud[T, P, PT]) list(ctx context.Context, op string, where interface{}, args ...interface{}) ([]T, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	b := c.selectAll()
	if where != nil {
		b = b.Where(where, args...)
	}

	out, err := c.query(ctx, c.db, b)
	if err != nil {
		return nil, classify(op, err)
	}

	return out, nil
}

func (c crud[T, P, PT]) List(ctx context.Context) ([]T, error) {
	return c.list(ctx, c.op("List"), nil)
}

func (c crud[T, P, PT]) getOne(ctx context.Context, q querier, where interface{}, suffix string) (T, bool, error) {
	var zero T

	b := c.sb.Select(c.m.selectColumns()...).
		From(pq.QuoteIdentifier(c.m.table)).
		Where(where)
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return zero, false, fmt.Errorf("can't build sql: %w", err)
	}

	item, err := c.m.scan(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}

	return item, true, nil
}

func (c crud[T, P, PT]) GetByID(ctx context.Context, id int64) (T, bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	item, ok, err := c.getOne(ctx, c.db, sq.Eq{"id": id}, "")
	if err != nil {
		return item, false, classify(c.op("GetByID"), err)
	}

	return item, ok, nil
}

// prepare stamps and validates a new record. The id is left at zero; the
// sequence assigns it on insert.
func (c crud[T, P, PT]) prepare(item T) (T, error) {
	row := PT(&item).Clone()
	PT(&row).SetIdentity(0, c.now())
	if err := PT(&row).Validate(); err != nil {
		var zero T
		return zero, err
	}

	return row, nil
}

func (c crud[T, P, PT]) insert(ctx context.Context, q querier, row T, suffix string) (T, error) {
	var zero T

	query, args, err := c.sb.Insert(pq.QuoteIdentifier(c.m.table)).
		Columns(c.m.columns...).
		Values(c.m.values(row)...).
		Suffix(suffix + " RETURNING " + joinColumns(c.m.selectColumns())).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("can't build sql: %w", err)
	}

	return c.m.scan(q.QueryRow(ctx, query, args...))
}

func (c crud[T, P, PT]) Create(ctx context.Context, item T) (T, error) {
	op := c.op("Create")

	row, err := c.prepare(item)
	if err != nil {
		return row, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	created, err := c.insert(ctx, c.db, row, "")
	if err != nil {
		return created, classify(op, err)
	}

	return created, nil
}

// updateTx locks the row, merges mutate into it, validates the result and
// writes every column back. The caller owns tx.
func (c crud[T, P, PT]) updateTx(ctx context.Context, tx pgx.Tx, id int64, mutate func(*T) error) (T, error) {
	var zero T

	cur, ok, err := c.getOne(ctx, tx, sq.Eq{"id": id}, "FOR UPDATE")
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, &storage.NotFoundError{Entity: c.m.entity, ID: id}
	}

	next := PT(&cur).Clone()
	if err := mutate(&next); err != nil {
		return zero, err
	}
	if err := PT(&next).Validate(); err != nil {
		return zero, err
	}

	b := c.sb.Update(pq.QuoteIdentifier(c.m.table))
	for i, v := range c.m.values(next) {
		if col := c.m.columns[i]; col != "created_at" {
			b = b.Set(col, v)
		}
	}

	query, args, err := b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(c.m.selectColumns())).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("can't build sql: %w", err)
	}

	return c.m.scan(tx.QueryRow(ctx, query, args...))
}

// inTx runs fn in a transaction and commits only if fn succeeded.
func (c crud[T, P, PT]) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (c crud[T, P, PT]) update(ctx context.Context, op string, id int64, mutate func(*T) error) (T, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var out T
	err := c.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		out, err = c.updateTx(ctx, tx, id, mutate)
		return err
	})
	if err != nil {
		var zero T
		return zero, classify(op, err)
	}

	return out, nil
}

func (c crud[T, P, PT]) Update(ctx context.Context, id int64, patch P) (T, error) {
	return c.update(ctx, c.op("Update"), id, models.Stamped[T](patch, c.now))
}

func (c crud[T, P, PT]) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query, args, err := c.sb.Delete(pq.QuoteIdentifier(c.m.table)).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, classify(c.op("Delete"), fmt.Errorf("can't build sql: %w", err))
	}

	tag, err := c.db.Exec(ctx, query, args...)
	if err != nil {
		return false, classify(c.op("Delete"), err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteAll empties the table but leaves its sequence alone, so ids are never
// handed out twice.
func (c crud[T, P, PT]) DeleteAll(ctx context.Context) (int, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	query, args, err := c.sb.Delete(pq.QuoteIdentifier(c.m.table)).ToSql()
	if err != nil {
		return 0, classify(c.op("DeleteAll"), fmt.Errorf("can't build sql: %w", err))
	}

	tag, err := c.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, classify(c.op("DeleteAll"), err)
	}

	return int(tag.RowsAffected()), nil
}
