// Package postgres is the durable repository backend. Every operation runs
// under its own timeout, and multi-row changes run in one transaction.
package postgres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"villa_cms/internal/repository"
	"villa_cms/internal/storage"
)

// SQLSTATE codes that mean the input broke a table constraint.
const (
	numericValueOutOfRange    = "22003"
	invalidTextRepresentation = "22P02"
	notNullViolation          = "23502"
	foreignKeyViolation       = "23503"
	uniqueViolation           = "23505"
	checkViolation            = "23514"
)

// New builds a Repository over db. timeout bounds every single operation;
// zero disables it. Close on the result closes the pool.
func New(db *pgxpool.Pool, timeout time.Duration) *repository.Repository {
	repo := repository.New(db.Close)

	repo.Rooms = NewRoomRepo(db, timeout)
	repo.Testimonials = NewTestimonialRepo(db, timeout)
	repo.Activities = NewActivityRepo(db, timeout)
	repo.Dining = NewDiningRepo(db, timeout)
	repo.Media = NewMediaRepo(db, timeout)
	repo.Documents = NewContentRepo(db, timeout)
	repo.Bookings = NewBookingRepo(db, timeout)
	repo.Contacts = NewContactRepo(db, timeout)
	repo.Newsletter = NewNewsletterRepo(db, timeout)
	repo.Submissions = NewSubmissionRepo(db, timeout)

	return repo
}

// classify maps a driver failure onto the storage taxonomy. Errors that
// already belong to it pass through unchanged; constraint violations become
// validation errors; everything else is a storage failure.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if storage.IsDomainError(err) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case numericValueOutOfRange, invalidTextRepresentation, notNullViolation, foreignKeyViolation, uniqueViolation, checkViolation:
			return fmt.Errorf("%s: %w", op, storage.NewValidationError(pgErr.Message))
		}
	}

	return &storage.StorageError{Op: op, Err: err}
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// strs keeps NOT NULL array columns from receiving NULL.
func strs(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
