// Package seed loads the baseline catalogue a fresh installation starts with.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"villa_cms/internal/lib/logger/sl"
	"villa_cms/internal/repository"
)

// Seeder fills Rooms, Testimonials, Activities, Dining and Media with the
// baseline data. A kind is only seeded while it is empty, so running against
// a store that already holds records changes nothing.
type Seeder struct {
	log  *slog.Logger
	repo *repository.Repository

	once sync.Once
	err  error
}

func New(log *slog.Logger, repo *repository.Repository) *Seeder {
	return &Seeder{log: log, repo: repo}
}

// Run seeds at most once per Seeder. Later calls return the first result.
func (s *Seeder) Run(ctx context.Context) error {
	s.once.Do(func() {
		s.err = s.run(ctx)
	})

	return s.err
}

type lister[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
}

func seedKind[T any](ctx context.Context, log *slog.Logger, kind string, repo lister[T], items []T) error {
	op := "seed." + kind

	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(existing) > 0 {
		log.Debug("already seeded", slog.String("kind", kind), slog.Int("count", len(existing)))
		return nil
	}

	for _, item := range items {
		if _, err := repo.Create(ctx, item); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	log.Info("seeded", slog.String("kind", kind), slog.Int("count", len(items)))

	return nil
}

func (s *Seeder) run(ctx context.Context) error {
	const op = "seed.Seeder.Run"

	log := s.log.With(slog.String("op", op))

	steps := []func() error{
		func() error { return seedKind(ctx, log, "rooms", s.repo.Rooms, rooms()) },
		func() error { return seedKind(ctx, log, "testimonials", s.repo.Testimonials, testimonials()) },
		func() error { return seedKind(ctx, log, "activities", s.repo.Activities, activities()) },
		func() error { return seedKind(ctx, log, "dining", s.repo.Dining, diningOptions()) },
		func() error { return seedKind(ctx, log, "media", s.repo.Media, media()) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			log.Error("seeding failed", sl.Err(err))
			return err
		}
	}

	return nil
}
