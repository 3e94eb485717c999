package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"villa_cms/internal/cache"
	"villa_cms/internal/domain/models"
	"villa_cms/internal/lib/logger/sl"
	"villa_cms/internal/repository"
	"villa_cms/internal/storage"
)

const (
	keyAll            = "gallery:all"
	keyCategoryPrefix = "gallery:category:"
)

// GalleryService is the only writer of media assets. Public listings are
// served from the cache, and every write drops the cached listings.
//
// gen counts invalidations. A listing is stored only if no invalidation ran
// since it started loading; mu makes that check and the store atomic with
// respect to invalidate.
type GalleryService struct {
	log   *slog.Logger
	repo  repository.MediaRepository
	cache cache.Cache
	ttl   time.Duration

	mu  sync.Mutex
	gen uint64
}

func NewGalleryService(log *slog.Logger, repo repository.MediaRepository, c cache.Cache, ttl time.Duration) *GalleryService {
	if c == nil {
		c = cache.Nop{}
	}

	return &GalleryService{
		log:   log,
		repo:  repo,
		cache: c,
		ttl:   ttl,
	}
}

func categoryKey(category models.Category) string {
	return keyCategoryPrefix + string(category)
}

// cached serves key from the cache or loads and stores it. Cache failures are
// logged and the repository answer is used.
func (s *GalleryService) cached(ctx context.Context, log *slog.Logger, key string, load func() ([]models.MediaAsset, error)) ([]models.MediaAsset, error) {
	var assets []models.MediaAsset

	ok, err := s.cache.Get(ctx, key, &assets)
	if err != nil {
		log.Warn("cache read failed", sl.Err(err))
	}
	if ok && err == nil {
		if assets == nil {
			assets = []models.MediaAsset{}
		}
		return assets, nil
	}

	gen := s.generation()

	assets, err = load()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		log.Debug("listing changed while loading, not cached")
		return assets, nil
	}
	if err := s.cache.Set(ctx, key, assets, s.ttl); err != nil {
		log.Warn("cache write failed", sl.Err(err))
	}

	return assets, nil
}

func (s *GalleryService) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gen
}

func (s *GalleryService) List(ctx context.Context) ([]models.MediaAsset, error) {
	const op = "service.GalleryService.List"
	log := s.log.With(slog.String("op", op))

	assets, err := s.cached(ctx, log, keyAll, func() ([]models.MediaAsset, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		log.Error("failed to list media", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return assets, nil
}

// ListByCategory returns the assets of one category. An empty category lists
// everything; an unknown one yields an empty list.
func (s *GalleryService) ListByCategory(ctx context.Context, category models.Category) ([]models.MediaAsset, error) {
	const op = "service.GalleryService.ListByCategory"
	log := s.log.With(
		slog.String("op", op),
		slog.String("category", string(category)),
	)

	if category == "" {
		return s.List(ctx)
	}
	if !category.Valid() {
		log.Debug("unknown category")
		return []models.MediaAsset{}, nil
	}

	assets, err := s.cached(ctx, log, categoryKey(category), func() ([]models.MediaAsset, error) {
		return s.repo.ListByCategory(ctx, category)
	})
	if err != nil {
		log.Error("failed to list media by category", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return assets, nil
}

func (s *GalleryService) ListByTags(ctx context.Context, tags []string, matchAll bool) ([]models.MediaAsset, error) {
	const op = "service.GalleryService.ListByTags"

	assets, err := s.repo.ListByTags(ctx, tags, matchAll)
	if err != nil {
		s.log.Error("failed to list media by tags", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return assets, nil
}

func (s *GalleryService) Get(ctx context.Context, id int64) (models.MediaAsset, error) {
	const op = "service.GalleryService.Get"

	asset, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.MediaAsset{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return models.MediaAsset{}, fmt.Errorf("%s: %w", op, &storage.NotFoundError{Entity: "media_asset", ID: id})
	}

	return asset, nil
}

func (s *GalleryService) Create(ctx context.Context, asset models.MediaAsset) (models.MediaAsset, error) {
	const op = "service.GalleryService.Create"
	log := s.log.With(
		slog.String("op", op),
		slog.String("category", string(asset.Category)),
	)

	created, err := s.repo.Create(ctx, asset)
	if err != nil {
		log.Warn("failed to create media", sl.Err(err))
		return models.MediaAsset{}, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, log)

	log.Info("media created", slog.Int64("id", created.ID))

	return created, nil
}

func (s *GalleryService) Update(ctx context.Context, id int64, patch models.MediaAssetPatch) (models.MediaAsset, error) {
	const op = "service.GalleryService.Update"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", id),
	)

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		log.Warn("failed to update media", sl.Err(err))
		return models.MediaAsset{}, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, log)

	return updated, nil
}

// BatchUpdate applies every update or none.
func (s *GalleryService) BatchUpdate(ctx context.Context, updates []models.MediaAssetUpdate) ([]models.MediaAsset, error) {
	const op = "service.GalleryService.BatchUpdate"
	log := s.log.With(
		slog.String("op", op),
		slog.Int("count", len(updates)),
	)

	if len(updates) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.NewValidationError("updates must not be empty"))
	}

	updated, err := s.repo.BatchUpdate(ctx, updates)
	if err != nil {
		log.Warn("batch update rolled back", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, log)

	log.Info("batch applied")

	return updated, nil
}

// Reorder gives the listed assets sort orders 0..n-1 in the order given.
func (s *GalleryService) Reorder(ctx context.Context, ids []int64) ([]models.MediaAsset, error) {
	updates := make([]models.MediaAssetUpdate, 0, len(ids))
	for i, id := range ids {
		order := i
		updates = append(updates, models.MediaAssetUpdate{
			ID:    id,
			Patch: models.MediaAssetPatch{SortOrder: &order},
		})
	}

	return s.BatchUpdate(ctx, updates)
}

func (s *GalleryService) Delete(ctx context.Context, id int64) (bool, error) {
	const op = "service.GalleryService.Delete"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", id),
	)

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete media", sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if deleted {
		s.invalidate(ctx, log)
	}

	return deleted, nil
}

func (s *GalleryService) DeleteAll(ctx context.Context) (int, error) {
	const op = "service.GalleryService.DeleteAll"
	log := s.log.With(slog.String("op", op))

	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		log.Error("failed to clear gallery", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, log)

	log.Info("gallery cleared", slog.Int("deleted", n))

	return n, nil
}

func (s *GalleryService) invalidate(ctx context.Context, log *slog.Logger) {
	keys := make([]string, 0, len(models.Categories())+1)
	keys = append(keys, keyAll)
	for _, c := range models.Categories() {
		keys = append(keys, categoryKey(c))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Warn("cache invalidation failed", sl.Err(err))
	}
}
