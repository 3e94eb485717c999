package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"villa_cms/internal/cache"
	"villa_cms/internal/domain/models"
	"villa_cms/internal/repository"
	"villa_cms/internal/repository/memory"
	"villa_cms/internal/storage"
)

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) List(ctx context.Context) ([]models.MediaAsset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) GetByID(ctx context.Context, id int64) (models.MediaAsset, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.MediaAsset), args.Bool(1), args.Error(2)
}

func (m *MockMediaRepository) Create(ctx context.Context, item models.MediaAsset) (models.MediaAsset, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) Update(ctx context.Context, id int64, patch models.MediaAssetPatch) (models.MediaAsset, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(models.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMediaRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockMediaRepository) ListByCategory(ctx context.Context, category models.Category) ([]models.MediaAsset, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]models.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) ListByTags(ctx context.Context, tags []string, matchAll bool) ([]models.MediaAsset, error) {
	args := m.Called(ctx, tags, matchAll)
	return args.Get(0).([]models.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.MediaAsset, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) BatchUpdate(ctx context.Context, updates []models.MediaAssetUpdate) ([]models.MediaAsset, error) {
	args := m.Called(ctx, updates)
	return args.Get(0).([]models.MediaAsset), args.Error(1)
}

// failingCache reports an error on every call.
type failingCache struct{}

func (failingCache) Get(context.Context, string, any) (bool, error) {
	return false, errors.New("cache down")
}

func (failingCache) Set(context.Context, string, any, time.Duration) error {
	return errors.New("cache down")
}

func (failingCache) Delete(context.Context, ...string) error { return errors.New("cache down") }

func newService(repo *MockMediaRepository) *GalleryService {
	return NewGalleryService(slog.Default(), repo, cache.NewLocal(time.Minute), time.Minute)
}

func poolAssets() []models.MediaAsset {
	return []models.MediaAsset{
		{ID: 1, URL: "/pool.jpg", Category: models.CategoryPoolDeck, MediaType: models.MediaTypeImage},
	}
}

func TestGalleryService_ListByCategoryIsCached(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	svc := newService(repo)

	repo.On("ListByCategory", ctx, models.CategoryPoolDeck).Return(poolAssets(), nil).Once()

	first, err := svc.ListByCategory(ctx, models.CategoryPoolDeck)
	require.NoError(t, err)
	second, err := svc.ListByCategory(ctx, models.CategoryPoolDeck)
	require.NoError(t, err)

	assert.Equal(t, poolAssets(), first)
	assert.Equal(t, first, second)
	repo.AssertExpectations(t)
}

func TestGalleryService_WritesInvalidateCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(repo *MockMediaRepository)
		write func(svc *GalleryService) error
	}{
		{
			name: "create",
			setup: func(repo *MockMediaRepository) {
				repo.On("Create", ctx, mock.Anything).Return(poolAssets()[0], nil).Once()
			},
			write: func(svc *GalleryService) error {
				_, err := svc.Create(ctx, poolAssets()[0])
				return err
			},
		},
		{
			name: "update",
			setup: func(repo *MockMediaRepository) {
				repo.On("Update", ctx, int64(1), mock.Anything).Return(poolAssets()[0], nil).Once()
			},
			write: func(svc *GalleryService) error {
				featured := true
				_, err := svc.Update(ctx, 1, models.MediaAssetPatch{Featured: &featured})
				return err
			},
		},
		{
			name: "reorder",
			setup: func(repo *MockMediaRepository) {
				repo.On("BatchUpdate", ctx, mock.Anything).Return(poolAssets(), nil).Once()
			},
			write: func(svc *GalleryService) error {
				_, err := svc.Reorder(ctx, []int64{1})
				return err
			},
		},
		{
			name: "delete",
			setup: func(repo *MockMediaRepository) {
				repo.On("Delete", ctx, int64(1)).Return(true, nil).Once()
			},
			write: func(svc *GalleryService) error {
				_, err := svc.Delete(ctx, 1)
				return err
			},
		},
		{
			name: "delete all",
			setup: func(repo *MockMediaRepository) {
				repo.On("DeleteAll", ctx).Return(1, nil).Once()
			},
			write: func(svc *GalleryService) error {
				_, err := svc.DeleteAll(ctx)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockMediaRepository)
			svc := newService(repo)

			repo.On("ListByCategory", ctx, models.CategoryPoolDeck).Return(poolAssets(), nil).Twice()
			repo.On("List", ctx).Return(poolAssets(), nil).Twice()
			tt.setup(repo)

			_, err := svc.ListByCategory(ctx, models.CategoryPoolDeck)
			require.NoError(t, err)
			_, err = svc.List(ctx)
			require.NoError(t, err)

			require.NoError(t, tt.write(svc))

			_, err = svc.ListByCategory(ctx, models.CategoryPoolDeck)
			require.NoError(t, err)
			_, err = svc.List(ctx)
			require.NoError(t, err)

			repo.AssertExpectations(t)
		})
	}
}

// pausingRepo holds the first List call after it has read the rows, until
// release is closed.
type pausingRepo struct {
	repository.MediaRepository
	once    sync.Once
	loaded  chan struct{}
	release chan struct{}
}

func (r *pausingRepo) List(ctx context.Context) ([]models.MediaAsset, error) {
	assets, err := r.MediaRepository.List(ctx)
	r.once.Do(func() {
		close(r.loaded)
		<-r.release
	})
	return assets, err
}

func TestGalleryService_ListDuringDeleteAllIsNotCached(t *testing.T) {
	ctx := context.Background()
	repo := &pausingRepo{
		MediaRepository: memory.NewMediaRepo(),
		loaded:          make(chan struct{}),
		release:         make(chan struct{}),
	}
	svc := NewGalleryService(slog.Default(), repo, cache.NewLocal(time.Minute), time.Minute)

	for i := 0; i < 7; i++ {
		asset := poolAssets()[0]
		asset.ID = 0
		_, err := svc.Create(ctx, asset)
		require.NoError(t, err)
	}

	type result struct {
		assets []models.MediaAsset
		err    error
	}
	done := make(chan result, 1)
	go func() {
		assets, err := svc.List(ctx)
		done <- result{assets, err}
	}()

	<-repo.loaded
	n, err := svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	close(repo.release)

	stale := <-done
	require.NoError(t, stale.err)
	assert.Len(t, stale.assets, 7)

	inRepo, err := repo.MediaRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, inRepo)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGalleryService_UnknownCategoryIsEmpty(t *testing.T) {
	repo := new(MockMediaRepository)
	svc := newService(repo)

	got, err := svc.ListByCategory(context.Background(), "attic")
	require.NoError(t, err)
	assert.Empty(t, got)
	repo.AssertNotCalled(t, "ListByCategory", mock.Anything, mock.Anything)
}

func TestGalleryService_CacheFailureFallsBackToRepository(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	svc := NewGalleryService(slog.Default(), repo, failingCache{}, time.Minute)

	repo.On("List", ctx).Return(poolAssets(), nil).Twice()
	repo.On("Delete", ctx, int64(1)).Return(true, nil).Once()

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, poolAssets(), got)

	_, err = svc.List(ctx)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	repo.AssertExpectations(t)
}

func TestGalleryService_Get(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	svc := newService(repo)

	repo.On("GetByID", ctx, int64(1)).Return(poolAssets()[0], true, nil).Once()
	repo.On("GetByID", ctx, int64(2)).Return(models.MediaAsset{}, false, nil).Once()

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGalleryService_BatchUpdateErrors(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	svc := newService(repo)

	_, err := svc.BatchUpdate(ctx, nil)
	assert.ErrorIs(t, err, storage.ErrValidation)

	notFound := &storage.NotFoundError{Entity: "media_asset", ID: int64(9)}
	repo.On("BatchUpdate", ctx, mock.Anything).Return([]models.MediaAsset(nil), notFound).Once()

	_, err = svc.Reorder(ctx, []int64{1, 9})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGalleryService_ReorderAssignsSequentialOrder(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMediaRepository)
	svc := newService(repo)

	repo.On("BatchUpdate", ctx, mock.MatchedBy(func(updates []models.MediaAssetUpdate) bool {
		if len(updates) != 3 {
			return false
		}
		for i, u := range updates {
			if u.Patch.SortOrder == nil || *u.Patch.SortOrder != i {
				return false
			}
		}
		return updates[0].ID == 7 && updates[1].ID == 3 && updates[2].ID == 5
	})).Return(poolAssets(), nil).Once()

	_, err := svc.Reorder(ctx, []int64{7, 3, 5})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
