package seed

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/repository/memory"
)

func TestSeeder_FillsEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	require.NoError(t, New(slog.Default(), repo).Run(ctx))

	gotRooms, err := repo.Rooms.List(ctx)
	require.NoError(t, err)
	assert.Len(t, gotRooms, len(rooms()))

	gotMedia, err := repo.Media.List(ctx)
	require.NoError(t, err)
	assert.Len(t, gotMedia, len(media()))

	gotDining, err := repo.Dining.List(ctx)
	require.NoError(t, err)
	assert.Len(t, gotDining, len(diningOptions()))
}

func TestSeeder_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	require.NoError(t, New(slog.Default(), repo).Run(ctx))
	require.NoError(t, New(slog.Default(), repo).Run(ctx))

	got, err := repo.Testimonials.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, len(testimonials()))

	acts, err := repo.Activities.List(ctx)
	require.NoError(t, err)
	assert.Len(t, acts, len(activities()))
}

func TestSeeder_SkipsNonEmptyKind(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	_, err := repo.Rooms.Create(ctx, models.Room{Name: "Private Cabana", Capacity: 2})
	require.NoError(t, err)

	require.NoError(t, New(slog.Default(), repo).Run(ctx))

	got, err := repo.Rooms.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Private Cabana", got[0].Name)

	gotMedia, err := repo.Media.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, gotMedia)
}

func TestSeeder_RunsOnce(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	s := New(slog.Default(), repo)

	require.NoError(t, s.Run(ctx))
	_, err := repo.Rooms.DeleteAll(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Run(ctx))

	got, err := repo.Rooms.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBaselineDataIsValid(t *testing.T) {
	for _, r := range rooms() {
		assert.NoError(t, r.Validate(), r.Name)
	}
	for _, m := range media() {
		assert.NoError(t, m.Validate(), m.URL)
	}
	for _, d := range diningOptions() {
		assert.NoError(t, d.Validate(), d.Name)
	}
}
