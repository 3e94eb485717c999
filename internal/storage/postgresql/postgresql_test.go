package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villa_cms/internal/storage/postgresql"
	"villa_cms/internal/storage/postgresql/pgtest"
)

func TestMigrate_IsRepeatable(t *testing.T) {
	st := pgtest.Start(t)
	ctx := context.Background()

	require.NoError(t, st.Migrate(ctx))

	var tables int
	err := st.Pool().QueryRow(ctx, `
		SELECT count(*) FROM information_schema.tables
		WHERE table_schema = 'public'`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 10, tables)
}

func TestNew_BadDSN(t *testing.T) {
	_, err := postgresql.New(context.Background(), "not a dsn")
	require.Error(t, err)
}

func TestSchema_CoversEveryTable(t *testing.T) {
	for _, table := range []string{
		"rooms", "testimonials", "activities", "dining_options", "media_assets",
		"content_documents", "booking_inquiries", "contact_messages",
		"newsletter_subscribers", "visitor_submissions",
	} {
		assert.Contains(t, postgresql.Schema(), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
