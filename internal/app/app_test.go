package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villa_cms/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:     "local",
		Storage: config.StorageConfig{Backend: config.BackendMemory, QueryTimeout: time.Second, Seed: true},
		Cache:   config.CacheConfig{Driver: "local", TTL: time.Minute},
		HTTP:    config.HTTPConfig{Host: "127.0.0.1", Port: "0", AdminKey: "k"},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_MemoryBackendServesSeededCatalogue(t *testing.T) {
	a, err := New(context.Background(), discard(), testConfig())
	require.NoError(t, err)
	defer a.Close()

	srv := httptest.NewServer(a.HTTPServer)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	rooms, err := a.repo.Rooms.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, rooms)
}

func TestNew_RedisCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Cache.Driver = "redis"
	cfg.Redis = config.RedisConf{RedisAddr: mr.Addr()}

	a, err := New(context.Background(), discard(), cfg)
	require.NoError(t, err)
	defer a.Close()

	srv := httptest.NewServer(a.HTTPServer)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/gallery")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, mr.Exists("gallery:all"))

	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mr.Close()

	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestNew_UnreachableRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	t.Run("optional redis degrades", func(t *testing.T) {
		cfg := testConfig()
		cfg.Cache.Driver = "redis"
		cfg.Redis = config.RedisConf{RedisAddr: addr}

		a, err := New(context.Background(), discard(), cfg)
		require.NoError(t, err)
		defer a.Close()

		srv := httptest.NewServer(a.HTTPServer)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/v1/gallery")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = http.Get(srv.URL + "/health")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("required redis fails startup", func(t *testing.T) {
		cfg := testConfig()
		cfg.Cache.Driver = "redis"
		cfg.Redis = config.RedisConf{RedisAddr: addr, Required: true}

		a, err := New(context.Background(), discard(), cfg)
		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "redis.Connect")
	})
}

func TestNew_SkipsSeedWhenDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Seed = false

	a, err := New(context.Background(), discard(), cfg)
	require.NoError(t, err)
	defer a.Close()

	rooms, err := a.repo.Rooms.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestNew_RejectsUnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Backend = "sqlite"

	_, err := New(context.Background(), discard(), cfg)
	assert.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	a, err := New(context.Background(), discard(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
