package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	httpapp "villa_cms/internal/app/http"
	"villa_cms/internal/cache"
	"villa_cms/internal/config"
	"villa_cms/internal/lib/logger/sl"
	"villa_cms/internal/repository"
	"villa_cms/internal/repository/memory"
	"villa_cms/internal/repository/postgres"
	"villa_cms/internal/seed"
	catalog "villa_cms/internal/services/catalog_service"
	gallery "villa_cms/internal/services/gallery_service"
	inquiry "villa_cms/internal/services/inquiry_service"
	moderation "villa_cms/internal/services/moderation_service"
	"villa_cms/internal/storage/postgresql"
	"villa_cms/internal/storage/redis"
	httprouters "villa_cms/internal/transport/http"
)

type App struct {
	log        *slog.Logger
	HTTPServer *httpapp.Server
	repo       *repository.Repository
	redis      *redis.Client
}

// New builds the whole process from cfg: the backend chosen by
// storage.backend, the gallery cache, the services and the HTTP server. With
// storage.seed set the baseline catalogue is loaded into empty kinds.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	a := &App{log: log}

	repo, health, err := openRepository(ctx, log, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.repo = repo

	if cfg.Cache.Driver == cache.DriverRedis {
		a.redis, err = redis.Connect(ctx, cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		if err != nil {
			if cfg.Redis.Required {
				a.Close()
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			log.Warn("redis is not reachable, gallery reads fall back to storage", sl.Err(err))
			a.redis = redis.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		}

		storeHealth := health
		health = func(ctx context.Context) error {
			return errors.Join(storeHealth(ctx), a.redis.HealthCheck(ctx))
		}
	}

	galleryCache, err := cache.New(cfg.Cache.Driver, cfg.Cache.TTL, a.redis)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.Storage.Seed {
		if err := seed.New(log, repo).Run(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	galleryService := gallery.NewGalleryService(log, repo.Media, galleryCache, cfg.Cache.TTL)
	moderationService := moderation.NewModerationService(log, repo.Submissions, galleryService)
	catalogService := catalog.NewCatalogService(log, repo)
	inquiryService := inquiry.NewInquiryService(log, repo.Bookings, repo.Contacts, repo.Newsletter)

	routers := httprouters.NewRouter(log, galleryService, moderationService, catalogService, inquiryService)

	a.HTTPServer = httpapp.New(log, cfg.HTTP.AdminKey, cfg.HTTP.Host, cfg.HTTP.Port, routers, health)
	a.HTTPServer.BuildRouters()

	return a, nil
}

func openRepository(ctx context.Context, log *slog.Logger, cfg config.StorageConfig) (*repository.Repository, httpapp.HealthFunc, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		st, err := postgresql.New(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Stop()
			return nil, nil, err
		}
		log.Info("using postgres backend")

		pool := st.Pool()
		return postgres.New(pool, cfg.QueryTimeout), pool.Ping, nil
	case config.BackendMemory, "":
		log.Info("using in-memory backend, data is lost on restart")
		return memory.New(), func(context.Context) error { return nil }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

// Run serves HTTP until ctx is cancelled or the server fails, then stops the
// server and releases the stores.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.HTTPServer.Start()
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.HTTPServer.Stop()
	})

	err := g.Wait()
	a.Close()

	return err
}

func (a *App) Close() {
	if a.repo != nil {
		a.repo.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("failed to close redis", sl.Err(err))
		}
	}
}
