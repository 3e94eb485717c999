package services

import (
	"context"
	"fmt"
	"log/slog"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/lib/logger/sl"
	"villa_cms/internal/repository"
	"villa_cms/internal/storage"
)

// CatalogService serves the mostly static site content: rooms, reviews,
// activities, dining and downloadable documents.
type CatalogService struct {
	log  *slog.Logger
	repo *repository.Repository
}

func NewCatalogService(log *slog.Logger, repo *repository.Repository) *CatalogService {
	return &CatalogService{
		log:  log,
		repo: repo,
	}
}

func (s *CatalogService) Rooms(ctx context.Context) ([]models.Room, error) {
	const op = "service.CatalogService.Rooms"

	out, err := s.repo.Rooms.List(ctx)
	if err != nil {
		s.log.Error("failed to list rooms", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *CatalogService) Room(ctx context.Context, id int64) (models.Room, error) {
	const op = "service.CatalogService.Room"

	room, ok, err := s.repo.Rooms.GetByID(ctx, id)
	if err != nil {
		return models.Room{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return models.Room{}, fmt.Errorf("%s: %w", op, &storage.NotFoundError{Entity: "room", ID: id})
	}

	return room, nil
}

func (s *CatalogService) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	const op = "service.CatalogService.Testimonials"

	out, err := s.repo.Testimonials.List(ctx)
	if err != nil {
		s.log.Error("failed to list testimonials", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *CatalogService) Activities(ctx context.Context) ([]models.Activity, error) {
	const op = "service.CatalogService.Activities"

	out, err := s.repo.Activities.List(ctx)
	if err != nil {
		s.log.Error("failed to list activities", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *CatalogService) Dining(ctx context.Context) ([]models.DiningOption, error) {
	const op = "service.CatalogService.Dining"

	out, err := s.repo.Dining.List(ctx)
	if err != nil {
		s.log.Error("failed to list dining options", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Documents lists documents of one category, or all of them when category is
// empty. With activeOnly set, only documents in the active status are returned.
func (s *CatalogService) Documents(ctx context.Context, category models.DocumentCategory, activeOnly bool) ([]models.ContentDocument, error) {
	const op = "service.CatalogService.Documents"

	var (
		docs []models.ContentDocument
		err  error
	)
	if category == "" {
		docs, err = s.repo.Documents.List(ctx)
	} else {
		docs, err = s.repo.Documents.ListByCategory(ctx, category)
	}
	if err != nil {
		s.log.Error("failed to list documents", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !activeOnly {
		return docs, nil
	}

	active := make([]models.ContentDocument, 0, len(docs))
	for _, d := range docs {
		if d.Status == models.DocumentActive {
			active = append(active, d)
		}
	}

	return active, nil
}

func (s *CatalogService) CreateDocument(ctx context.Context, doc models.ContentDocument) (models.ContentDocument, error) {
	const op = "service.CatalogService.CreateDocument"

	created, err := s.repo.Documents.Create(ctx, doc)
	if err != nil {
		s.log.Warn("document rejected", slog.String("op", op), sl.Err(err))
		return models.ContentDocument{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("document created", slog.String("op", op), slog.Int64("id", created.ID))

	return created, nil
}

func (s *CatalogService) UpdateDocument(ctx context.Context, id int64, patch models.ContentDocumentPatch) (models.ContentDocument, error) {
	const op = "service.CatalogService.UpdateDocument"

	updated, err := s.repo.Documents.Update(ctx, id, patch)
	if err != nil {
		s.log.Warn("document update refused", slog.String("op", op), slog.Int64("id", id), sl.Err(err))
		return models.ContentDocument{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteDocument(ctx context.Context, id int64) (bool, error) {
	const op = "service.CatalogService.DeleteDocument"

	deleted, err := s.repo.Documents.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}
