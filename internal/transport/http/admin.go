package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/lib/logger/sl"
	"villa_cms/internal/transport/http/dto"
	"villa_cms/internal/transport/http/dto/response"
)

func (r *Routers) CreateMedia(c echo.Context) error {
	const op = "http.routers.CreateMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateMediaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		log.Warn("invalid media request", sl.Err(err))
		return invalid(c, err)
	}

	asset, err := r.GalleryService.Create(c.Request().Context(), req.ToDomain())
	if err != nil {
		return fail(c, log, err)
	}

	return created(c, asset)
}

func (r *Routers) UpdateMedia(c echo.Context) error {
	const op = "http.routers.UpdateMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var patch models.MediaAssetPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	asset, err := r.GalleryService.Update(c.Request().Context(), id, patch)
	if err != nil {
		return fail(c, log, err)
	}

	return ok(c, asset)
}

// BatchUpdateMedia applies a list of patches, or a new order when "order" is
// given. Either every change is applied or none.
func (r *Routers) BatchUpdateMedia(c echo.Context) error {
	const op = "http.routers.BatchUpdateMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.BatchUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return invalid(c, err)
	}

	var (
		assets []models.MediaAsset
		err    error
	)
	if len(req.Order) > 0 {
		assets, err = r.GalleryService.Reorder(c.Request().Context(), req.Order)
	} else {
		assets, err = r.GalleryService.BatchUpdate(c.Request().Context(), req.Updates)
	}
	if err != nil {
		return fail(c, log, err)
	}

	return ok(c, assets)
}

func (r *Routers) DeleteMedia(c echo.Context) error {
	const op = "http.routers.DeleteMedia"

	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	deleted, err := r.GalleryService.Delete(c.Request().Context(), id)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op)), err)
	}
	if !deleted {
		return notFound(c, "media_asset", id)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) DeleteAllMedia(c echo.Context) error {
	const op = "http.routers.DeleteAllMedia"

	n, err := r.GalleryService.DeleteAll(c.Request().Context())
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, map[string]int{"deleted": n})
}

func (r *Routers) ListSubmissions(c echo.Context) error {
	const op = "http.routers.ListSubmissions"

	status := models.SubmissionStatus(c.QueryParam("status"))

	subs, err := r.ModerationService.List(c.Request().Context(), status)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, subs)
}

func (r *Routers) GetSubmission(c echo.Context) error {
	const op = "http.routers.GetSubmission"

	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	sub, err := r.ModerationService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, sub)
}

func (r *Routers) ApproveSubmission(c echo.Context) error {
	return r.decide(c, "http.routers.ApproveSubmission", r.ModerationService.Approve)
}

func (r *Routers) RejectSubmission(c echo.Context) error {
	return r.decide(c, "http.routers.RejectSubmission", r.ModerationService.Reject)
}

type decideFunc func(ctx context.Context, id int64, moderatorID, notes string) (models.VisitorSubmission, error)

func (r *Routers) decide(c echo.Context, op string, fn decideFunc) error {
	log := r.log.With(
		slog.String("op", op),
	)

	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var req dto.DecisionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return invalid(c, err)
	}

	sub, err := fn(c.Request().Context(), id, req.ModeratorID, req.Notes)
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("submission decided",
		slog.Int64("id", id),
		slog.String("status", string(sub.Status)),
		slog.String("moderator_id", req.ModeratorID),
	)

	return ok(c, sub)
}

func (r *Routers) PublishSubmission(c echo.Context) error {
	const op = "http.routers.PublishSubmission"

	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	asset, err := r.ModerationService.Publish(c.Request().Context(), id)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op)), err)
	}

	return created(c, asset)
}

func (r *Routers) DeleteSubmission(c echo.Context) error {
	const op = "http.routers.DeleteSubmission"

	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	deleted, err := r.ModerationService.Delete(c.Request().Context(), id)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op)), err)
	}
	if !deleted {
		return notFound(c, "visitor_submission", id)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListAllDocuments is the admin listing: every status is included.
func (r *Routers) ListAllDocuments(c echo.Context) error {
	category := models.DocumentCategory(c.QueryParam("category"))

	out, err := r.CatalogService.Documents(c.Request().Context(), category, false)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.ListAllDocuments")), err)
	}

	return ok(c, out)
}

func (r *Routers) CreateDocument(c echo.Context) error {
	const op = "http.routers.CreateDocument"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return invalid(c, err)
	}

	doc, err := r.CatalogService.CreateDocument(c.Request().Context(), req.ToDomain())
	if err != nil {
		return fail(c, log, err)
	}

	return created(c, doc)
}

func (r *Routers) UpdateDocument(c echo.Context) error {
	const op = "http.routers.UpdateDocument"

	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var patch models.ContentDocumentPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	doc, err := r.CatalogService.UpdateDocument(c.Request().Context(), id, patch)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, doc)
}

func (r *Routers) DeleteDocument(c echo.Context) error {
	const op = "http.routers.DeleteDocument"

	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	deleted, err := r.CatalogService.DeleteDocument(c.Request().Context(), id)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op)), err)
	}
	if !deleted {
		return notFound(c, "content_document", id)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) ListBookings(c echo.Context) error {
	out, err := r.InquiryService.ListBookings(c.Request().Context())
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.ListBookings")), err)
	}

	return ok(c, out)
}

func (r *Routers) MarkBookingProcessed(c echo.Context) error {
	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	out, err := r.InquiryService.MarkBookingProcessed(c.Request().Context(), id)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.MarkBookingProcessed")), err)
	}

	return ok(c, out)
}

func (r *Routers) ListContacts(c echo.Context) error {
	out, err := r.InquiryService.ListContacts(c.Request().Context())
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.ListContacts")), err)
	}

	return ok(c, out)
}

func (r *Routers) MarkContactRead(c echo.Context) error {
	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	out, err := r.InquiryService.MarkContactRead(c.Request().Context(), id)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.MarkContactRead")), err)
	}

	return ok(c, out)
}

func (r *Routers) ListSubscribers(c echo.Context) error {
	out, err := r.InquiryService.ListSubscribers(c.Request().Context())
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.ListSubscribers")), err)
	}

	return ok(c, out)
}
