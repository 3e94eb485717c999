package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/lib/logger/sl"
	"villa_cms/internal/transport/http/dto"
	"villa_cms/internal/transport/http/dto/response"
)

type GalleryService interface {
	List(ctx context.Context) ([]models.MediaAsset, error)
	ListByCategory(ctx context.Context, category models.Category) ([]models.MediaAsset, error)
	ListByTags(ctx context.Context, tags []string, matchAll bool) ([]models.MediaAsset, error)
	Get(ctx context.Context, id int64) (models.MediaAsset, error)
	Create(ctx context.Context, asset models.MediaAsset) (models.MediaAsset, error)
	Update(ctx context.Context, id int64, patch models.MediaAssetPatch) (models.MediaAsset, error)
	BatchUpdate(ctx context.Context, updates []models.MediaAssetUpdate) ([]models.MediaAsset, error)
	Reorder(ctx context.Context, ids []int64) ([]models.MediaAsset, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteAll(ctx context.Context) (int, error)
}

type ModerationService interface {
	Submit(ctx context.Context, sub models.VisitorSubmission) (models.VisitorSubmission, error)
	List(ctx context.Context, status models.SubmissionStatus) ([]models.VisitorSubmission, error)
	Get(ctx context.Context, id int64) (models.VisitorSubmission, error)
	Approve(ctx context.Context, id int64, moderatorID, notes string) (models.VisitorSubmission, error)
	Reject(ctx context.Context, id int64, moderatorID, notes string) (models.VisitorSubmission, error)
	Publish(ctx context.Context, id int64) (models.MediaAsset, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CatalogService interface {
	Rooms(ctx context.Context) ([]models.Room, error)
	Room(ctx context.Context, id int64) (models.Room, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
	Activities(ctx context.Context) ([]models.Activity, error)
	Dining(ctx context.Context) ([]models.DiningOption, error)
	Documents(ctx context.Context, category models.DocumentCategory, activeOnly bool) ([]models.ContentDocument, error)
	CreateDocument(ctx context.Context, doc models.ContentDocument) (models.ContentDocument, error)
	UpdateDocument(ctx context.Context, id int64, patch models.ContentDocumentPatch) (models.ContentDocument, error)
	DeleteDocument(ctx context.Context, id int64) (bool, error)
}

type InquiryService interface {
	SubmitBooking(ctx context.Context, b models.BookingInquiry) (models.BookingInquiry, error)
	ListBookings(ctx context.Context) ([]models.BookingInquiry, error)
	MarkBookingProcessed(ctx context.Context, id int64) (models.BookingInquiry, error)
	SubmitContact(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error)
	ListContacts(ctx context.Context) ([]models.ContactMessage, error)
	MarkContactRead(ctx context.Context, id int64) (models.ContactMessage, error)
	Subscribe(ctx context.Context, email, name string) (models.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, email string) (models.NewsletterSubscriber, error)
	ListSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error)
}

type Routers struct {
	log               *slog.Logger
	GalleryService    GalleryService
	ModerationService ModerationService
	CatalogService    CatalogService
	InquiryService    InquiryService
}

func NewRouter(log *slog.Logger, gallery GalleryService, moderation ModerationService, catalog CatalogService, inquiry InquiryService) *Routers {
	return &Routers{
		log:               log,
		GalleryService:    gallery,
		ModerationService: moderation,
		CatalogService:    catalog,
		InquiryService:    inquiry,
	}
}

// fail writes the envelope for err. Server-side failures are logged as errors,
// rejected input only as warnings.
func fail(c echo.Context, log *slog.Logger, err error) error {
	status, body := response.FromError(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", sl.Err(err))
	} else {
		log.Warn("request rejected", slog.Int("status", status), sl.Err(err))
	}

	return c.JSON(status, body)
}

func invalid(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(data))
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, response.SuccessResponse(data))
}

func notFound(c echo.Context, entity string, id int64) error {
	return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("not_found", entity+" "+strconv.FormatInt(id, 10)+" not found"))
}

// ListGallery serves GET /api/v1/gallery. With tag parameters the tag filter
// wins over category; without either, the whole gallery is returned.
func (r *Routers) ListGallery(c echo.Context) error {
	const op = "http.routers.ListGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	var q dto.GalleryQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	var (
		assets []models.MediaAsset
		err    error
	)
	if len(q.Tags) > 0 {
		assets, err = r.GalleryService.ListByTags(c.Request().Context(), q.Tags, q.MatchAll)
	} else {
		assets, err = r.GalleryService.ListByCategory(c.Request().Context(), models.Category(q.Category))
	}
	if err != nil {
		return fail(c, log, err)
	}

	return ok(c, assets)
}

func (r *Routers) GetMedia(c echo.Context) error {
	const op = "http.routers.GetMedia"

	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	asset, err := r.GalleryService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", op)), err)
	}

	return ok(c, asset)
}

func (r *Routers) ListRooms(c echo.Context) error {
	rooms, err := r.CatalogService.Rooms(c.Request().Context())
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.ListRooms")), err)
	}

	return ok(c, rooms)
}

func (r *Routers) GetRoom(c echo.Context) error {
	id, valid := parseID(c)
	if !valid {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	room, err := r.CatalogService.Room(c.Request().Context(), id)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.GetRoom")), err)
	}

	return ok(c, room)
}

func (r *Routers) ListTestimonials(c echo.Context) error {
	out, err := r.CatalogService.Testimonials(c.Request().Context())
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.ListTestimonials")), err)
	}

	return ok(c, out)
}

func (r *Routers) ListActivities(c echo.Context) error {
	out, err := r.CatalogService.Activities(c.Request().Context())
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.ListActivities")), err)
	}

	return ok(c, out)
}

func (r *Routers) ListDining(c echo.Context) error {
	out, err := r.CatalogService.Dining(c.Request().Context())
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.ListDining")), err)
	}

	return ok(c, out)
}

// ListDocuments serves the public document listing: active documents only.
func (r *Routers) ListDocuments(c echo.Context) error {
	category := models.DocumentCategory(c.QueryParam("category"))

	out, err := r.CatalogService.Documents(c.Request().Context(), category, true)
	if err != nil {
		return fail(c, r.log.With(slog.String("op", "http.routers.ListDocuments")), err)
	}

	return ok(c, out)
}

func (r *Routers) SubmitBooking(c echo.Context) error {
	const op = "http.routers.SubmitBooking"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		log.Warn("invalid booking request", sl.Err(err))
		return invalid(c, err)
	}

	booking, err := r.InquiryService.SubmitBooking(c.Request().Context(), req.ToDomain())
	if err != nil {
		return fail(c, log, err)
	}

	return created(c, booking)
}

func (r *Routers) SubmitContact(c echo.Context) error {
	const op = "http.routers.SubmitContact"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		log.Warn("invalid contact request", sl.Err(err))
		return invalid(c, err)
	}

	msg, err := r.InquiryService.SubmitContact(c.Request().Context(), req.ToDomain())
	if err != nil {
		return fail(c, log, err)
	}

	return created(c, msg)
}

func (r *Routers) Subscribe(c echo.Context) error {
	const op = "http.routers.Subscribe"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return invalid(c, err)
	}

	sub, err := r.InquiryService.Subscribe(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		return fail(c, log, err)
	}

	return created(c, sub)
}

func (r *Routers) Unsubscribe(c echo.Context) error {
	const op = "http.routers.Unsubscribe"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return invalid(c, err)
	}

	sub, err := r.InquiryService.Unsubscribe(c.Request().Context(), req.Email)
	if err != nil {
		return fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status:  "success",
		Data:    sub,
		Message: "unsubscribed",
	})
}

// SubmitMedia accepts a visitor photo or video for moderation.
func (r *Routers) SubmitMedia(c echo.Context) error {
	const op = "http.routers.SubmitMedia"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.SubmitMediaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		log.Warn("invalid submission", sl.Err(err))
		return invalid(c, err)
	}

	sub, err := r.ModerationService.Submit(c.Request().Context(), req.ToDomain())
	if err != nil {
		return fail(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.Response{
		Status:  "success",
		Data:    sub,
		Message: "submission received and awaiting review",
	})
}
