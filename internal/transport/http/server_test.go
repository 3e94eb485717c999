package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	httpapp "villa_cms/internal/app/http"
	"villa_cms/internal/cache"
	"villa_cms/internal/domain/models"
	"villa_cms/internal/repository"
	"villa_cms/internal/repository/memory"
	"villa_cms/internal/seed"
	catalog "villa_cms/internal/services/catalog_service"
	gallery "villa_cms/internal/services/gallery_service"
	inquiry "villa_cms/internal/services/inquiry_service"
	moderation "villa_cms/internal/services/moderation_service"
	httprouters "villa_cms/internal/transport/http"
)

const adminKey = "test-admin-key"

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

type APITestSuite struct {
	suite.Suite
	repo    *repository.Repository
	server  *httptest.Server
	baseURL string
}

func (s *APITestSuite) SetupTest() {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.repo = memory.New()
	s.Require().NoError(seed.New(log, s.repo).Run(context.Background()))

	galleryService := gallery.NewGalleryService(log, s.repo.Media, cache.NewLocal(time.Minute), time.Minute)
	moderationService := moderation.NewModerationService(log, s.repo.Submissions, galleryService)
	catalogService := catalog.NewCatalogService(log, s.repo)
	inquiryService := inquiry.NewInquiryService(log, s.repo.Bookings, s.repo.Contacts, s.repo.Newsletter)

	routers := httprouters.NewRouter(log, galleryService, moderationService, catalogService, inquiryService)

	server := httpapp.New(log, adminKey, "127.0.0.1", "0", routers, nil)
	server.BuildRouters()

	s.server = httptest.NewServer(server)
	s.baseURL = s.server.URL
}

func (s *APITestSuite) TearDownTest() {
	s.server.Close()
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) do(method, path string, body interface{}, admin bool) (int, envelope) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+adminKey)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &env), string(raw))
	}

	return resp.StatusCode, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func (s *APITestSuite) TestHealth() {
	status, env := s.do(http.MethodGet, "/health", nil, false)
	s.Equal(http.StatusOK, status)
	s.Equal("success", env.Status)
}

func (s *APITestSuite) TestMetricsExposed() {
	s.do(http.MethodGet, "/api/v1/rooms", nil, false)

	resp, err := http.Get(s.baseURL + "/metrics")
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(raw), "villa_cms_http_requests_total")
}

func (s *APITestSuite) TestGalleryListing() {
	status, env := s.do(http.MethodGet, "/api/v1/gallery", nil, false)
	s.Require().Equal(http.StatusOK, status)
	all := decode[[]models.MediaAsset](s.T(), env)
	s.NotEmpty(all)

	status, env = s.do(http.MethodGet, "/api/v1/gallery?category=pool-deck", nil, false)
	s.Require().Equal(http.StatusOK, status)
	for _, a := range decode[[]models.MediaAsset](s.T(), env) {
		s.Equal(models.CategoryPoolDeck, a.Category)
	}

	status, env = s.do(http.MethodGet, "/api/v1/gallery?category=attic", nil, false)
	s.Require().Equal(http.StatusOK, status)
	s.Empty(decode[[]models.MediaAsset](s.T(), env))
}

func (s *APITestSuite) TestRooms() {
	status, env := s.do(http.MethodGet, "/api/v1/rooms", nil, false)
	s.Require().Equal(http.StatusOK, status)
	rooms := decode[[]models.Room](s.T(), env)
	s.Require().NotEmpty(rooms)

	status, env = s.do(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%d", rooms[0].ID), nil, false)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(rooms[0].Name, decode[models.Room](s.T(), env).Name)

	status, env = s.do(http.MethodGet, "/api/v1/rooms/9999", nil, false)
	s.Equal(http.StatusNotFound, status)
	s.Equal("not_found", env.Error)

	status, _ = s.do(http.MethodGet, "/api/v1/rooms/abc", nil, false)
	s.Equal(http.StatusBadRequest, status)
}

func (s *APITestSuite) TestAdminRequiresKey() {
	body := map[string]interface{}{"url": "/x.jpg", "category": "pool-deck", "media_type": "image"}

	status, env := s.do(http.MethodPost, "/api/v1/admin/gallery", body, false)
	s.Equal(http.StatusUnauthorized, status)
	s.Equal("unauthorized", env.Error)

	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/api/v1/admin/bookings", nil)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *APITestSuite) TestAdminGalleryWritesShowUpInPublicListing() {
	status, env := s.do(http.MethodGet, "/api/v1/gallery?category=roof-garden", nil, false)
	s.Require().Equal(http.StatusOK, status)
	before := decode[[]models.MediaAsset](s.T(), env)

	status, env = s.do(http.MethodPost, "/api/v1/admin/gallery", map[string]interface{}{
		"url":        "/images/roof-sunset.jpg",
		"alt_text":   "Sunset from the roof garden",
		"category":   "roof-garden",
		"media_type": "image",
		"tags":       []string{"sunset"},
	}, true)
	s.Require().Equal(http.StatusCreated, status, env.Details)
	asset := decode[models.MediaAsset](s.T(), env)
	s.NotZero(asset.ID)

	status, env = s.do(http.MethodGet, "/api/v1/gallery?category=roof-garden", nil, false)
	s.Require().Equal(http.StatusOK, status)
	s.Len(decode[[]models.MediaAsset](s.T(), env), len(before)+1)

	status, env = s.do(http.MethodPatch, fmt.Sprintf("/api/v1/admin/gallery/%d", asset.ID), map[string]interface{}{"featured": true}, true)
	s.Require().Equal(http.StatusOK, status)
	s.True(decode[models.MediaAsset](s.T(), env).Featured)

	status, env = s.do(http.MethodPatch, fmt.Sprintf("/api/v1/admin/gallery/%d", asset.ID), map[string]interface{}{"category": "attic"}, true)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("validation_failed", env.Error)

	status, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/admin/gallery/%d", asset.ID), nil, true)
	s.Equal(http.StatusNoContent, status)

	status, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/admin/gallery/%d", asset.ID), nil, true)
	s.Equal(http.StatusNotFound, status)
}

func (s *APITestSuite) TestAdminCreateMediaRejectsUnknownCategory() {
	status, env := s.do(http.MethodPost, "/api/v1/admin/gallery", map[string]interface{}{
		"url":        "/images/x.jpg",
		"category":   "attic",
		"media_type": "image",
	}, true)

	s.Equal(http.StatusBadRequest, status)
	s.Equal("invalid_request", env.Error)
}

func (s *APITestSuite) TestBatchReorderIsAtomic() {
	ctx := context.Background()
	assets, err := s.repo.Media.List(ctx)
	s.Require().NoError(err)
	s.Require().GreaterOrEqual(len(assets), 2)

	status, env := s.do(http.MethodPatch, "/api/v1/admin/gallery/batch", map[string]interface{}{
		"order": []int64{assets[1].ID, 424242},
	}, true)
	s.Equal(http.StatusNotFound, status)
	s.Equal("not_found", env.Error)

	unchanged, err := s.repo.Media.List(ctx)
	s.Require().NoError(err)
	s.Equal(assets, unchanged)

	status, env = s.do(http.MethodPatch, "/api/v1/admin/gallery/batch", map[string]interface{}{
		"order": []int64{assets[1].ID, assets[0].ID},
	}, true)
	s.Require().Equal(http.StatusOK, status, env.Details)
	reordered := decode[[]models.MediaAsset](s.T(), env)
	s.Require().Len(reordered, 2)
	s.Equal(assets[1].ID, reordered[0].ID)
	s.Equal(0, reordered[0].SortOrder)
	s.Equal(1, reordered[1].SortOrder)
}

func (s *APITestSuite) TestModerationFlow() {
	status, env := s.do(http.MethodPost, "/api/v1/submissions", map[string]interface{}{
		"media_url":       "/uploads/guest-lake.jpg",
		"alt_text":        "Morning on the lake",
		"category":        "koggala-lake",
		"media_type":      "image",
		"submitter_name":  gofakeit.Name(),
		"submitter_email": gofakeit.Email(),
	}, false)
	s.Require().Equal(http.StatusCreated, status, env.Details)
	sub := decode[models.VisitorSubmission](s.T(), env)
	s.Equal(models.SubmissionPending, sub.Status)

	path := fmt.Sprintf("/api/v1/admin/submissions/%d", sub.ID)

	status, env = s.do(http.MethodPost, path+"/publish", nil, true)
	s.Equal(http.StatusConflict, status)
	s.Equal("precondition_failed", env.Error)

	status, _ = s.do(http.MethodPost, path+"/approve", map[string]string{}, true)
	s.Equal(http.StatusBadRequest, status)

	status, env = s.do(http.MethodPost, path+"/approve", map[string]string{"moderator_id": "mod-1", "notes": "lovely"}, true)
	s.Require().Equal(http.StatusOK, status, env.Details)
	approved := decode[models.VisitorSubmission](s.T(), env)
	s.Equal(models.SubmissionApproved, approved.Status)
	s.NotNil(approved.ApprovedAt)

	status, _ = s.do(http.MethodPost, path+"/reject", map[string]string{"moderator_id": "mod-2"}, true)
	s.Equal(http.StatusConflict, status)

	status, env = s.do(http.MethodPost, path+"/publish", nil, true)
	s.Require().Equal(http.StatusCreated, status, env.Details)
	published := decode[models.MediaAsset](s.T(), env)
	s.Equal("/uploads/guest-lake.jpg", published.URL)

	status, env = s.do(http.MethodGet, "/api/v1/gallery?category=koggala-lake", nil, false)
	s.Require().Equal(http.StatusOK, status)
	var urls []string
	for _, a := range decode[[]models.MediaAsset](s.T(), env) {
		urls = append(urls, a.URL)
	}
	s.Contains(urls, "/uploads/guest-lake.jpg")

	status, env = s.do(http.MethodGet, "/api/v1/admin/submissions?status=approved", nil, true)
	s.Require().Equal(http.StatusOK, status)
	s.Len(decode[[]models.VisitorSubmission](s.T(), env), 1)

	status, _ = s.do(http.MethodGet, "/api/v1/admin/submissions?status=maybe", nil, true)
	s.Equal(http.StatusBadRequest, status)

	status, _ = s.do(http.MethodDelete, path, nil, true)
	s.Equal(http.StatusNoContent, status)

	status, _ = s.do(http.MethodGet, path, nil, true)
	s.Equal(http.StatusNotFound, status)
}

func (s *APITestSuite) TestBookingInquiry() {
	checkIn := time.Now().UTC().AddDate(0, 1, 0).Truncate(time.Second)

	status, env := s.do(http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"check_in":   checkIn,
		"check_out":  checkIn.AddDate(0, 0, -2),
		"guests":     2,
		"guest_name": gofakeit.Name(),
		"email":      gofakeit.Email(),
	}, false)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("validation_failed", env.Error)
	s.True(strings.Contains(env.Details, "check_out"), env.Details)

	status, env = s.do(http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"check_in":   checkIn,
		"check_out":  checkIn.AddDate(0, 0, 3),
		"guests":     2,
		"guest_name": gofakeit.Name(),
		"email":      "Guest@Example.com",
	}, false)
	s.Require().Equal(http.StatusCreated, status, env.Details)
	booking := decode[models.BookingInquiry](s.T(), env)
	s.Equal("guest@example.com", booking.Email)

	status, env = s.do(http.MethodPost, fmt.Sprintf("/api/v1/admin/bookings/%d/processed", booking.ID), nil, true)
	s.Require().Equal(http.StatusOK, status)
	s.True(decode[models.BookingInquiry](s.T(), env).Processed)

	status, env = s.do(http.MethodGet, "/api/v1/admin/bookings", nil, true)
	s.Require().Equal(http.StatusOK, status)
	s.Len(decode[[]models.BookingInquiry](s.T(), env), 1)
}

func (s *APITestSuite) TestContactMessage() {
	status, env := s.do(http.MethodPost, "/api/v1/contact", map[string]interface{}{
		"name":    gofakeit.Name(),
		"email":   gofakeit.Email(),
		"message": "Do you host small weddings?",
	}, false)
	s.Require().Equal(http.StatusCreated, status, env.Details)
	msg := decode[models.ContactMessage](s.T(), env)

	status, env = s.do(http.MethodPost, fmt.Sprintf("/api/v1/admin/contacts/%d/read", msg.ID), nil, true)
	s.Require().Equal(http.StatusOK, status)
	s.True(decode[models.ContactMessage](s.T(), env).Read)

	status, _ = s.do(http.MethodPost, "/api/v1/admin/contacts/777/read", nil, true)
	s.Equal(http.StatusNotFound, status)

	status, _ = s.do(http.MethodPost, "/api/v1/contact", map[string]interface{}{"name": "x", "email": "nope"}, false)
	s.Equal(http.StatusBadRequest, status)
}

func (s *APITestSuite) TestNewsletter() {
	body := map[string]string{"email": "reader@example.com", "name": "Reader"}

	status, env := s.do(http.MethodPost, "/api/v1/newsletter", body, false)
	s.Require().Equal(http.StatusCreated, status, env.Details)
	first := decode[models.NewsletterSubscriber](s.T(), env)

	status, env = s.do(http.MethodPost, "/api/v1/newsletter", body, false)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal(first.ID, decode[models.NewsletterSubscriber](s.T(), env).ID)

	status, env = s.do(http.MethodDelete, "/api/v1/newsletter", map[string]string{"email": "reader@example.com"}, false)
	s.Require().Equal(http.StatusOK, status)
	s.False(decode[models.NewsletterSubscriber](s.T(), env).Active)

	status, _ = s.do(http.MethodDelete, "/api/v1/newsletter", map[string]string{"email": "ghost@example.com"}, false)
	s.Equal(http.StatusNotFound, status)

	status, env = s.do(http.MethodGet, "/api/v1/admin/newsletter", nil, true)
	s.Require().Equal(http.StatusOK, status)
	s.Len(decode[[]models.NewsletterSubscriber](s.T(), env), 1)
}

func (s *APITestSuite) TestDocumentsPublicListingShowsActiveOnly() {
	status, env := s.do(http.MethodPost, "/api/v1/admin/documents", map[string]interface{}{
		"title":    "Wedding package",
		"file_url": "/docs/wedding.pdf",
		"category": "events",
	}, true)
	s.Require().Equal(http.StatusCreated, status, env.Details)
	doc := decode[models.ContentDocument](s.T(), env)
	s.Equal(models.DocumentPending, doc.Status)

	status, env = s.do(http.MethodGet, "/api/v1/documents?category=events", nil, false)
	s.Require().Equal(http.StatusOK, status)
	s.Empty(decode[[]models.ContentDocument](s.T(), env))

	path := fmt.Sprintf("/api/v1/admin/documents/%d", doc.ID)
	status, _ = s.do(http.MethodPatch, path, map[string]string{"status": "active"}, true)
	s.Require().Equal(http.StatusOK, status)

	status, env = s.do(http.MethodGet, "/api/v1/documents?category=events", nil, false)
	s.Require().Equal(http.StatusOK, status)
	s.Len(decode[[]models.ContentDocument](s.T(), env), 1)

	status, env = s.do(http.MethodPatch, path, map[string]string{"status": "pending"}, true)
	s.Equal(http.StatusConflict, status)
	s.Equal("precondition_failed", env.Error)

	status, env = s.do(http.MethodGet, "/api/v1/admin/documents", nil, true)
	s.Require().Equal(http.StatusOK, status)
	s.Len(decode[[]models.ContentDocument](s.T(), env), 1)

	status, _ = s.do(http.MethodDelete, path, nil, true)
	s.Equal(http.StatusNoContent, status)
}
