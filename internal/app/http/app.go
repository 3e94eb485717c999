package httpapp

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"villa_cms/internal/domain/models"
	"villa_cms/internal/lib/logger/sl"
	villamw "villa_cms/internal/middleware"
	httprouters "villa_cms/internal/transport/http"
	"villa_cms/internal/transport/http/dto/response"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// HealthFunc reports whether the backing stores are reachable.
type HealthFunc func(ctx context.Context) error

type Server struct {
	log      *slog.Logger
	e        *echo.Echo
	routers  *httprouters.Routers
	health   HealthFunc
	host     string
	port     string
	adminKey string
}

func New(log *slog.Logger, adminKey, host, port string, routers *httprouters.Routers, health HealthFunc) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = &CustomValidator{validator: models.Validator()}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogRemoteIP:  true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)

			return nil
		},
	}))
	e.Use(villamw.PrometheusMetrics)

	if health == nil {
		health = func(context.Context) error { return nil }
	}

	return &Server{
		log:      log,
		e:        e,
		routers:  routers,
		health:   health,
		host:     host,
		port:     port,
		adminKey: adminKey,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	s.log.Info("http server listening", slog.String("addr", s.addr()))

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping http server", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// ServeHTTP lets the server be mounted on an httptest.Server.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.host, s.port)
}

// adminOnlyMiddleware accepts "Authorization: Bearer <admin key>". With no key
// configured every admin request is refused.
func (s *Server) adminOnlyMiddleware() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			if s.adminKey == "" {
				return false, nil
			}
			return subtle.ConstantTimeCompare([]byte(key), []byte(s.adminKey)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			s.log.Warn("admin access denied",
				slog.String("path", c.Path()),
				slog.String("remote ip", c.RealIP()),
				sl.Err(err),
			)
			return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
		},
	})
}

func (s *Server) healthCheck(c echo.Context) error {
	if err := s.health(c.Request().Context()); err != nil {
		s.log.Error("health check failed", sl.Err(err))
		return c.JSON(http.StatusServiceUnavailable, response.ErrorResponseWithDetails("unhealthy", "a backing store is unreachable"))
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "ok"})
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.healthCheck)
	s.e.GET("/metrics", echoprometheus.NewHandler())

	api := s.e.Group("/api/v1")
	{
		api.GET("/gallery", s.routers.ListGallery)
		api.GET("/gallery/:id", s.routers.GetMedia)
		api.GET("/rooms", s.routers.ListRooms)
		api.GET("/rooms/:id", s.routers.GetRoom)
		api.GET("/testimonials", s.routers.ListTestimonials)
		api.GET("/activities", s.routers.ListActivities)
		api.GET("/dining", s.routers.ListDining)
		api.GET("/documents", s.routers.ListDocuments)

		api.POST("/bookings", s.routers.SubmitBooking)
		api.POST("/contact", s.routers.SubmitContact)
		api.POST("/newsletter", s.routers.Subscribe)
		api.DELETE("/newsletter", s.routers.Unsubscribe)
		api.POST("/submissions", s.routers.SubmitMedia)

		admin := api.Group("/admin", s.adminOnlyMiddleware())

		galleryGroup := admin.Group("/gallery")
		{
			galleryGroup.POST("", s.routers.CreateMedia)
			galleryGroup.PATCH("/batch", s.routers.BatchUpdateMedia)
			galleryGroup.PATCH("/:id", s.routers.UpdateMedia)
			galleryGroup.DELETE("/:id", s.routers.DeleteMedia)
			galleryGroup.DELETE("", s.routers.DeleteAllMedia)
		}

		submissionGroup := admin.Group("/submissions")
		{
			submissionGroup.GET("", s.routers.ListSubmissions)
			submissionGroup.GET("/:id", s.routers.GetSubmission)
			submissionGroup.POST("/:id/approve", s.routers.ApproveSubmission)
			submissionGroup.POST("/:id/reject", s.routers.RejectSubmission)
			submissionGroup.POST("/:id/publish", s.routers.PublishSubmission)
			submissionGroup.DELETE("/:id", s.routers.DeleteSubmission)
		}

		documentGroup := admin.Group("/documents")
		{
			documentGroup.GET("", s.routers.ListAllDocuments)
			documentGroup.POST("", s.routers.CreateDocument)
			documentGroup.PATCH("/:id", s.routers.UpdateDocument)
			documentGroup.DELETE("/:id", s.routers.DeleteDocument)
		}

		admin.GET("/bookings", s.routers.ListBookings)
		admin.POST("/bookings/:id/processed", s.routers.MarkBookingProcessed)
		admin.GET("/contacts", s.routers.ListContacts)
		admin.POST("/contacts/:id/read", s.routers.MarkContactRead)
		admin.GET("/newsletter", s.routers.ListSubscribers)
	}
}
