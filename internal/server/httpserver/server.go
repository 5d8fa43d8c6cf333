// Package httpserver exposes the application over HTTP: a server-rendered
// dashboard, a JSON API under /api, and the session gate protecting both.
package httpserver

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"portrussell/internal/logging"
	"portrussell/internal/server/config"
	"portrussell/internal/server/models"
	"portrussell/internal/server/services"
)

// Service interfaces consumed by the handlers. Declared here so tests can
// substitute fakes.

type userService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, email string, upd services.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, email string) error
}

type catwayService interface {
	List(ctx context.Context) ([]*models.Catway, error)
	Get(ctx context.Context, id string) (*models.Catway, error)
	Create(ctx context.Context, catway *models.Catway) (*models.Catway, error)
	Update(ctx context.Context, id string, catway *models.Catway) (*models.Catway, error)
	Delete(ctx context.Context, id string) error
}

type reservationService interface {
	ListAll(ctx context.Context) ([]*models.Reservation, error)
	ListByCatway(ctx context.Context, catwayID string) ([]*models.Reservation, error)
	Get(ctx context.Context, catwayID, id string) (*models.Reservation, error)
	Create(ctx context.Context, catwayID string, reservation *models.Reservation) (*models.Reservation, error)
	Update(ctx context.Context, catwayID, id string, reservation *models.Reservation) (*models.Reservation, error)
	Delete(ctx context.Context, catwayID, id string) error
}

type photoService interface {
	PresignUpload(ctx context.Context, email, filename string) (string, string, error)
	PresignDownload(ctx context.Context, email string) (string, error)
}

// Server holds the router and the collaborators of the HTTP layer.
type Server struct {
	cfg          *config.Config
	logger       logging.Logger
	users        userService
	catways      catwayService
	reservations reservationService
	photos       photoService
	jwtSecret    []byte
	router       *mux.Router
	tmpl         *template.Template
}

// NewServer builds the HTTP layer. It parses the embedded templates and
// mounts all routes; it does not start listening.
func NewServer(cfg *config.Config, l logging.Logger, us userService, cs catwayService, rs reservationService, ps photoService) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:          cfg,
		logger:       l.With("module", "http_server"),
		users:        us,
		catways:      cs,
		reservations: rs,
		photos:       ps,
		jwtSecret:    []byte(cfg.SecretKey),
		tmpl:         tmpl,
	}
	s.router = s.buildRouter()
	return s, nil
}

// Handler returns the root http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.EndpointAddrHTTP,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.cfg.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
