package httpserver

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"portrussell/internal/common"
	"portrussell/internal/logging"
	"portrussell/internal/server/config"
	"portrussell/internal/server/models"
	"portrussell/internal/server/services"
)

// Fakes implementing the service interfaces. Each call can be overridden per
// test; nil funcs return common.ErrorInternal so forgotten stubs are loud.

type fakeUserService struct {
	loginFn    func(ctx context.Context, email, password string) (string, error)
	registerFn func(ctx context.Context, username, email, password string) (*models.User, error)
	listFn     func(ctx context.Context) ([]*models.User, error)
	getFn      func(ctx context.Context, email string) (*models.User, error)
	updateFn   func(ctx context.Context, email string, upd services.UserUpdate) (*models.User, error)
	deleteFn   func(ctx context.Context, email string) error
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginFn == nil {
		return "", common.ErrorInternal
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeUserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if f.registerFn == nil {
		return nil, common.ErrorInternal
	}
	return f.registerFn(ctx, username, email, password)
}

func (f *fakeUserService) List(ctx context.Context) ([]*models.User, error) {
	if f.listFn == nil {
		return nil, common.ErrorInternal
	}
	return f.listFn(ctx)
}

func (f *fakeUserService) Get(ctx context.Context, email string) (*models.User, error) {
	if f.getFn == nil {
		return nil, common.ErrorInternal
	}
	return f.getFn(ctx, email)
}

func (f *fakeUserService) Update(ctx context.Context, email string, upd services.UserUpdate) (*models.User, error) {
	if f.updateFn == nil {
		return nil, common.ErrorInternal
	}
	return f.updateFn(ctx, email, upd)
}

func (f *fakeUserService) Delete(ctx context.Context, email string) error {
	if f.deleteFn == nil {
		return common.ErrorInternal
	}
	return f.deleteFn(ctx, email)
}

type fakeCatwayService struct {
	listFn   func(ctx context.Context) ([]*models.Catway, error)
	getFn    func(ctx context.Context, id string) (*models.Catway, error)
	createFn func(ctx context.Context, catway *models.Catway) (*models.Catway, error)
	updateFn func(ctx context.Context, id string, catway *models.Catway) (*models.Catway, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeCatwayService) List(ctx context.Context) ([]*models.Catway, error) {
	if f.listFn == nil {
		return nil, common.ErrorInternal
	}
	return f.listFn(ctx)
}

func (f *fakeCatwayService) Get(ctx context.Context, id string) (*models.Catway, error) {
	if f.getFn == nil {
		return nil, common.ErrorInternal
	}
	return f.getFn(ctx, id)
}

func (f *fakeCatwayService) Create(ctx context.Context, catway *models.Catway) (*models.Catway, error) {
	if f.createFn == nil {
		return nil, common.ErrorInternal
	}
	return f.createFn(ctx, catway)
}

func (f *fakeCatwayService) Update(ctx context.Context, id string, catway *models.Catway) (*models.Catway, error) {
	if f.updateFn == nil {
		return nil, common.ErrorInternal
	}
	return f.updateFn(ctx, id, catway)
}

func (f *fakeCatwayService) Delete(ctx context.Context, id string) error {
	if f.deleteFn == nil {
		return common.ErrorInternal
	}
	return f.deleteFn(ctx, id)
}

type fakeReservationService struct {
	listAllFn      func(ctx context.Context) ([]*models.Reservation, error)
	listByCatwayFn func(ctx context.Context, catwayID string) ([]*models.Reservation, error)
	getFn          func(ctx context.Context, catwayID, id string) (*models.Reservation, error)
	createFn       func(ctx context.Context, catwayID string, reservation *models.Reservation) (*models.Reservation, error)
	updateFn       func(ctx context.Context, catwayID, id string, reservation *models.Reservation) (*models.Reservation, error)
	deleteFn       func(ctx context.Context, catwayID, id string) error
}

func (f *fakeReservationService) ListAll(ctx context.Context) ([]*models.Reservation, error) {
	if f.listAllFn == nil {
		return nil, common.ErrorInternal
	}
	return f.listAllFn(ctx)
}

func (f *fakeReservationService) ListByCatway(ctx context.Context, catwayID string) ([]*models.Reservation, error) {
	if f.listByCatwayFn == nil {
		return nil, common.ErrorInternal
	}
	return f.listByCatwayFn(ctx, catwayID)
}

func (f *fakeReservationService) Get(ctx context.Context, catwayID, id string) (*models.Reservation, error) {
	if f.getFn == nil {
		return nil, common.ErrorInternal
	}
	return f.getFn(ctx, catwayID, id)
}

func (f *fakeReservationService) Create(ctx context.Context, catwayID string, reservation *models.Reservation) (*models.Reservation, error) {
	if f.createFn == nil {
		return nil, common.ErrorInternal
	}
	return f.createFn(ctx, catwayID, reservation)
}

func (f *fakeReservationService) Update(ctx context.Context, catwayID, id string, reservation *models.Reservation) (*models.Reservation, error) {
	if f.updateFn == nil {
		return nil, common.ErrorInternal
	}
	return f.updateFn(ctx, catwayID, id, reservation)
}

func (f *fakeReservationService) Delete(ctx context.Context, catwayID, id string) error {
	if f.deleteFn == nil {
		return common.ErrorInternal
	}
	return f.deleteFn(ctx, catwayID, id)
}

type fakePhotoService struct {
	presignUploadFn   func(ctx context.Context, email, filename string) (string, string, error)
	presignDownloadFn func(ctx context.Context, email string) (string, error)
}

func (f *fakePhotoService) PresignUpload(ctx context.Context, email, filename string) (string, string, error) {
	if f.presignUploadFn == nil {
		return "", "", common.ErrorInternal
	}
	return f.presignUploadFn(ctx, email, filename)
}

func (f *fakePhotoService) PresignDownload(ctx context.Context, email string) (string, error) {
	if f.presignDownloadFn == nil {
		return "", common.ErrorInternal
	}
	return f.presignDownloadFn(ctx, email)
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testServerConfig() *config.Config {
	return &config.Config{
		EndpointAddrHTTP:      ":3000",
		SecretKey:             "test-secret-key",
		TokenValidityDuration: time.Hour,
		CookieName:            "token",
		Env:                   "dev",
	}
}

type testServices struct {
	users        *fakeUserService
	catways      *fakeCatwayService
	reservations *fakeReservationService
	photos       *fakePhotoService
}

func newTestServer(t *testing.T, svc testServices) *Server {
	t.Helper()

	if svc.users == nil {
		svc.users = &fakeUserService{}
	}
	if svc.catways == nil {
		svc.catways = &fakeCatwayService{}
	}
	if svc.reservations == nil {
		svc.reservations = &fakeReservationService{}
	}
	if svc.photos == nil {
		svc.photos = &fakePhotoService{}
	}

	s, err := NewServer(testServerConfig(), testLogger(), svc.users, svc.catways, svc.reservations, svc.photos)
	require.NoError(t, err)
	return s
}
