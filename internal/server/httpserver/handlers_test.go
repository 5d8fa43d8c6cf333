package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portrussell/internal/common"
	"portrussell/internal/server/models"
)

func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set("Authorization", "Bearer "+mustToken(t, "u1", "a@b.c", time.Hour))
	return r
}

func TestLoginPage_SetsCookieAndRedirects(t *testing.T) {
	users := &fakeUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			require.Equal(t, "capitaine@port.fr", email)
			require.Equal(t, "secret", password)
			return "issued-token", nil
		},
	}
	s := newTestServer(t, testServices{users: users})

	form := url.Values{"email": {"capitaine@port.fr"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "issued-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, int(time.Hour.Seconds()), cookies[0].MaxAge)
}

func TestLoginPage_BadCredentialsRendersError(t *testing.T) {
	users := &fakeUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", common.ErrorUnauthorized
		},
	}
	s := newTestServer(t, testServices{users: users})

	form := url.Values{"email": {"x@y.z"}, "password": {"bad"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidCredentials)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogoutPage_ClearsCookie(t *testing.T) {
	s := newTestServer(t, testServices{})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestLoginAPI_ReturnsToken(t *testing.T) {
	users := &fakeUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "issued-token", nil
		},
	}
	s := newTestServer(t, testServices{users: users})

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@b.c","password":"secret"}`))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "issued-token", body["token"])
}

// Unknown email and wrong password must be indistinguishable on the wire.
func TestLoginAPI_UniformUnauthorizedBody(t *testing.T) {
	call := 0
	users := &fakeUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			call++
			return "", common.ErrorUnauthorized
		},
	}
	s := newTestServer(t, testServices{users: users})

	responses := make([]string, 0, 2)
	for _, payload := range []string{
		`{"email":"unknown@port.fr","password":"whatever"}`,
		`{"email":"known@port.fr","password":"wrong"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		responses = append(responses, rec.Body.String())
	}

	assert.Equal(t, 2, call)
	assert.Equal(t, responses[0], responses[1])
}

func TestLoginAPI_MalformedBody(t *testing.T) {
	s := newTestServer(t, testServices{})

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutAPI(t *testing.T) {
	s := newTestServer(t, testServices{})

	req := httptest.NewRequest(http.MethodGet, "/api/logout", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Déconnexion effectuée", decodeMessage(t, rec))
}

func TestCatwayGet_NotFound(t *testing.T) {
	catways := &fakeCatwayService{
		getFn: func(ctx context.Context, id string) (*models.Catway, error) {
			return nil, common.ErrorNotFound
		},
	}
	s := newTestServer(t, testServices{catways: catways})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/catways/nope", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgCatwayNotFound, decodeMessage(t, rec))
}

func TestCatwayCreate(t *testing.T) {
	catways := &fakeCatwayService{
		createFn: func(ctx context.Context, catway *models.Catway) (*models.Catway, error) {
			require.Equal(t, 12, catway.CatwayNumber)
			catway.ID = "c1"
			return catway, nil
		},
	}
	s := newTestServer(t, testServices{catways: catways})

	rec := httptest.NewRecorder()
	body := `{"catwayNumber":12,"catwayType":"long","catwayState":"bon état"}`
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/catways", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Catway
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "c1", got.ID)
}

func TestCatwayCreate_ValidationError(t *testing.T) {
	catways := &fakeCatwayService{
		createFn: func(ctx context.Context, catway *models.Catway) (*models.Catway, error) {
			return nil, common.ErrorValidation
		},
	}
	s := newTestServer(t, testServices{catways: catways})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/catways", `{"catwayType":"diagonal"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidData, decodeMessage(t, rec))
}

func TestCatwayDelete(t *testing.T) {
	catways := &fakeCatwayService{
		deleteFn: func(ctx context.Context, id string) error {
			require.Equal(t, "c1", id)
			return nil
		},
	}
	s := newTestServer(t, testServices{catways: catways})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodDelete, "/api/catways/c1", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Catway supprimé avec succès", decodeMessage(t, rec))
}

func TestReservationCreate_MissingCatway(t *testing.T) {
	reservations := &fakeReservationService{
		createFn: func(ctx context.Context, catwayID string, reservation *models.Reservation) (*models.Reservation, error) {
			return nil, common.ErrorNotFound
		},
	}
	s := newTestServer(t, testServices{reservations: reservations})

	rec := httptest.NewRecorder()
	body := `{"clientName":"Morgan","boatName":"Pearl","startDate":"2026-09-01T00:00:00Z","endDate":"2026-09-05T00:00:00Z"}`
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/catways/nope/reservations", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgCatwayNotFound, decodeMessage(t, rec))
}

func TestReservationCreate_InvalidDates(t *testing.T) {
	reservations := &fakeReservationService{
		createFn: func(ctx context.Context, catwayID string, reservation *models.Reservation) (*models.Reservation, error) {
			return nil, common.ErrorValidation
		},
	}
	s := newTestServer(t, testServices{reservations: reservations})

	rec := httptest.NewRecorder()
	body := `{"clientName":"Morgan","boatName":"Pearl","startDate":"2026-09-05T00:00:00Z","endDate":"2026-09-01T00:00:00Z"}`
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/catways/c1/reservations", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidData, decodeMessage(t, rec))
}

func TestReservationList_ScopedToCatway(t *testing.T) {
	reservations := &fakeReservationService{
		listByCatwayFn: func(ctx context.Context, catwayID string) ([]*models.Reservation, error) {
			require.Equal(t, "c1", catwayID)
			return []*models.Reservation{{ID: "r1", CatwayID: "c1"}}, nil
		},
	}
	s := newTestServer(t, testServices{reservations: reservations})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/catways/c1/reservations", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []*models.Reservation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	users := &fakeUserService{
		registerFn: func(ctx context.Context, username, email, password string) (*models.User, error) {
			return nil, common.ErrorAlreadyExists
		},
	}
	s := newTestServer(t, testServices{users: users})

	rec := httptest.NewRecorder()
	body := `{"username":"jean","email":"jean@port.fr","password":"secret"}`
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/users", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email déjà utilisé", decodeMessage(t, rec))
}

func TestUserGet_NeverExposesPasswordHash(t *testing.T) {
	users := &fakeUserService{
		getFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "u1", Username: "jean", Email: email, PasswordHash: "$2a$10$digest"}, nil
		},
	}
	s := newTestServer(t, testServices{users: users})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/users/jean@port.fr", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserPhotoPresign(t *testing.T) {
	photos := &fakePhotoService{
		presignUploadFn: func(ctx context.Context, email, filename string) (string, string, error) {
			require.Equal(t, "jean@port.fr", email)
			require.Equal(t, "ma photo.jpg", filename)
			return "photos/u1/29-08-2026_ma_photo.jpg", "https://s3.example/put", nil
		},
	}
	s := newTestServer(t, testServices{photos: photos})

	rec := httptest.NewRecorder()
	body := `{"filename":"ma photo.jpg"}`
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/users/jean@port.fr/photo", body))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "https://s3.example/put", got["url"])
	assert.Equal(t, "photos/u1/29-08-2026_ma_photo.jpg", got["key"])
}

func TestUserPhotoURL_NotFound(t *testing.T) {
	photos := &fakePhotoService{
		presignDownloadFn: func(ctx context.Context, email string) (string, error) {
			return "", common.ErrorNotFound
		},
	}
	s := newTestServer(t, testServices{photos: photos})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/users/jean@port.fr/photo", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIndexPage(t *testing.T) {
	s := newTestServer(t, testServices{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Port de plaisance Russell")
	assert.Contains(t, rec.Body.String(), `action="/login"`)
}

func TestDocs(t *testing.T) {
	s := newTestServer(t, testServices{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-docs", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doc))
	assert.Contains(t, doc, "openapi")
	assert.Contains(t, doc, "paths")
}

func TestStoreFailure_Returns500(t *testing.T) {
	catways := &fakeCatwayService{
		listFn: func(ctx context.Context) ([]*models.Catway, error) {
			return nil, common.ErrorInternal
		},
	}
	s := newTestServer(t, testServices{catways: catways})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/catways", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgServerError, decodeMessage(t, rec))
}
