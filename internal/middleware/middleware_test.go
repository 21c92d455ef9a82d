package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/minigram/minigram/internal/ctxkeys"
	"github.com/minigram/minigram/internal/middleware"
	"github.com/minigram/minigram/internal/model"
	"github.com/minigram/minigram/internal/repository"
	"github.com/minigram/minigram/internal/service"
	"github.com/minigram/minigram/internal/testutil"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	auth    *service.AuthService
	wrap    func(http.Handler) http.Handler
	user    *model.User
	profile *model.Profile
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	auth := service.NewAuthService(userRepo, profileRepo, "test-secret", false, time.Hour)
	users := service.NewUserService(userRepo)
	profiles := service.NewProfileService(profileRepo, repository.NewPostRepository(db), repository.NewFollowerRepository(db))

	user, profile, err := auth.Register(service.RegisterInput{
		Username:    "alice",
		Password:    "orange-battery-staple",
		DisplayName: "Alice",
	})
	require.NoError(t, err)

	return &authFixture{
		auth:    auth,
		wrap:    middleware.AuthMiddleware(auth, users, profiles),
		user:    user,
		profile: profile,
	}
}

func TestAuthMiddlewareAttachesUserAndActor(t *testing.T) {
	f := newAuthFixture(t)

	token, err := f.auth.GenerateJWT(f.user)
	require.NoError(t, err)

	var gotUser *model.User
	var gotActor *model.Profile
	handler := f.wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = ctxkeys.User(r.Context())
		gotActor = ctxkeys.Actor(r.Context())
	}))

	req := httptest.NewRequest("GET", "/feed", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, gotUser)
	require.Equal(t, f.user.ID, gotUser.ID)
	require.Empty(t, gotUser.PasswordHash)
	require.NotNil(t, gotActor)
	require.Equal(t, f.profile.ID, gotActor.ID)
}

// brokenProfileRepository fails every profile lookup the way a lost
// database connection would.
type brokenProfileRepository struct {
	repository.ProfileRepository
}

func (brokenProfileRepository) ByUserID(string) (*model.Profile, error) {
	return nil, errors.New("driver: bad connection")
}

func TestAuthMiddlewareKeepsUserWhenProfileLookupFails(t *testing.T) {
	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	auth := service.NewAuthService(userRepo, profileRepo, "test-secret", false, time.Hour)
	users := service.NewUserService(userRepo)
	profiles := service.NewProfileService(
		brokenProfileRepository{profileRepo},
		repository.NewPostRepository(db),
		repository.NewFollowerRepository(db),
	)

	user, _, err := auth.Register(service.RegisterInput{
		Username:    "alice",
		Password:    "orange-battery-staple",
		DisplayName: "Alice",
	})
	require.NoError(t, err)

	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)

	var gotUser *model.User
	var gotActor *model.Profile
	handler := middleware.AuthMiddleware(auth, users, profiles)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = ctxkeys.User(r.Context())
		gotActor = ctxkeys.Actor(r.Context())
	}))

	req := httptest.NewRequest("GET", "/feed", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	// The session survives the lookup failure; only the actor is absent
	require.NotNil(t, gotUser)
	require.Equal(t, user.ID, gotUser.ID)
	require.Nil(t, gotActor)
}

func TestAuthMiddlewareWithoutCookieIsGuest(t *testing.T) {
	f := newAuthFixture(t)

	var gotUser *model.User
	handler := f.wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = ctxkeys.User(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	require.Nil(t, gotUser)
}

func TestAuthMiddlewareClearsInvalidToken(t *testing.T) {
	f := newAuthFixture(t)

	var gotUser *model.User
	handler := f.wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = ctxkeys.User(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "garbage"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Nil(t, gotUser)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "auth_token", cookies[0].Name)
	require.Empty(t, cookies[0].Value)
}

func TestRequireAuthRedirectsGuests(t *testing.T) {
	handler := middleware.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/feed", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestRequireGuestRedirectsAuthenticated(t *testing.T) {
	handler := middleware.RequireGuest(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/auth/login", nil)
	req = req.WithContext(ctxkeys.WithUser(req.Context(), &model.User{ID: "u1"}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/feed", rec.Header().Get("Location"))
}

func TestCSRFProtection(t *testing.T) {
	handler := middleware.CSRFProtection(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// A GET issues the token cookie
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "csrf_token", cookies[0].Name)
	token := cookies[0].Value

	// POST without the token is rejected
	req := httptest.NewRequest("POST", "/posts", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: token})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// POST with a matching form token passes
	form := url.Values{"csrf_token": {token}}
	req = httptest.NewRequest("POST", "/posts", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: token})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// The header form works too
	req = httptest.NewRequest("POST", "/posts", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRF-Token", token)
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: token})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
