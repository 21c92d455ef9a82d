package service_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minigram/minigram/internal/service"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidatesAllFieldsBeforePersisting(t *testing.T) {
	s := newServices(t)

	_, _, err := s.auth.Register(service.RegisterInput{
		Username:    "bad name!",
		Password:    "short",
		DisplayName: "",
	})

	var fieldErrs service.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "username")
	require.Contains(t, fieldErrs, "password")
	require.Contains(t, fieldErrs, "display_name")

	// Nothing was created
	_, err = s.auth.Login("bad name!", "short")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	s := newServices(t)
	s.register(t, "alice")

	_, _, err := s.auth.Register(service.RegisterInput{
		Username:    "alice",
		Password:    "orange-battery-staple",
		DisplayName: "Other Alice",
	})

	var fieldErrs service.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "username")
}

func TestRegisterThenLogin(t *testing.T) {
	s := newServices(t)
	profile := s.register(t, "alice")

	user, err := s.auth.Login("alice", "orange-battery-staple")
	require.NoError(t, err)
	require.Equal(t, profile.UserID, user.ID)

	_, err = s.auth.Login("alice", "wrong-but-long-enough")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = s.auth.Login("nobody", "orange-battery-staple")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestJWTRoundTrip(t *testing.T) {
	s := newServices(t)
	profile := s.register(t, "alice")

	user, err := s.auth.Login("alice", "orange-battery-staple")
	require.NoError(t, err)

	token, err := s.auth.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := s.auth.VerifyJWT(token)
	require.NoError(t, err)
	require.Equal(t, profile.UserID, claims["user_id"])

	_, err = s.auth.VerifyJWT(token + "tampered")
	require.Error(t, err)
}

func TestJWTCookieLifecycle(t *testing.T) {
	s := newServices(t)
	user, _, err := s.auth.Register(service.RegisterInput{
		Username:    "alice",
		Password:    "orange-battery-staple",
		DisplayName: "Alice",
	})
	require.NoError(t, err)

	token, err := s.auth.GenerateJWT(user)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.auth.SetJWTCookie(rec, token, time.Now().Add(time.Hour))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "auth_token", cookies[0].Name)
	require.Equal(t, token, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)

	rec = httptest.NewRecorder()
	s.auth.ClearJWTCookie(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Empty(t, cookies[0].Value)
	require.True(t, cookies[0].Expires.Before(time.Now()))
}
