package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"streakd/internal/structures"
	"streakd/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(baseURL string) ProviderInterface {
	return NewHTTPProvider(&structures.Config{
		Auth: structures.AuthConfig{
			BaseURL: baseURL,
			APIKey:  "anon-key",
			Timeout: 2 * time.Second,
		},
	}, &testutil.MockLogger{})
}

func TestSendCode_Success(t *testing.T) {
	var gotPath, gotAPIKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestProvider(srv.URL).SendCode(context.Background(), "user@example.com")

	require.NoError(t, err)
	assert.Equal(t, "/otp", gotPath)
	assert.Equal(t, "anon-key", gotAPIKey)
}

func TestSendCode_ErrorMessageDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"msg":"Signups not allowed for otp"}`))
	}))
	defer srv.Close()

	err := newTestProvider(srv.URL).SendCode(context.Background(), "user@example.com")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnprocessableEntity, authErr.Status)
	assert.Equal(t, "Signups not allowed for otp", authErr.Message)
}

func TestSendCode_Unreachable(t *testing.T) {
	err := newTestProvider("http://127.0.0.1:1").SendCode(context.Background(), "user@example.com")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 0, authErr.Status)
}

func TestVerifyCode_SessionDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "jwt-token",
			"refresh_token": "refresh",
			"expires_in": 3600,
			"user": {"id": "user-1", "email": "user@example.com"}
		}`))
	}))
	defer srv.Close()

	session, err := newTestProvider(srv.URL).VerifyCode(context.Background(), "user@example.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.AccessToken)
	assert.Equal(t, "refresh", session.RefreshToken)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "user@example.com", session.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 10*time.Second)
}

func TestVerifyCode_BadCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error_description":"Token has expired or is invalid"}`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).VerifyCode(context.Background(), "user@example.com", "000000")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Equal(t, "Token has expired or is invalid", authErr.Message)
}

func TestVerifyCode_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).VerifyCode(context.Background(), "user@example.com", "123456")
	assert.Error(t, err)
}

func TestSignOut_SendsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/logout", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestProvider(srv.URL).SignOut(context.Background(), "jwt-token")

	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-token", gotAuth)
}

func TestDecodeError_FallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	err := newTestProvider(srv.URL).SendCode(context.Background(), "user@example.com")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Message, "500")
}
