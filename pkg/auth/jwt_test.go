package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService("test-secret", time.Hour, "test")
	require.NoError(t, err)
	return svc
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Ada", "Lovelace", "ada@example.com", "secret1")
	require.NoError(t, err)
	return u
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", time.Hour, "test")
	assert.ErrorIs(t, err, ErrMissingJWTKey)

	svc, err := NewJWTService("s", 0, "test")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, svc.Expiration())
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)
	u := newTestUser(t)

	token, expiresAt, err := svc.GenerateToken(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.Name)
}

func TestValidateToken_Errors(t *testing.T) {
	svc := newTestService(t)
	u := newTestUser(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewJWTService("another-secret", time.Hour, "test")
	require.NoError(t, err)
	foreign, _, err := other.GenerateToken(u)
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, _, err := svc.GenerateToken(u)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRefreshToken(t *testing.T) {
	svc := newTestService(t)
	u := newTestUser(t)

	token, _, err := svc.GenerateToken(u)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(30 * time.Minute) }
	refreshed, expiresAt, err := svc.RefreshToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(90*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	svc.now = func() time.Time { return time.Now().Add(3 * time.Hour) }
	_, _, err = svc.RefreshToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	u := newTestUser(t)
	token, _, err := svc.GenerateToken(u)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", JWTAuthMiddleware(svc), func(c *gin.Context) {
		c.String(http.StatusOK, GetCurrentUserID(c))
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"sem cabeçalho", "", http.StatusUnauthorized},
		{"formato inválido", "Token " + token, http.StatusUnauthorized},
		{"token inválido", "Bearer garbage", http.StatusUnauthorized},
		{"token válido", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, u.ID, w.Body.String())
			}
		})
	}
}
