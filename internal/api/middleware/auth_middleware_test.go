package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gildedthread/storefront-api/internal/api/middleware"
	"github.com/gildedthread/storefront-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(t *testing.T, userID uuid.UUID, role string, duration time.Duration, key []byte, method jwt.SigningMethod) string {
	t.Helper()

	claims := &models.Claims{
		UserID: userID,
		Email:  "test@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func newRequest(authHeader string) *http.Request {
	req := httptest.NewRequest("GET", "/api/v1/coupons", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

func TestAuthenticate(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	userID := uuid.New()

	t.Run("Success - Valid Token", func(t *testing.T) {
		// Arrange
		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true

			claims, ok := middleware.ClaimsFromContext(r.Context())
			require.True(t, ok, "claims should be in context")
			assert.Equal(t, userID, claims.UserID)

			w.WriteHeader(http.StatusOK)
		})

		token := createTestToken(t, userID, models.RoleCustomer, time.Hour, testJwtKey, jwt.SigningMethodHS256)
		req := newRequest("Bearer " + token)
		recorder := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next)(recorder, req)

		// Assert
		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Failure - Missing Authorization Header", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not run")
		})

		req := newRequest("")
		recorder := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next)(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Authorization header is required")
	})

	t.Run("Failure - Malformed Header", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not run")
		})

		req := newRequest("NotBearerToken")
		recorder := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next)(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid authorization format")
	})

	t.Run("Failure - Expired Token", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not run")
		})

		token := createTestToken(t, userID, models.RoleCustomer, -time.Hour, testJwtKey, jwt.SigningMethodHS256)
		req := newRequest("Bearer " + token)
		recorder := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next)(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Failure - Wrong Signing Key", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not run")
		})

		token := createTestToken(t, userID, models.RoleCustomer, time.Hour, []byte("another-key-entirely-1234567890"), jwt.SigningMethodHS256)
		req := newRequest("Bearer " + token)
		recorder := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next)(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequireRole(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	userID := uuid.New()

	t.Run("Success - Admin Token On Admin Route", func(t *testing.T) {
		// Arrange
		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusOK)
		})

		token := createTestToken(t, userID, models.RoleAdmin, time.Hour, testJwtKey, jwt.SigningMethodHS256)
		req := newRequest("Bearer " + token)
		recorder := httptest.NewRecorder()

		// Act
		authMiddleware.RequireRole(models.RoleAdmin, next)(recorder, req)

		// Assert
		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Failure - Customer Token On Admin Route", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not run")
		})

		token := createTestToken(t, userID, models.RoleCustomer, time.Hour, testJwtKey, jwt.SigningMethodHS256)
		req := newRequest("Bearer " + token)
		recorder := httptest.NewRecorder()

		// Act
		authMiddleware.RequireRole(models.RoleAdmin, next)(recorder, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Insufficient permissions")
	})
}

func TestOptionalAuthenticate(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	userID := uuid.New()

	t.Run("Success - Anonymous Request Passes Through", func(t *testing.T) {
		// Arrange
		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true

			_, ok := middleware.ClaimsFromContext(r.Context())
			assert.False(t, ok, "anonymous request should carry no claims")

			w.WriteHeader(http.StatusOK)
		})

		req := newRequest("")
		recorder := httptest.NewRecorder()

		// Act
		authMiddleware.OptionalAuthenticate(next)(recorder, req)

		// Assert
		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Success - Valid Token Attaches Claims", func(t *testing.T) {
		// Arrange
		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true

			claims, ok := middleware.ClaimsFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, userID, claims.UserID)

			w.WriteHeader(http.StatusOK)
		})

		token := createTestToken(t, userID, models.RoleCustomer, time.Hour, testJwtKey, jwt.SigningMethodHS256)
		req := newRequest("Bearer " + token)
		recorder := httptest.NewRecorder()

		// Act
		authMiddleware.OptionalAuthenticate(next)(recorder, req)

		// Assert
		assert.True(t, nextCalled)
	})

	t.Run("Failure - Garbage Token Is Still Rejected", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler should not run")
		})

		req := newRequest("Bearer not.a.token")
		recorder := httptest.NewRecorder()

		// Act
		authMiddleware.OptionalAuthenticate(next)(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
