package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/infrastructure/auth"
	"github.com/ivrelife/nexus/internal/infrastructure/config"
	"github.com/ivrelife/nexus/internal/interfaces/http/dto"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-0123456789abcdef0123",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "nexus-test",
		MaxRefreshCount:        2,
	})
}

func newAuthTestRouter(cfg AuthConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/me", RequireAuth(cfg), func(c *gin.Context) {
		actor := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.ID.String(), "role": actor.Role.String()})
	})
	return router
}

func decodeErrorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestRequireAuth(t *testing.T) {
	jwtService := newTestJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	router := newAuthTestRouter(AuthConfig{
		JWTService: jwtService,
		Blacklist:  blacklist,
		Logger:     zap.NewNop(),
	})

	userID := uuid.New()
	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: userID,
		Email:  "owner@nexus.test",
		Role:   identity.RoleOwner,
	})
	require.NoError(t, err)

	t.Run("resolves the actor from a valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "owner", body["role"])
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeErrorCode(t, w.Body.Bytes()))
	})

	t.Run("rejects a non-bearer header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_INVALID", decodeErrorCode(t, w.Body.Bytes()))
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_INVALID", decodeErrorCode(t, w.Body.Bytes()))
	})

	t.Run("rejects a refresh token used as an access token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a blacklisted token", func(t *testing.T) {
		revokedPair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID: uuid.New(),
			Role:   identity.RoleBackoffice,
		})
		require.NoError(t, err)

		claims, err := jwtService.ValidateAccessToken(revokedPair.AccessToken)
		require.NoError(t, err)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+revokedPair.AccessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_REVOKED", decodeErrorCode(t, w.Body.Bytes()))
	})

	t.Run("rejects tokens issued before a session-wide invalidation", func(t *testing.T) {
		invalidatedUser := uuid.New()
		stale, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID: invalidatedUser,
			Role:   identity.RoleBackoffice,
		})
		require.NoError(t, err)

		// Issued-at timestamps have second precision
		time.Sleep(1100 * time.Millisecond)
		require.NoError(t, blacklist.AddUserTokensToBlacklist(context.Background(), invalidatedUser.String(), time.Hour))

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+stale.AccessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_REVOKED", decodeErrorCode(t, w.Body.Bytes()))
	})
}

func TestGetActor_NoAuth(t *testing.T) {
	router := gin.New()
	router.GET("/anon", func(c *gin.Context) {
		actor := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": actor.IsAuthenticated()})
	})

	req := httptest.NewRequest("GET", "/anon", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated": false}`, w.Body.String())
}
