package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")

	token, err := GenerateRoomToken("ABCD", "p1", "Alice")
	require.NoError(t, err)

	claims, err := ParseRoomToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ABCD", claims.RoomCode)
	assert.Equal(t, "p1", claims.PlayerId)
	assert.Equal(t, "Alice", claims.PlayerName)

	claims, err = ParseRoomToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "p1", claims.PlayerId)
}

func TestParseRoomTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")

	_, err := ParseRoomToken("not-a-token")
	assert.Error(t, err)
}

func TestParseRoomTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	token, err := GenerateRoomToken("ABCD", "p1", "Alice")
	require.NoError(t, err)

	t.Setenv("JWT_KEY", "another-secret")
	_, err = ParseRoomToken(token)
	assert.Error(t, err)
}

func TestAuthRequired(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", AuthRequired, func(c *gin.Context) {
		claims, ok := RoomClaimsFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"player_id": claims.PlayerId})
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer junk")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("accepts a valid token and exposes claims", func(t *testing.T) {
		token, err := GenerateRoomToken("ABCD", "p1", "Alice")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "p1")
	})
}

func TestSocketRoomClaims(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")

	token, err := GenerateRoomToken("ABCD", "p1", "Alice")
	require.NoError(t, err)

	claims, err := SocketRoomClaims(map[string]interface{}{"authorization": token})
	require.NoError(t, err)
	assert.Equal(t, "ABCD", claims.RoomCode)

	_, err = SocketRoomClaims(map[string]interface{}{})
	assert.Error(t, err)

	_, err = SocketRoomClaims(nil)
	assert.Error(t, err)
}
