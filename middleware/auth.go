package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const claimsContextKey = "room_claims"

// RoomClaims is the per-room identity a client carries after creating or
// joining a room. It replaces the original client-side identity cache: the
// token is the durable claim to a player id on rejoin.
type RoomClaims struct {
	RoomCode   string `json:"room_code"`
	PlayerId   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	jwt.RegisteredClaims
}

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_KEY"))
}

// GenerateRoomToken mints a signed room token for a player.
func GenerateRoomToken(roomCode, playerId, playerName string) (string, error) {
	claims := &RoomClaims{
		RoomCode:   roomCode,
		PlayerId:   playerId,
		PlayerName: playerName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtKey())
	if err != nil {
		return "", fmt.Errorf("error signing room token: %v", err)
	}
	return signed, nil
}

// ParseRoomToken validates a token string (with or without the "Bearer "
// prefix) and returns its claims.
func ParseRoomToken(tokenString string) (*RoomClaims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	claims := &RoomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtKey(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid room token: %v", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid room token")
	}
	return claims, nil
}

// AuthRequired guards the routes that act on behalf of a joined player.
func AuthRequired(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
		return
	}
	claims, err := ParseRoomToken(header)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	c.Set(claimsContextKey, claims)
	c.Next()
}

// RoomClaimsFrom returns the claims stored by AuthRequired.
func RoomClaimsFrom(c *gin.Context) (*RoomClaims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*RoomClaims)
	return claims, ok
}

// SocketRoomClaims extracts and validates the room token from a socket.io
// handshake auth payload.
func SocketRoomClaims(authData map[string]interface{}) (*RoomClaims, error) {
	token, ok := authData["authorization"].(string)
	if !ok || token == "" {
		return nil, fmt.Errorf("missing authorization token")
	}
	return ParseRoomToken(token)
}
