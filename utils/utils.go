package utils

import (
	"math/rand"

	game_constants "centercoin/constants/game"

	"github.com/google/uuid"
)

const roomCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRoomCode returns a short random room identifier. Uniqueness is
// enforced at creation time by the store (SETNX), not here.
func GenerateRoomCode() string {
	b := make([]byte, game_constants.ROOM_CODE_LENGTH)
	for i := range b {
		b[i] = roomCodeCharset[rand.Intn(len(roomCodeCharset))]
	}
	return string(b)
}

// GeneratePlayerID mints a stable player identifier.
func GeneratePlayerID() string {
	return uuid.NewString()
}
