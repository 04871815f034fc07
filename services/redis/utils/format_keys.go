package utils

/**
 * Utility functions to format the Redis keys used by the room store.
 * Keeps every caller on the same key layout instead of repeating the
 * fmt.Sprintf format specs.
 */

import "fmt"

// FormatRoomKey is the document key holding the full Room record.
func FormatRoomKey(roomCode string) string {
	return fmt.Sprintf("room:%s", roomCode)
}

// FormatRoomChannel is the pub/sub channel carrying full room snapshots,
// published on every successful write to the room key.
func FormatRoomChannel(roomCode string) string {
	return fmt.Sprintf("room:%s:updates", roomCode)
}
