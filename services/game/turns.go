package game

import (
	"centercoin/models"
)

// IsPlayersTurn reports whether the given player holds the turn: its roster
// position must equal the (re-normalized) current player index.
func IsPlayersTurn(room *models.Room, playerId string) bool {
	n := len(room.Players)
	if n == 0 {
		return false
	}
	idx := room.PlayerIndex(playerId)
	return idx >= 0 && idx == ((room.CurrentPlayerIndex%n)+n)%n
}

// advanceTurn moves the turn to the next roster position, wrapping around.
func advanceTurn(room *models.Room) {
	n := len(room.Players)
	if n == 0 {
		return
	}
	room.CurrentPlayerIndex = (room.CurrentPlayerIndex + 1) % n
}

// SkipTurn lets the current player pass without betting. The actor is
// recorded in completedTurns (idempotently) and the turn advances on its
// own, without waiting for the host.
func SkipTurn(room *models.Room, playerId string) error {
	if !room.CoinsDistributed {
		return ErrCoinsNotDistributed
	}
	if !IsPlayersTurn(room, playerId) {
		return ErrNotYourTurn
	}
	room.MarkTurnCompleted(playerId)
	advanceTurn(room)
	return nil
}

// NextTurn is the host's force-advance: it moves the index exactly like a
// skip but leaves completedTurns untouched, regardless of whose turn it
// nominally is. The host check lives in the controller.
func NextTurn(room *models.Room) error {
	if !room.CoinsDistributed {
		return ErrCoinsNotDistributed
	}
	advanceTurn(room)
	return nil
}
