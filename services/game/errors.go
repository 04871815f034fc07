package game

import "errors"

// Kind classifies a game error so the HTTP and socket edges can map it to a
// user-visible response without inspecting messages.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindAuthorization     Kind = "authorization"
	KindNotFound          Kind = "not_found"
	KindStateConflict     Kind = "state_conflict"
	KindExceedsPot        Kind = "exceeds_pot"
	KindInsufficientFunds Kind = "insufficient_funds"
)

// Error is a recoverable game-level failure. None of these are fatal: they
// are surfaced to the acting client and leave the room untouched.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrEmptyName     = &Error{KindValidation, "player name is required"}
	ErrInvalidAmount = &Error{KindValidation, "amount must be a positive number"}

	ErrHostOnly    = &Error{KindAuthorization, "only the host can do that"}
	ErrNotYourTurn = &Error{KindAuthorization, "not your turn"}
	ErrSelfOnly    = &Error{KindAuthorization, "only the host can add money to other players"}

	ErrRoomNotFound   = &Error{KindNotFound, "room not found"}
	ErrPlayerNotFound = &Error{KindNotFound, "player not found in room"}

	ErrRoomCodeTaken        = &Error{KindStateConflict, "room code already in use"}
	ErrRoomClosedForJoining = &Error{KindStateConflict, "game has already started, you cannot join now"}
	ErrNotEnoughPlayers     = &Error{KindStateConflict, "need at least 2 players to start the game"}
	ErrGameNotStarted       = &Error{KindStateConflict, "game has not started"}
	ErrCoinsNotDistributed  = &Error{KindStateConflict, "coins have not been distributed yet"}
	ErrCoinsAlreadyDealt    = &Error{KindStateConflict, "coins were already distributed this round"}
	ErrPotNotEmpty          = &Error{KindStateConflict, "a new round can only start after the pot empties"}
	ErrRoomAlreadyClosed    = &Error{KindStateConflict, "room has been closed"}
	ErrTooManyPlayers       = &Error{KindStateConflict, "not enough coins in the deck for this many players"}
	ErrEmptyDrawPile        = &Error{KindStateConflict, "no coins left in the draw pile"}
	ErrUpdateConflict       = &Error{KindStateConflict, "room was modified concurrently, please retry"}

	ErrExceedsPot        = &Error{KindExceedsPot, "bet amount cannot exceed the pot"}
	ErrInsufficientFunds = &Error{KindInsufficientFunds, "not enough money in wallet"}
)

// KindOf extracts the Kind of an error, or empty when it is not a game error.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}
