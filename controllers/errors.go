package controllers

import (
	"net/http"

	"centercoin/services/game"

	"github.com/gin-gonic/gin"
)

// abortWithGameError maps the game error taxonomy onto HTTP statuses.
// Everything in the taxonomy is a recoverable, user-visible failure; only
// unclassified errors become a generic 500.
func abortWithGameError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "operation failed"

	switch game.KindOf(err) {
	case game.KindValidation:
		status = http.StatusBadRequest
		message = err.Error()
	case game.KindAuthorization:
		status = http.StatusForbidden
		message = err.Error()
	case game.KindNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case game.KindStateConflict:
		status = http.StatusConflict
		message = err.Error()
	case game.KindExceedsPot, game.KindInsufficientFunds:
		status = http.StatusBadRequest
		message = err.Error()
	}

	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
