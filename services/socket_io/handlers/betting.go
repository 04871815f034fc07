package handlers

import (
	"context"
	"log"

	"centercoin/middleware"
	"centercoin/services/game"
	socketio_types "centercoin/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandlePlaceBet resolves a bet for the acting player. Expects the bet
// amount as the first argument. The draw outcome goes to the whole room as
// a bet_result event on top of the regular snapshot broadcast, since the
// drawn coin and win flag are public the moment the bet resolves.
func HandlePlaceBet(gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 1 {
			emitGameError(client, game.ErrInvalidAmount)
			return
		}
		amountRaw, ok := args[0].(float64)
		if !ok {
			emitGameError(client, game.ErrInvalidAmount)
			return
		}
		amount := int(amountRaw)

		room, result, err := gc.PlaceBet(context.Background(), claims.RoomCode, claims.PlayerId, amount)
		if err != nil {
			log.Printf("[BET-ERROR] Room %s, player %s: %v", claims.RoomCode, claims.PlayerId, err)
			emitGameError(client, err)
			return
		}

		sio.Sio_server.To(socket.Room(room.Code)).Emit("bet_result", gin.H{
			"room_code": room.Code,
			"result":    result,
			"pot":       room.Pot,
		})
	}
}

// HandleSkipTurn passes the acting player's turn without betting.
func HandleSkipTurn(gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims) func(args ...interface{}) {
	return func(args ...interface{}) {
		if _, err := gc.SkipTurn(context.Background(), claims.RoomCode, claims.PlayerId); err != nil {
			log.Printf("[SKIP-ERROR] Room %s, player %s: %v", claims.RoomCode, claims.PlayerId, err)
			emitGameError(client, err)
			return
		}
		log.Printf("[SKIP-SUCCESS] Player %s skipped in room %s", claims.PlayerId, claims.RoomCode)
	}
}
