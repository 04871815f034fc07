package handlers

import (
	"context"
	"log"

	"centercoin/middleware"
	"centercoin/services/game"
	socketio_types "centercoin/services/socket_io/types"
	socketio_utils "centercoin/services/socket_io/utils"
	gamesync "centercoin/sync"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleStartGame opens round one. Host only; fee collection and validation
// happen inside the store update.
func HandleStartGame(gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, err := gc.StartGame(context.Background(), claims.RoomCode, claims.PlayerId)
		if err != nil {
			log.Printf("[GAME-START-ERROR] Room %s: %v", claims.RoomCode, err)
			emitGameError(client, err)
			return
		}
		log.Printf("[GAME-START-SUCCESS] Room %s started, pot=%d", room.Code, room.Pot)
		client.Emit("game_started", gin.H{"room_code": room.Code, "pot": room.Pot})
	}
}

// HandleDistributeCoins shuffles and deals. An optional first argument names
// the player who opens the betting; otherwise the first roster entry starts.
// Hands are delivered privately, the broadcast snapshot keeps them masked.
func HandleDistributeCoins(gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		startPlayerId := ""
		if len(args) > 0 {
			if id, ok := args[0].(string); ok {
				startPlayerId = id
			}
		}

		room, err := gc.DistributeCoins(context.Background(), claims.RoomCode, claims.PlayerId, startPlayerId)
		if err != nil {
			log.Printf("[DEAL-ERROR] Room %s: %v", claims.RoomCode, err)
			emitGameError(client, err)
			return
		}

		socketio_utils.EmitPrivateHands(sio, room)
		log.Printf("[DEAL-SUCCESS] Room %s round %d dealt, %d coins remain",
			room.Code, room.CurrentRound, len(room.RemainingCoins))
	}
}

// HandleNextTurn is the host's force-advance past a stalled player.
func HandleNextTurn(gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims) func(args ...interface{}) {
	return func(args ...interface{}) {
		if _, err := gc.NextTurn(context.Background(), claims.RoomCode, claims.PlayerId); err != nil {
			emitGameError(client, err)
			return
		}
		log.Printf("[TURN] Host advanced turn in room %s", claims.RoomCode)
	}
}

// HandleStartNewRound collects fees again and deals a fresh round. Only
// valid once the pot has been emptied.
func HandleStartNewRound(gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, err := gc.StartNewRound(context.Background(), claims.RoomCode, claims.PlayerId)
		if err != nil {
			log.Printf("[ROUND-ERROR] Room %s: %v", claims.RoomCode, err)
			emitGameError(client, err)
			return
		}
		log.Printf("[ROUND-SUCCESS] Room %s advanced to round %d, pot=%d",
			room.Code, room.CurrentRound, room.Pot)
	}
}

// HandleEndGame publishes the final summary and archives it to PostgreSQL.
// The archive runs best-effort: a database failure is logged but clients
// still see the summary through the snapshot broadcast.
func HandleEndGame(gc *game.GameController, sm *gamesync.SyncManager, client *socket.Socket,
	claims *middleware.RoomClaims) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, err := gc.EndGame(context.Background(), claims.RoomCode, claims.PlayerId)
		if err != nil {
			log.Printf("[GAME-END-ERROR] Room %s: %v", claims.RoomCode, err)
			emitGameError(client, err)
			return
		}

		if sm != nil {
			if err := sm.ArchiveGameResult(room); err != nil {
				log.Printf("[GAME-END-ERROR] Archiving room %s: %v", room.Code, err)
			}
		}
		log.Printf("[GAME-END-SUCCESS] Room %s ended after %d rounds", room.Code, room.CurrentRound)
	}
}

// HandleAddMoney tops up a wallet. The host can credit anyone; other
// players only themselves. Expects (targetPlayerId string, amount number).
func HandleAddMoney(gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) < 2 {
			emitGameError(client, game.ErrInvalidAmount)
			return
		}
		targetId, ok := args[0].(string)
		if !ok {
			emitGameError(client, game.ErrPlayerNotFound)
			return
		}
		amountRaw, ok := args[1].(float64)
		if !ok {
			emitGameError(client, game.ErrInvalidAmount)
			return
		}

		room, err := gc.AddMoney(context.Background(), claims.RoomCode, claims.PlayerId, targetId, int(amountRaw))
		if err != nil {
			log.Printf("[MONEY-ERROR] Room %s: %v", claims.RoomCode, err)
			emitGameError(client, err)
			return
		}
		log.Printf("[MONEY-SUCCESS] %s credited %d to %s in room %s",
			claims.PlayerId, int(amountRaw), targetId, room.Code)
	}
}

// HandleCloseRoom marks the room closed. The snapshot fanout turns this
// into a room_closed broadcast for every attached client.
func HandleCloseRoom(gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims) func(args ...interface{}) {
	return func(args ...interface{}) {
		if _, err := gc.CloseRoom(context.Background(), claims.RoomCode, claims.PlayerId); err != nil {
			log.Printf("[CLOSE-ERROR] Room %s: %v", claims.RoomCode, err)
			emitGameError(client, err)
			return
		}
		log.Printf("[CLOSE-SUCCESS] Room %s closed by host %s", claims.RoomCode, claims.PlayerId)
	}
}
