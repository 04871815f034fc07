package handlers

import (
	"context"
	"log"

	"centercoin/middleware"
	"centercoin/services/game"
	"centercoin/services/redis"
	socketio_types "centercoin/services/socket_io/types"
	socketio_utils "centercoin/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// emitGameError surfaces a recoverable failure to the acting client.
func emitGameError(client *socket.Socket, err error) {
	payload := gin.H{"error": err.Error()}
	if kind := game.KindOf(err); kind != "" {
		payload["kind"] = string(kind)
	} else {
		payload["error"] = "operation failed"
	}
	client.Emit("error", payload)
}

// HandleJoinRoom attaches the socket to its room: the client joins the
// socket.io room matching its token, the room's snapshot fanout is retained
// and the current state (plus the player's own hand, if dealt) is replayed.
func HandleJoinRoom(redisClient *redis.RedisClient, gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims, sio *socketio_types.SocketServer, state *socketio_types.ConnState) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode := claims.RoomCode
		log.Printf("[JOIN] Player %s (%s) joining room %s", claims.PlayerName, claims.PlayerId, roomCode)

		room, err := gc.Room(context.Background(), roomCode)
		if err != nil {
			log.Printf("[JOIN-ERROR] Room %s: %v", roomCode, err)
			emitGameError(client, err)
			return
		}

		client.Join(socket.Room(roomCode))

		if !state.JoinedRoom {
			err = sio.RetainRoom(roomCode, func() (func(), error) {
				return socketio_utils.StartRoomFanout(redisClient, sio, roomCode)
			})
			if err != nil {
				log.Printf("[JOIN-ERROR] Fanout for room %s: %v", roomCode, err)
				emitGameError(client, err)
				return
			}
			state.JoinedRoom = true
		}

		client.Emit("joined_room", gin.H{
			"room_code": roomCode,
			"is_host":   room.HostId == claims.PlayerId,
			"room":      room.MaskedFor(claims.PlayerId),
		})

		if player := room.PlayerById(claims.PlayerId); player != nil && len(player.Coins) > 0 {
			client.Emit("your_coins", gin.H{
				"room_code": roomCode,
				"round":     room.CurrentRound,
				"coins":     player.Coins,
			})
		}

		log.Printf("[JOIN-SUCCESS] Player %s attached to room %s", claims.PlayerId, roomCode)
	}
}

// HandleLeaveRoom soft-removes the player and detaches the socket.
func HandleLeaveRoom(gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims, sio *socketio_types.SocketServer, state *socketio_types.ConnState) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomCode := claims.RoomCode

		if err := gc.LeaveRoom(context.Background(), roomCode, claims.PlayerId); err != nil {
			log.Printf("[LEAVE-ERROR] Room %s, player %s: %v", roomCode, claims.PlayerId, err)
			emitGameError(client, err)
			return
		}

		client.Leave(socket.Room(roomCode))
		if state.JoinedRoom {
			sio.ReleaseRoom(roomCode)
			state.JoinedRoom = false
		}

		log.Printf("[LEAVE-SUCCESS] Player %s left room %s", claims.PlayerId, roomCode)
		client.Emit("left_room", gin.H{"room_code": roomCode})
	}
}

// HandleGetRoomInfo replays the current snapshot to the requesting client.
func HandleGetRoomInfo(gc *game.GameController, client *socket.Socket,
	claims *middleware.RoomClaims) func(args ...interface{}) {
	return func(args ...interface{}) {
		room, err := gc.Room(context.Background(), claims.RoomCode)
		if err != nil {
			emitGameError(client, err)
			return
		}
		client.Emit("room_info", gin.H{
			"room_code": claims.RoomCode,
			"room":      room.MaskedFor(claims.PlayerId),
		})
	}
}

// HandleDisconnecting cleans up the connection map and the room fanout
// refcount. A dropped connection does not leave the room: the player stays
// in the roster and can reattach with the same token.
func HandleDisconnecting(claims *middleware.RoomClaims, sio *socketio_types.SocketServer,
	state *socketio_types.ConnState) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] Player %s disconnecting from room %s", claims.PlayerId, claims.RoomCode)
		sio.RemoveConnection(claims.PlayerId)
		if state.JoinedRoom {
			sio.ReleaseRoom(claims.RoomCode)
			state.JoinedRoom = false
		}
	}
}
