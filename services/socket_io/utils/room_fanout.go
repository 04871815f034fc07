package socketio_utils

import (
	"log"

	"centercoin/models"
	"centercoin/services/redis"
	socketio_types "centercoin/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// StartRoomFanout opens the store subscription for one room and forwards
// every snapshot to the socket.io room as a room_update event. Hands that
// have not been disclosed yet are masked; each player receives its own
// hand through private your_coins emits instead. Returns the disposer for
// the subscription.
func StartRoomFanout(redisClient *redis.RedisClient, sio *socketio_types.SocketServer, roomCode string) (func(), error) {
	snapshots, dispose, err := redisClient.SubscribeRoom(roomCode)
	if err != nil {
		return nil, err
	}

	go func() {
		for room := range snapshots {
			sio.Sio_server.To(socket.Room(roomCode)).Emit("room_update", room.MaskedFor(""))

			if room.RoomClosed {
				log.Printf("[FANOUT] Room %s closed by host, notifying clients", roomCode)
				sio.Sio_server.To(socket.Room(roomCode)).Emit("room_closed", gin.H{
					"room_code": roomCode,
					"message":   "Room has been closed by the host.",
				})
			}
		}
		log.Printf("[FANOUT] Snapshot stream for room %s ended", roomCode)
	}()

	return dispose, nil
}

// EmitPrivateHands sends each connected player its own hand. Used right
// after dealing and on rejoin, since broadcast snapshots mask undisclosed
// hands.
func EmitPrivateHands(sio *socketio_types.SocketServer, room *models.Room) {
	for _, p := range room.Players {
		if len(p.Coins) == 0 {
			continue
		}
		if conn, ok := sio.GetConnection(p.Id); ok {
			conn.Emit("your_coins", gin.H{
				"room_code": room.Code,
				"round":     room.CurrentRound,
				"coins":     p.Coins,
			})
		}
	}
}
