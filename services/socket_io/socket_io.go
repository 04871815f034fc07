package socket_io

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"centercoin/middleware"
	"centercoin/services/game"
	"centercoin/services/redis"
	"centercoin/services/socket_io/handlers"
	socketio_types "centercoin/services/socket_io/types"
	gamesync "centercoin/sync"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start wires the socket.io server onto the gin router. Every connection
// must carry a valid room token in its handshake auth payload; the claims
// scope all of its events to that one room.
func (sio *MySocketServer) Start(router *gin.Engine, redisClient *redis.RedisClient,
	gc *game.GameController, sm *gamesync.SyncManager) {
	log.DEBUG = true
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: initialize the connection and listener maps, nil maps panic
	*sio = MySocketServer(*socketio_types.NewSocketServer())

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		authData, _ := client.Handshake().Auth.(map[string]interface{})
		claims, err := middleware.SocketRoomClaims(authData)
		if err != nil {
			fmt.Println("Rejecting unauthenticated socket:", err)
			client.Emit("error", gin.H{"error": "authentication required"})
			client.Disconnect(true)
			return
		}

		typedSio := (*socketio_types.SocketServer)(sio)
		typedSio.AddConnection(claims.PlayerId, client)

		fmt.Println("An individual just connected!:", claims.PlayerName, "room:", claims.RoomCode)

		// Per-connection state shared between join and disconnect
		state := &socketio_types.ConnState{}

		// Attach the socket to its room and replay the current snapshot
		client.On("join_room", handlers.HandleJoinRoom(redisClient, gc, client, claims, typedSio, state))

		// Leave the room voluntarily (soft removal, rejoin keeps identity)
		client.On("leave_room", handlers.HandleLeaveRoom(gc, client, claims, typedSio, state))

		// Replay the latest room snapshot on demand
		client.On("get_room_info", handlers.HandleGetRoomInfo(gc, client, claims))

		// Start the game (host only)
		client.On("start_game", handlers.HandleStartGame(gc, client, claims))

		// Shuffle and deal the round's hands (host only)
		client.On("distribute_coins", handlers.HandleDistributeCoins(gc, client, claims, typedSio))

		// Place a bet against the pot
		client.On("place_bet", handlers.HandlePlaceBet(gc, client, claims, typedSio))

		// Pass the turn without betting
		client.On("skip_turn", handlers.HandleSkipTurn(gc, client, claims))

		// Force-advance the turn (host only)
		client.On("next_turn", handlers.HandleNextTurn(gc, client, claims))

		// Start a new round once the pot is empty (host only)
		client.On("start_new_round", handlers.HandleStartNewRound(gc, client, claims))

		// End the game and archive the summary (host only)
		client.On("end_game", handlers.HandleEndGame(gc, sm, client, claims))

		// Credit a wallet (host: anyone; others: self)
		client.On("add_money", handlers.HandleAddMoney(gc, client, claims))

		// Close the room for good (host only)
		client.On("close_room", handlers.HandleCloseRoom(gc, client, claims))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(claims, typedSio, state))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
