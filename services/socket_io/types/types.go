package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer wraps the socket.io server together with the per-player
// connection map and the per-room store subscriptions feeding the
// room_update broadcasts.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track playerId -> socket connections
	UserConnections map[string]*socket.Socket

	roomListeners map[string]*roomListener
	mutex         sync.RWMutex
}

// roomListener refcounts the clients of one room sharing a single store
// subscription.
type roomListener struct {
	refs    int
	dispose func()
}

// ConnState is per-connection bookkeeping shared between the join and
// disconnect handlers of one socket.
type ConnState struct {
	JoinedRoom bool
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
		roomListeners:   make(map[string]*roomListener),
	}
}

func (s *SocketServer) AddConnection(playerId string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[playerId] = socket
}

func (s *SocketServer) RemoveConnection(playerId string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, playerId)
}

func (s *SocketServer) GetConnection(playerId string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	socket, exists := s.UserConnections[playerId]
	return socket, exists
}

// RetainRoom registers one more client interested in a room. The first
// client triggers start, which must return the disposer of the underlying
// store subscription.
func (s *SocketServer) RetainRoom(roomCode string, start func() (func(), error)) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if listener, ok := s.roomListeners[roomCode]; ok {
		listener.refs++
		return nil
	}
	dispose, err := start()
	if err != nil {
		return err
	}
	s.roomListeners[roomCode] = &roomListener{refs: 1, dispose: dispose}
	return nil
}

// ReleaseRoom drops one client's interest; the last release disposes the
// store subscription.
func (s *SocketServer) ReleaseRoom(roomCode string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	listener, ok := s.roomListeners[roomCode]
	if !ok {
		return
	}
	listener.refs--
	if listener.refs <= 0 {
		listener.dispose()
		delete(s.roomListeners, roomCode)
	}
}
