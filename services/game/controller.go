package game

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"centercoin/models"
	"centercoin/utils"
)

// RoomStore is the shared-document contract the game consumes. The store
// offers no cross-field transactional guarantee beyond what UpdateRoom
// provides: the mutate callback runs against a freshly decoded snapshot and
// the write is applied compare-and-set on the room version, so a stale
// writer loses the race and is re-run against the new snapshot.
type RoomStore interface {
	GetRoom(ctx context.Context, code string) (*models.Room, error)
	RoomExists(ctx context.Context, code string) (bool, error)
	CreateRoom(ctx context.Context, room *models.Room) error
	UpdateRoom(ctx context.Context, code string, mutate func(*models.Room) error) (*models.Room, error)
	DeleteRoom(ctx context.Context, code string) error
}

// GameController validates player intents against the latest room snapshot
// and applies them through the store. It never trusts a previously loaded
// view: every role and turn check happens inside the CAS update, at the
// moment of write construction.
type GameController struct {
	store RoomStore

	// rand.Rand is not safe for concurrent use; the socket layer runs one
	// goroutine per event.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGameController(store RoomStore) *GameController {
	return &GameController{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewGameControllerWithRNG injects a deterministic random source, for tests.
func NewGameControllerWithRNG(store RoomStore, rng *rand.Rand) *GameController {
	return &GameController{store: store, rng: rng}
}

// Room returns the latest snapshot of a room.
func (gc *GameController) Room(ctx context.Context, code string) (*models.Room, error) {
	return gc.store.GetRoom(ctx, code)
}

// CreateRoom allocates a fresh room with the caller as host-player and
// returns the stored snapshot plus the minted player id.
func (gc *GameController) CreateRoom(ctx context.Context, name string, entryFee int) (*models.Room, string, error) {
	if name == "" {
		return nil, "", ErrEmptyName
	}
	playerId := utils.GeneratePlayerID()

	// Room codes are short; retry on the rare collision.
	for attempt := 0; attempt < 5; attempt++ {
		room := NewRoom(utils.GenerateRoomCode(), playerId, name, entryFee)
		err := gc.store.CreateRoom(ctx, room)
		if errors.Is(err, ErrRoomCodeTaken) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		log.Printf("[ROOM-CREATE] Room %s created by %s (%s)", room.Code, name, playerId)
		return room, playerId, nil
	}
	return nil, "", ErrRoomCodeTaken
}

// JoinRoom joins (or rejoins) a room by name. The returned id is the
// existing player's on the rejoin path, otherwise a freshly minted one.
func (gc *GameController) JoinRoom(ctx context.Context, code, name string) (*models.Room, string, error) {
	if name == "" {
		return nil, "", ErrEmptyName
	}
	newId := utils.GeneratePlayerID()
	var joinedId string
	room, err := gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		player, err := Join(r, newId, name)
		if err != nil {
			return err
		}
		joinedId = player.Id
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	log.Printf("[ROOM-JOIN] %s joined room %s as %s", name, code, joinedId)
	return room, joinedId, nil
}

// LeaveRoom marks the player inactive, keeping its record intact.
func (gc *GameController) LeaveRoom(ctx context.Context, code, playerId string) error {
	_, err := gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		return Leave(r, playerId)
	})
	return err
}

// StartGame is host-only: collects entry fees and opens round one.
func (gc *GameController) StartGame(ctx context.Context, code, actorId string) (*models.Room, error) {
	return gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		if r.HostId != actorId {
			return ErrHostOnly
		}
		return StartGame(r)
	})
}

// DistributeCoins is host-only: shuffles and deals the round's hands.
func (gc *GameController) DistributeCoins(ctx context.Context, code, actorId, startPlayerId string) (*models.Room, error) {
	return gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		if r.HostId != actorId {
			return ErrHostOnly
		}
		gc.mu.Lock()
		defer gc.mu.Unlock()
		return Distribute(r, startPlayerId, gc.rng)
	})
}

// PlaceBet resolves a bet for the acting player.
func (gc *GameController) PlaceBet(ctx context.Context, code, actorId string, amount int) (*models.Room, *models.DrawResult, error) {
	var result *models.DrawResult
	room, err := gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		gc.mu.Lock()
		defer gc.mu.Unlock()
		dr, err := ResolveBet(r, actorId, amount, gc.rng)
		if err != nil {
			return err
		}
		result = dr
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	log.Printf("[BET] %s bet %d in room %s: drew %d, win=%v, pot=%d",
		result.PlayerName, amount, code, result.DrawnCoin, result.IsWin, room.Pot)
	return room, result, nil
}

// SkipTurn passes the current player's turn.
func (gc *GameController) SkipTurn(ctx context.Context, code, actorId string) (*models.Room, error) {
	return gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		return SkipTurn(r, actorId)
	})
}

// NextTurn is the host's force-advance.
func (gc *GameController) NextTurn(ctx context.Context, code, actorId string) (*models.Room, error) {
	return gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		if r.HostId != actorId {
			return ErrHostOnly
		}
		return NextTurn(r)
	})
}

// StartNewRound is host-only, valid only after a pot-empty event.
func (gc *GameController) StartNewRound(ctx context.Context, code, actorId string) (*models.Room, error) {
	return gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		if r.HostId != actorId {
			return ErrHostOnly
		}
		return StartNewRound(r)
	})
}

// EndGame is host-only: publishes the final summary to every client.
func (gc *GameController) EndGame(ctx context.Context, code, actorId string) (*models.Room, error) {
	return gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		if r.HostId != actorId {
			return ErrHostOnly
		}
		return EndGame(r)
	})
}

// AddMoney credits a wallet (host: anyone; others: self only).
func (gc *GameController) AddMoney(ctx context.Context, code, actorId, targetId string, amount int) (*models.Room, error) {
	return gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		return AddMoney(r, actorId, targetId, amount)
	})
}

// CloseRoom is the host's terminal action.
func (gc *GameController) CloseRoom(ctx context.Context, code, actorId string) (*models.Room, error) {
	return gc.store.UpdateRoom(ctx, code, func(r *models.Room) error {
		if r.HostId != actorId {
			return ErrHostOnly
		}
		return CloseRoom(r)
	})
}
