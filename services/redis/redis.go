package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	game_constants "centercoin/constants/game"
	"centercoin/models"
	"centercoin/services/game"
	redis_utils "centercoin/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

// Rooms are ephemeral; an abandoned room expires on its own.
const roomTTL = 24 * time.Hour

// RedisClient implements the room store: Redis holds one JSON document per
// room and fans out full snapshots over pub/sub on every write.
type RedisClient struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisClient creates a new Redis client instance.
func NewRedisClient(addr string, db int) (*RedisClient, error) {
	var client *redis.Client
	if addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %v", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		})
	}
	return &RedisClient{
		Client: client,
		Ctx:    context.Background(),
	}, nil
}

func decodeRoom(data []byte) (*models.Room, error) {
	var room models.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("error unmarshaling room data: %v", err)
	}
	room.Normalize()
	return &room, nil
}

// GetRoom retrieves the current room snapshot.
// Key format: "room:{code}"
func (rc *RedisClient) GetRoom(ctx context.Context, code string) (*models.Room, error) {
	data, err := rc.Client.Get(ctx, redis_utils.FormatRoomKey(code)).Bytes()
	if err == redis.Nil {
		return nil, game.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting room data: %v", err)
	}
	return decodeRoom(data)
}

// RoomExists reports whether a room document is present.
func (rc *RedisClient) RoomExists(ctx context.Context, code string) (bool, error) {
	n, err := rc.Client.Exists(ctx, redis_utils.FormatRoomKey(code)).Result()
	if err != nil {
		return false, fmt.Errorf("error checking room existence: %v", err)
	}
	return n > 0, nil
}

// CreateRoom stores a brand-new room document. SETNX semantics guarantee
// two creators can never claim the same code.
func (rc *RedisClient) CreateRoom(ctx context.Context, room *models.Room) error {
	room.Version = 1
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("error marshaling room data: %v", err)
	}
	ok, err := rc.Client.SetNX(ctx, redis_utils.FormatRoomKey(room.Code), data, roomTTL).Result()
	if err != nil {
		return fmt.Errorf("error creating room: %v", err)
	}
	if !ok {
		return game.ErrRoomCodeTaken
	}
	if err := rc.Client.Publish(ctx, redis_utils.FormatRoomChannel(room.Code), data).Err(); err != nil {
		log.Printf("[STORE-WARN] Failed to publish room %s creation: %v", room.Code, err)
	}
	return nil
}

// UpdateRoom applies mutate to a freshly decoded snapshot inside a
// WATCH/MULTI transaction: if another writer touches the room key between
// the read and the write, the transaction fails and the mutation is re-run
// against the new snapshot. The room version is bumped on every successful
// write and the resulting document is published to the room channel.
//
// A mutate error aborts the update with nothing written — failed
// preconditions never reach the store.
func (rc *RedisClient) UpdateRoom(ctx context.Context, code string, mutate func(*models.Room) error) (*models.Room, error) {
	key := redis_utils.FormatRoomKey(code)
	var updated *models.Room

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return game.ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("error getting room data: %v", err)
		}
		room, err := decodeRoom(data)
		if err != nil {
			return err
		}
		if err := mutate(room); err != nil {
			return err
		}
		room.Version++
		payload, err := json.Marshal(room)
		if err != nil {
			return fmt.Errorf("error marshaling room data: %v", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, roomTTL)
			pipe.Publish(ctx, redis_utils.FormatRoomChannel(code), payload)
			return nil
		})
		if err == nil {
			updated = room
		}
		return err
	}

	for attempt := 0; attempt < game_constants.MAX_UPDATE_RETRIES; attempt++ {
		err := rc.Client.Watch(ctx, txn, key)
		if errors.Is(err, redis.TxFailedErr) {
			log.Printf("[STORE-RETRY] Concurrent write on room %s, retrying (%d)", code, attempt+1)
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, game.ErrUpdateConflict
}

// SubscribeRoom opens a snapshot stream for one room. Every successful
// write publishes the full document, so a subscriber that misses an
// intermediate update still converges on the next one. The returned
// disposer cancels the subscription and closes the channel.
func (rc *RedisClient) SubscribeRoom(code string) (<-chan *models.Room, func(), error) {
	pubsub := rc.Client.Subscribe(rc.Ctx, redis_utils.FormatRoomChannel(code))

	// Force the subscription to be established before returning.
	if _, err := pubsub.Receive(rc.Ctx); err != nil {
		pubsub.Close()
		return nil, nil, fmt.Errorf("error subscribing to room %s: %v", code, err)
	}

	out := make(chan *models.Room, 16)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			room, err := decodeRoom([]byte(msg.Payload))
			if err != nil {
				log.Printf("[SUBSCRIBE-ERROR] Bad snapshot on room %s: %v", code, err)
				continue
			}
			select {
			case out <- room:
			default:
				// Slow consumer: drop this snapshot, the next write
				// carries the full state anyway.
				log.Printf("[SUBSCRIBE-WARN] Dropping snapshot for slow subscriber of room %s", code)
			}
		}
	}()

	dispose := func() {
		if err := pubsub.Close(); err != nil {
			log.Printf("[SUBSCRIBE-ERROR] Error closing subscription for room %s: %v", code, err)
		}
	}
	return out, dispose, nil
}

// DeleteRoom removes the room document.
func (rc *RedisClient) DeleteRoom(ctx context.Context, code string) error {
	if err := rc.Client.Del(ctx, redis_utils.FormatRoomKey(code)).Err(); err != nil {
		return fmt.Errorf("error deleting room data: %v", err)
	}
	return nil
}
