package game

import (
	"testing"

	game_constants "centercoin/constants/game"
	"centercoin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("creator joins as host-player with defaults", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 0)

		assert.Equal(t, models.StatusWaiting, room.Status)
		assert.Equal(t, game_constants.DEFAULT_ENTRY_FEE, room.EntryFee)
		assert.Equal(t, 1, room.CurrentRound)
		assert.Equal(t, 0, room.Pot)
		require.Len(t, room.Players, 1)

		host := room.Players[0]
		assert.Equal(t, "host-id", host.Id)
		assert.Equal(t, game_constants.STARTING_WALLET, host.Wallet)
		assert.Equal(t, game_constants.STARTING_WALLET, host.InitialMoney)
		assert.True(t, host.Active)
	})

	t.Run("explicit entry fee is kept", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 20)
		assert.Equal(t, 20, room.EntryFee)
	})
}

func TestJoin(t *testing.T) {
	t.Run("appends new players in join order", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 5)
		p, err := Join(room, "p2", "Bob")
		require.NoError(t, err)

		assert.Equal(t, "p2", p.Id)
		require.Len(t, room.Players, 2)
		assert.Equal(t, "Bob", room.Players[1].Name)
	})

	t.Run("rejoin by name reactivates the existing record", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 5)
		_, err := Join(room, "p2", "Bob")
		require.NoError(t, err)
		room.PlayerById("p2").Wallet = 73
		require.NoError(t, Leave(room, "p2"))

		p, err := Join(room, "fresh-id", "Bob")
		require.NoError(t, err)

		assert.Equal(t, "p2", p.Id, "rejoin keeps the original id")
		assert.Equal(t, 73, p.Wallet, "rejoin keeps the wallet")
		assert.True(t, p.Active)
		assert.Len(t, room.Players, 2, "no duplicate roster entry")
	})

	t.Run("name matching is case sensitive", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 5)
		p, err := Join(room, "p2", "alice")
		require.NoError(t, err)
		assert.Equal(t, "p2", p.Id)
		assert.Len(t, room.Players, 2)
	})

	t.Run("new names rejected once playing, rejoin still open", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 5)
		_, err := Join(room, "p2", "Bob")
		require.NoError(t, err)
		require.NoError(t, StartGame(room))

		_, err = Join(room, "p3", "Carol")
		assert.ErrorIs(t, err, ErrRoomClosedForJoining)

		p, err := Join(room, "fresh-id", "Bob")
		require.NoError(t, err)
		assert.Equal(t, "p2", p.Id)
	})

	t.Run("rejected on empty name and closed room", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 5)
		_, err := Join(room, "p2", "")
		assert.ErrorIs(t, err, ErrEmptyName)

		require.NoError(t, CloseRoom(room))
		_, err = Join(room, "p2", "Bob")
		assert.ErrorIs(t, err, ErrRoomAlreadyClosed)
	})
}

func TestLeave(t *testing.T) {
	room := NewRoom("ABCD", "host-id", "Alice", 5)
	_, err := Join(room, "p2", "Bob")
	require.NoError(t, err)

	require.NoError(t, Leave(room, "p2"))

	p := room.PlayerById("p2")
	require.NotNil(t, p, "leaving keeps the roster record")
	assert.False(t, p.Active)

	assert.ErrorIs(t, Leave(room, "stranger"), ErrPlayerNotFound)
}

func TestStartGame(t *testing.T) {
	t.Run("collects fees into the pot and resets round state", func(t *testing.T) {
		room := testPlayingRoom(t)

		assert.Equal(t, models.StatusPlaying, room.Status)
		assert.Equal(t, 15, room.Pot)
		for _, p := range room.Players {
			assert.Equal(t, game_constants.STARTING_WALLET-room.EntryFee, p.Wallet)
		}
		assert.Equal(t, 1, room.CurrentRound)
		assert.Equal(t, 0, room.CurrentPlayerIndex)
		assert.False(t, room.CoinsDistributed)
		assert.False(t, room.PotEmpty)
		assert.False(t, room.GameEnded)
	})

	t.Run("requires at least two players", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 5)
		assert.ErrorIs(t, StartGame(room), ErrNotEnoughPlayers)
	})

	t.Run("players who cannot afford the fee are skipped", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 5)
		_, err := Join(room, "p2", "Bob")
		require.NoError(t, err)
		room.PlayerById("p2").Wallet = 3

		require.NoError(t, StartGame(room))

		assert.Equal(t, 5, room.Pot, "only the host paid")
		assert.Equal(t, 3, room.PlayerById("p2").Wallet, "broke player keeps its wallet")
	})

	t.Run("inactive players still pay the fee", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 5)
		_, err := Join(room, "p2", "Bob")
		require.NoError(t, err)
		require.NoError(t, Leave(room, "p2"))

		require.NoError(t, StartGame(room))

		assert.Equal(t, 10, room.Pot)
		assert.Equal(t, 95, room.PlayerById("p2").Wallet)
	})
}

func TestStartNewRound(t *testing.T) {
	t.Run("re-collects fees and keeps the turn position", func(t *testing.T) {
		room := testPlayingRoom(t)
		room.CoinsDistributed = true
		room.CompletedTurns = []string{"host-id", "p2"}
		room.CurrentPlayerIndex = 2
		room.PotEmpty = true
		room.Pot = 0

		require.NoError(t, StartNewRound(room))

		assert.Equal(t, 2, room.CurrentRound)
		assert.Equal(t, 15, room.Pot)
		assert.False(t, room.CoinsDistributed)
		assert.Empty(t, room.CompletedTurns)
		assert.False(t, room.PotEmpty)
		assert.Equal(t, 2, room.CurrentPlayerIndex, "turn order continues across rounds")
		assert.Equal(t, 2, room.RoundStartPlayerIndex)
	})

	t.Run("rejected while the pot still holds money", func(t *testing.T) {
		room := testPlayingRoom(t)
		assert.ErrorIs(t, StartNewRound(room), ErrPotNotEmpty)
	})

	t.Run("rejected before the game starts", func(t *testing.T) {
		room := NewRoom("ABCD", "host-id", "Alice", 5)
		assert.ErrorIs(t, StartNewRound(room), ErrGameNotStarted)
	})
}

func TestEndGame(t *testing.T) {
	room := testPlayingRoom(t)
	room.PlayerById("host-id").Wallet = 130
	room.PlayerById("p2").Wallet = 80

	require.NoError(t, EndGame(room))

	assert.Equal(t, models.StatusWaiting, room.Status)
	assert.True(t, room.GameEnded)
	assert.False(t, room.PotEmpty)
	require.Len(t, room.FinalResults, 3)

	assert.Equal(t, models.FinalResult{Name: "Alice", FinalWallet: 130, Profit: 30}, room.FinalResults[0])
	assert.Equal(t, models.FinalResult{Name: "Bob", FinalWallet: 80, Profit: -20}, room.FinalResults[1])
	assert.Equal(t, models.FinalResult{Name: "Carol", FinalWallet: 95, Profit: -5}, room.FinalResults[2])
}

func TestAddMoney(t *testing.T) {
	t.Run("host credits anyone", func(t *testing.T) {
		room := testPlayingRoom(t)
		require.NoError(t, AddMoney(room, "host-id", "p2", 40))
		assert.Equal(t, 135, room.PlayerById("p2").Wallet)
	})

	t.Run("non-host credits only itself", func(t *testing.T) {
		room := testPlayingRoom(t)
		assert.ErrorIs(t, AddMoney(room, "p2", "p3", 40), ErrSelfOnly)

		require.NoError(t, AddMoney(room, "p2", "p2", 40))
		assert.Equal(t, 135, room.PlayerById("p2").Wallet)
	})

	t.Run("rejects bad amounts and unknown targets", func(t *testing.T) {
		room := testPlayingRoom(t)
		assert.ErrorIs(t, AddMoney(room, "host-id", "p2", 0), ErrInvalidAmount)
		assert.ErrorIs(t, AddMoney(room, "host-id", "p2", -10), ErrInvalidAmount)
		assert.ErrorIs(t, AddMoney(room, "host-id", "stranger", 10), ErrPlayerNotFound)
	})
}

func TestCloseRoom(t *testing.T) {
	room := NewRoom("ABCD", "host-id", "Alice", 5)
	require.NoError(t, CloseRoom(room))
	assert.True(t, room.RoomClosed)
}
