package game

import (
	"math/rand"
	"testing"

	"centercoin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bettingRoom hand-arranges a dealt round so each draw is forced: a
// single-coin pile makes the drawn value deterministic regardless of seed.
func bettingRoom(t *testing.T, pile []int) *models.Room {
	t.Helper()
	room := testPlayingRoom(t)
	room.CoinsDistributed = true
	room.PlayerById("host-id").Coins = []int{10, 50}
	room.PlayerById("p2").Coins = []int{30, 20}
	room.PlayerById("p3").Coins = []int{1, 90}
	room.RemainingCoins = append([]int{}, pile...)
	return room
}

func TestResolveBet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("win moves the bet from pot to wallet", func(t *testing.T) {
		room := bettingRoom(t, []int{25})
		player := room.PlayerById("host-id")
		potBefore, walletBefore := room.Pot, player.Wallet

		result, err := ResolveBet(room, "host-id", 10, rng)
		require.NoError(t, err)

		assert.True(t, result.IsWin)
		assert.Equal(t, 25, result.DrawnCoin)
		assert.Equal(t, 10, result.MinCoin)
		assert.Equal(t, 50, result.MaxCoin)
		assert.Equal(t, potBefore-10, room.Pot)
		assert.Equal(t, walletBefore+10, player.Wallet)
		assert.Empty(t, room.RemainingCoins, "drawn coin leaves the pile")
		assert.True(t, room.HasCompletedTurn("host-id"))
		assert.Equal(t, result, room.LastDrawResult)
	})

	t.Run("loss moves the bet from wallet to pot", func(t *testing.T) {
		room := bettingRoom(t, []int{60})
		player := room.PlayerById("host-id")
		potBefore, walletBefore := room.Pot, player.Wallet

		result, err := ResolveBet(room, "host-id", 10, rng)
		require.NoError(t, err)

		assert.False(t, result.IsWin)
		assert.Equal(t, potBefore+10, room.Pot)
		assert.Equal(t, walletBefore-10, player.Wallet)
	})

	t.Run("pot plus wallet is conserved either way", func(t *testing.T) {
		for _, pile := range [][]int{{25}, {60}} {
			room := bettingRoom(t, pile)
			player := room.PlayerById("host-id")
			total := room.Pot + player.Wallet

			_, err := ResolveBet(room, "host-id", 7, rng)
			require.NoError(t, err)
			assert.Equal(t, total, room.Pot+player.Wallet)
		}
	})

	t.Run("a draw on either bound loses", func(t *testing.T) {
		for _, bound := range []int{10, 50} {
			room := bettingRoom(t, []int{bound})
			result, err := ResolveBet(room, "host-id", 5, rng)
			require.NoError(t, err)
			assert.False(t, result.IsWin, "draw %d equals a held coin and must lose", bound)
		}
	})

	t.Run("held coin order does not matter", func(t *testing.T) {
		room := bettingRoom(t, []int{25})
		room.CurrentPlayerIndex = 1 // p2 holds {30, 20}

		result, err := ResolveBet(room, "p2", 5, rng)
		require.NoError(t, err)
		assert.True(t, result.IsWin)
		assert.Equal(t, 20, result.MinCoin)
		assert.Equal(t, 30, result.MaxCoin)
	})

	t.Run("winning the whole pot latches potEmpty", func(t *testing.T) {
		room := bettingRoom(t, []int{25})

		result, err := ResolveBet(room, "host-id", room.Pot, rng)
		require.NoError(t, err)

		assert.True(t, result.IsWin)
		assert.True(t, result.PotEmpty)
		assert.True(t, room.PotEmpty)
		assert.Equal(t, 0, room.Pot)
	})

	t.Run("failed preconditions leave the room untouched", func(t *testing.T) {
		cases := []struct {
			name     string
			mutate   func(r *models.Room)
			playerId string
			amount   int
			want     error
		}{
			{"game not started", func(r *models.Room) { r.Status = models.StatusWaiting }, "host-id", 5, ErrGameNotStarted},
			{"coins not distributed", func(r *models.Room) { r.CoinsDistributed = false }, "host-id", 5, ErrCoinsNotDistributed},
			{"unknown player", nil, "stranger", 5, ErrPlayerNotFound},
			{"not your turn", nil, "p2", 5, ErrNotYourTurn},
			{"zero amount", nil, "host-id", 0, ErrInvalidAmount},
			{"negative amount", nil, "host-id", -3, ErrInvalidAmount},
			{"exceeds pot", nil, "host-id", 16, ErrExceedsPot},
			{"insufficient funds", func(r *models.Room) { r.Pot = 500 }, "host-id", 200, ErrInsufficientFunds},
			{"empty draw pile", func(r *models.Room) { r.RemainingCoins = []int{} }, "host-id", 5, ErrEmptyDrawPile},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				room := bettingRoom(t, []int{25})
				if tc.mutate != nil {
					tc.mutate(room)
				}
				before := room.Clone()

				result, err := ResolveBet(room, tc.playerId, tc.amount, rng)
				assert.ErrorIs(t, err, tc.want)
				assert.Nil(t, result)
				assert.Equal(t, before, room)
			})
		}
	})

	t.Run("turn completion survives a repeated bet attempt", func(t *testing.T) {
		room := bettingRoom(t, []int{25, 60})
		_, err := ResolveBet(room, "host-id", 5, rng)
		require.NoError(t, err)
		_, err = ResolveBet(room, "host-id", 5, rng)
		require.NoError(t, err)

		count := 0
		for _, id := range room.CompletedTurns {
			if id == "host-id" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}
