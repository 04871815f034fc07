package game

import (
	"math/rand"

	game_constants "centercoin/constants/game"
	"centercoin/models"
)

// newCoinDeck builds the canonical ordered deck [1..90].
func newCoinDeck() []int {
	deck := make([]int, game_constants.DECK_SIZE)
	for i := range deck {
		deck[i] = i + 1
	}
	return deck
}

// shuffleDeck runs a Fisher–Yates shuffle in place. rng.Intn draws uniformly
// over the shrinking suffix, so every permutation is equally likely.
func shuffleDeck(deck []int, rng *rand.Rand) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// Distribute shuffles a fresh deck and deals two coins to every roster
// member (the full roster, active or not), round-robin: all first coins in
// roster order, then all second coins. The undealt remainder becomes the
// draw pile. startPlayerId picks whose turn opens the round; an unknown id
// falls back to index 0.
//
// Only valid while the round is waiting for a deal: the game must have
// started and the previous deal must have been consumed by a round change.
func Distribute(room *models.Room, startPlayerId string, rng *rand.Rand) error {
	if room.Status != models.StatusPlaying {
		return ErrGameNotStarted
	}
	if room.CoinsDistributed {
		return ErrCoinsAlreadyDealt
	}

	players := room.Players
	dealt := len(players) * game_constants.COINS_PER_PLAYER
	if dealt > game_constants.DECK_SIZE {
		return ErrTooManyPlayers
	}

	deck := newCoinDeck()
	shuffleDeck(deck, rng)
	for i, p := range players {
		p.Coins = []int{deck[i], deck[i+len(players)]}
	}
	room.RemainingCoins = append([]int{}, deck[dealt:]...)

	startIndex := room.PlayerIndex(startPlayerId)
	if startIndex < 0 {
		startIndex = 0
	}
	room.RoundStartPlayerIndex = startIndex
	room.CurrentPlayerIndex = startIndex
	room.CompletedTurns = []string{}
	room.CoinsDistributed = true
	return nil
}
