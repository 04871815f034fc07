package game

import (
	"math/rand"

	"centercoin/models"
)

// ResolveBet validates and resolves a single bet for the current player:
// a coin is drawn uniformly from the draw pile (without replacement) and the
// bet wins iff the drawn value falls strictly between the player's two held
// coins. A draw equal to either bound loses.
//
// This is the only place pot and wallets move during active play, and the
// move is symmetric: pot + actor wallet is conserved by every resolution.
// Any failed precondition returns before the room is touched.
func ResolveBet(room *models.Room, playerId string, amount int, rng *rand.Rand) (*models.DrawResult, error) {
	if room.Status != models.StatusPlaying {
		return nil, ErrGameNotStarted
	}
	if !room.CoinsDistributed {
		return nil, ErrCoinsNotDistributed
	}
	player := room.PlayerById(playerId)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	if !IsPlayersTurn(room, playerId) {
		return nil, ErrNotYourTurn
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount > room.Pot {
		return nil, ErrExceedsPot
	}
	if amount > player.Wallet {
		return nil, ErrInsufficientFunds
	}
	if len(room.RemainingCoins) == 0 {
		return nil, ErrEmptyDrawPile
	}

	drawIndex := rng.Intn(len(room.RemainingCoins))
	drawnCoin := room.RemainingCoins[drawIndex]
	room.RemainingCoins = append(room.RemainingCoins[:drawIndex], room.RemainingCoins[drawIndex+1:]...)

	minCoin, maxCoin := player.Coins[0], player.Coins[1]
	if minCoin > maxCoin {
		minCoin, maxCoin = maxCoin, minCoin
	}
	isWin := drawnCoin > minCoin && drawnCoin < maxCoin

	if isWin {
		room.Pot -= amount
		player.Wallet += amount
	} else {
		room.Pot += amount
		player.Wallet -= amount
	}

	result := &models.DrawResult{
		PlayerId:   playerId,
		PlayerName: player.Name,
		BetAmount:  amount,
		DrawnCoin:  drawnCoin,
		MinCoin:    minCoin,
		MaxCoin:    maxCoin,
		IsWin:      isWin,
	}

	if room.Pot == 0 {
		room.PotEmpty = true
		result.PotEmpty = true
	}

	room.MarkTurnCompleted(playerId)
	room.LastDrawResult = result
	return result, nil
}
