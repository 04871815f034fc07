package game

import (
	game_constants "centercoin/constants/game"
	"centercoin/models"
)

// NewRoom builds the initial room document with its creator as host-player.
func NewRoom(code, hostId, hostName string, entryFee int) *models.Room {
	if entryFee <= 0 {
		entryFee = game_constants.DEFAULT_ENTRY_FEE
	}
	room := &models.Room{
		Code:           code,
		HostId:         hostId,
		HostName:       hostName,
		Status:         models.StatusWaiting,
		EntryFee:       entryFee,
		Pot:            0,
		CurrentRound:   1,
		CompletedTurns: []string{},
		RemainingCoins: []int{},
		Players:        []*models.Player{newPlayer(hostId, hostName)},
	}
	return room
}

func newPlayer(id, name string) *models.Player {
	return &models.Player{
		Id:           id,
		Name:         name,
		Wallet:       game_constants.STARTING_WALLET,
		Coins:        []int{},
		InitialMoney: game_constants.STARTING_WALLET,
		Active:       true,
	}
}

// Join adds a player to the room, or reactivates an existing one. Identity
// is matched by name: rejoining under a known name restores that player's
// id, wallet and hand instead of creating a duplicate. Once the game is
// playing, only the rejoin path is open.
func Join(room *models.Room, playerId, name string) (*models.Player, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if room.RoomClosed {
		return nil, ErrRoomAlreadyClosed
	}
	if existing := room.PlayerByName(name); existing != nil {
		existing.Active = true
		return existing, nil
	}
	if room.Status == models.StatusPlaying {
		return nil, ErrRoomClosedForJoining
	}
	player := newPlayer(playerId, name)
	room.Players = append(room.Players, player)
	return player, nil
}

// Leave soft-removes a player: the record stays (wallet, coins, roster
// position included), only Active flips. A stale current-player index is
// left to the turn coordinator's re-normalization.
func Leave(room *models.Room, playerId string) error {
	player := room.PlayerById(playerId)
	if player == nil {
		return ErrPlayerNotFound
	}
	player.Active = false
	return nil
}

// collectEntryFees debits the entry fee from every roster member that can
// afford it and returns the sum. Players with insufficient funds are
// skipped silently: no fee, no pot contribution, still participants. The
// full roster is charged, inactive players included — source behavior kept
// deliberately.
func collectEntryFees(room *models.Room) int {
	pot := 0
	for _, p := range room.Players {
		if p.Wallet >= room.EntryFee {
			p.Wallet -= room.EntryFee
			pot += room.EntryFee
		}
	}
	return pot
}

// StartGame collects entry fees and moves the room into play, resetting all
// round and turn state to its initial values.
func StartGame(room *models.Room) error {
	if len(room.Players) < game_constants.MIN_PLAYERS_TO_START {
		return ErrNotEnoughPlayers
	}
	room.Pot = collectEntryFees(room)
	room.Status = models.StatusPlaying
	room.CurrentRound = 1
	room.CurrentPlayerIndex = 0
	room.RoundStartPlayerIndex = 0
	room.CoinsDistributed = false
	room.CompletedTurns = []string{}
	room.PotEmpty = false
	room.GameEnded = false
	room.RoomClosed = false
	return nil
}

// StartNewRound re-collects entry fees after the pot emptied and arms the
// next deal. The turn index is deliberately left where the pot-emptying bet
// happened: turn order continues across rounds.
func StartNewRound(room *models.Room) error {
	if room.Status != models.StatusPlaying {
		return ErrGameNotStarted
	}
	if !room.PotEmpty {
		return ErrPotNotEmpty
	}
	room.Pot = collectEntryFees(room)
	room.CurrentRound++
	room.CoinsDistributed = false
	room.CompletedTurns = []string{}
	room.PotEmpty = false
	room.RoundStartPlayerIndex = room.CurrentPlayerIndex
	return nil
}

// EndGame computes the per-player profit summary, stores it for every
// client to render and puts the room back into waiting.
func EndGame(room *models.Room) error {
	results := make([]models.FinalResult, len(room.Players))
	for i, p := range room.Players {
		results[i] = models.FinalResult{
			Name:        p.Name,
			FinalWallet: p.Wallet,
			Profit:      p.Wallet - p.InitialMoney,
		}
	}
	room.FinalResults = results
	room.Status = models.StatusWaiting
	room.GameEnded = true
	room.PotEmpty = false
	return nil
}

// AddMoney credits a player's wallet outside of betting. The host can top
// up anyone; everyone else only themselves.
func AddMoney(room *models.Room, actorId, targetId string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if actorId != room.HostId && actorId != targetId {
		return ErrSelfOnly
	}
	target := room.PlayerById(targetId)
	if target == nil {
		return ErrPlayerNotFound
	}
	target.Wallet += amount
	return nil
}

// CloseRoom is the host's terminal action after the end-game summary:
// clients observing the flag drop their subscription and leave.
func CloseRoom(room *models.Room) error {
	room.RoomClosed = true
	return nil
}
