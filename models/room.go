package models

import (
	"encoding/json"
)

type RoomStatus string

const (
	StatusWaiting RoomStatus = "waiting"
	StatusPlaying RoomStatus = "playing"
)

// Player is a participant of a room. Players are never hard-deleted:
// leaving only flips Active, so the id, hand and wallet history survive
// a rejoin under the same name.
type Player struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Wallet       int    `json:"wallet"`
	Coins        []int  `json:"coins"`
	InitialMoney int    `json:"initial_money"`
	Active       bool   `json:"active"`
}

// UnmarshalJSON applies the documented default for Active: a player record
// without the field counts as active. This is the single place where the
// default is applied; internal code reads the field directly.
func (p *Player) UnmarshalJSON(data []byte) error {
	type playerAlias Player
	aux := playerAlias{Active: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = Player(aux)
	return nil
}

// DrawResult is the transient snapshot of the last bet resolution,
// consumed by clients for the game log and draw animation.
type DrawResult struct {
	PlayerId   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	BetAmount  int    `json:"bet_amount"`
	DrawnCoin  int    `json:"drawn_coin"`
	MinCoin    int    `json:"min_coin"`
	MaxCoin    int    `json:"max_coin"`
	IsWin      bool   `json:"is_win"`
	PotEmpty   bool   `json:"pot_empty,omitempty"`
}

// FinalResult is one row of the end-of-game summary.
type FinalResult struct {
	Name        string `json:"name"`
	FinalWallet int    `json:"final_wallet"`
	Profit      int    `json:"profit"`
}

// Room is the shared document every client of a room reads and partially
// updates. The roster is an explicit ordered slice (join order); all
// "current player" logic indexes into it. Version is the compare-and-set
// counter bumped by the store on every successful write.
type Room struct {
	Code                  string        `json:"code"`
	HostId                string        `json:"host_id"`
	HostName              string        `json:"host_name"`
	Status                RoomStatus    `json:"status"`
	EntryFee              int           `json:"entry_fee"`
	Pot                   int           `json:"pot"`
	CurrentRound          int           `json:"current_round"`
	CurrentPlayerIndex    int           `json:"current_player_index"`
	RoundStartPlayerIndex int           `json:"round_start_player_index"`
	CoinsDistributed      bool          `json:"coins_distributed"`
	CompletedTurns        []string      `json:"completed_turns"`
	RemainingCoins        []int         `json:"remaining_coins"`
	PotEmpty              bool          `json:"pot_empty"`
	GameEnded             bool          `json:"game_ended"`
	RoomClosed            bool          `json:"room_closed"`
	LastDrawResult        *DrawResult   `json:"last_draw_result,omitempty"`
	FinalResults          []FinalResult `json:"final_results,omitempty"`
	Players               []*Player     `json:"players"`
	Version               int64         `json:"version"`
}

// Normalize applies field defaults and re-normalizes the turn index against
// the current roster length. It runs once at the store boundary, right after
// decoding, so the game logic never re-checks shape.
func (r *Room) Normalize() {
	if r.Status == "" {
		r.Status = StatusWaiting
	}
	if r.CurrentRound < 1 {
		r.CurrentRound = 1
	}
	if r.CompletedTurns == nil {
		r.CompletedTurns = []string{}
	}
	if r.RemainingCoins == nil {
		r.RemainingCoins = []int{}
	}
	if r.Players == nil {
		r.Players = []*Player{}
	}
	if n := len(r.Players); n > 0 {
		r.CurrentPlayerIndex = ((r.CurrentPlayerIndex % n) + n) % n
		r.RoundStartPlayerIndex = ((r.RoundStartPlayerIndex % n) + n) % n
	} else {
		r.CurrentPlayerIndex = 0
		r.RoundStartPlayerIndex = 0
	}
}

// PlayerIndex returns the roster position of a player id, or -1.
func (r *Room) PlayerIndex(playerId string) int {
	for i, p := range r.Players {
		if p.Id == playerId {
			return i
		}
	}
	return -1
}

// PlayerById returns the player with the given id, or nil.
func (r *Room) PlayerById(playerId string) *Player {
	if i := r.PlayerIndex(playerId); i >= 0 {
		return r.Players[i]
	}
	return nil
}

// PlayerByName does the case-sensitive linear scan used by the rejoin
// contract: identity is matched by display name, not id.
func (r *Room) PlayerByName(name string) *Player {
	for _, p := range r.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// CurrentPlayer re-derives the player holding the turn at the moment of use
// instead of trusting a cached index against a possibly changed roster.
func (r *Room) CurrentPlayer() *Player {
	n := len(r.Players)
	if n == 0 {
		return nil
	}
	return r.Players[((r.CurrentPlayerIndex%n)+n)%n]
}

// HasCompletedTurn reports membership in completedTurns.
func (r *Room) HasCompletedTurn(playerId string) bool {
	for _, id := range r.CompletedTurns {
		if id == playerId {
			return true
		}
	}
	return false
}

// MarkTurnCompleted appends the player to completedTurns, idempotently.
func (r *Room) MarkTurnCompleted(playerId string) {
	if !r.HasCompletedTurn(playerId) {
		r.CompletedTurns = append(r.CompletedTurns, playerId)
	}
}

// Clone returns a deep copy of the room.
func (r *Room) Clone() *Room {
	cp := *r
	cp.CompletedTurns = append([]string{}, r.CompletedTurns...)
	cp.RemainingCoins = append([]int{}, r.RemainingCoins...)
	if r.LastDrawResult != nil {
		dr := *r.LastDrawResult
		cp.LastDrawResult = &dr
	}
	if r.FinalResults != nil {
		cp.FinalResults = append([]FinalResult{}, r.FinalResults...)
	}
	cp.Players = make([]*Player, len(r.Players))
	for i, p := range r.Players {
		pc := *p
		pc.Coins = append([]int{}, p.Coins...)
		cp.Players[i] = &pc
	}
	return &cp
}

// MaskedFor returns a copy of the room with hands hidden from the given
// viewer. A hand is visible to its owner, and to everyone once its owner
// appears in completedTurns. An empty viewerId masks every undisclosed hand
// (the public/broadcast view). Masked hands become empty slices so the wire
// shape is identical to an undealt hand.
func (r *Room) MaskedFor(viewerId string) *Room {
	cp := r.Clone()
	for _, p := range cp.Players {
		if p.Id == viewerId || cp.HasCompletedTurn(p.Id) {
			continue
		}
		p.Coins = []int{}
	}
	return cp
}
