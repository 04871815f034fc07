package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'GameRecord' archives one finished Center Coin game: written when the
 * host ends the game, one row per game plus one PlayerResult per player.
 */
type GameRecord struct {
	ID           uint           `gorm:"primaryKey"`
	RoomCode     string         `gorm:"size:8;not null;index:idx_game_records_room"`
	HostName     string         `gorm:"size:50"`
	EntryFee     int            `gorm:"default:0"`
	RoundsPlayed int            `gorm:"default:0"`
	Results      datatypes.JSON // full final-results payload as shown to clients
	EndedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP"`

	PlayerResults []*PlayerResult `gorm:"foreignKey:GameRecordID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// PlayerResult is one player's final standing within an archived game.
type PlayerResult struct {
	ID           uint   `gorm:"primaryKey"`
	GameRecordID uint   `gorm:"not null;index:idx_player_results_game"`
	PlayerName   string `gorm:"size:50;not null"`
	FinalWallet  int    `gorm:"default:0"`
	Profit       int    `gorm:"default:0"`
}
