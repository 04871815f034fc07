package sync

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"centercoin/models"
)

// SyncManager archives finished games from the room store to PostgreSQL.
type SyncManager struct {
	db *sql.DB
}

// NewSyncManager creates a new instance of the synchronization manager.
func NewSyncManager(db *sql.DB) *SyncManager {
	return &SyncManager{db: db}
}

// ArchiveGameResult writes one game_records row plus one player_results row
// per player from the final room snapshot. Called when the host ends a
// game, after the summary has been published to the room.
func (sm *SyncManager) ArchiveGameResult(room *models.Room) error {
	if len(room.FinalResults) == 0 {
		return fmt.Errorf("room %s has no final results to archive", room.Code)
	}

	resultsJSON, err := json.Marshal(room.FinalResults)
	if err != nil {
		return fmt.Errorf("error marshaling final results: %v", err)
	}

	tx, err := sm.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	recordQuery := `
		INSERT INTO game_records (room_code, host_name, entry_fee, rounds_played, results, ended_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`

	var recordID int64
	err = tx.QueryRow(recordQuery,
		room.Code,
		room.HostName,
		room.EntryFee,
		room.CurrentRound,
		resultsJSON).Scan(&recordID)
	if err != nil {
		return fmt.Errorf("error inserting game record: %v", err)
	}

	playerQuery := `
		INSERT INTO player_results (game_record_id, player_name, final_wallet, profit)
		VALUES ($1, $2, $3, $4)
	`

	for _, result := range room.FinalResults {
		_, err = tx.Exec(playerQuery,
			recordID,
			result.Name,
			result.FinalWallet,
			result.Profit)
		if err != nil {
			return fmt.Errorf("error inserting player result for %s: %v", result.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing game archive: %v", err)
	}

	return nil
}
