package sync

import (
	"regexp"
	"testing"

	"centercoin/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finishedRoom() *models.Room {
	return &models.Room{
		Code:         "ABCD",
		HostName:     "Alice",
		EntryFee:     5,
		CurrentRound: 3,
		GameEnded:    true,
		FinalResults: []models.FinalResult{
			{Name: "Alice", FinalWallet: 130, Profit: 30},
			{Name: "Bob", FinalWallet: 70, Profit: -30},
		},
	}
}

func TestArchiveGameResult(t *testing.T) {
	t.Run("writes one record row and one row per player", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		room := finishedRoom()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO game_records")).
			WithArgs(room.Code, room.HostName, room.EntryFee, room.CurrentRound, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO player_results")).
			WithArgs(int64(7), "Alice", 130, 30).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO player_results")).
			WithArgs(int64(7), "Bob", 70, -30).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		sm := NewSyncManager(db)
		require.NoError(t, sm.ArchiveGameResult(room))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when a player insert fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		room := finishedRoom()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO game_records")).
			WithArgs(room.Code, room.HostName, room.EntryFee, room.CurrentRound, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO player_results")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		sm := NewSyncManager(db)
		assert.Error(t, sm.ArchiveGameResult(room))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuses a room without final results", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		sm := NewSyncManager(db)
		assert.Error(t, sm.ArchiveGameResult(&models.Room{Code: "ABCD"}))
	})
}
