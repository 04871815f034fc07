package controllers

import (
	"net/http"

	"centercoin/models/postgres"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Archived results of finished games in a room
// @Description Returns every game record written for a room code, newest first
// @Tags history
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {array} postgres.GameRecord
// @Failure 500 {object} object{error=string}
// @Router /games/{room_code} [get]
func GetGameHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := c.Param("room_code")

		var records []postgres.GameRecord
		result := db.Preload("PlayerResults").
			Where("room_code = ?", roomCode).
			Order("ended_at DESC").
			Find(&records)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error reading game history"})
			return
		}

		games := make([]gin.H, len(records))
		for i, record := range records {
			players := make([]gin.H, len(record.PlayerResults))
			for j, pr := range record.PlayerResults {
				players[j] = gin.H{
					"player_name":  pr.PlayerName,
					"final_wallet": pr.FinalWallet,
					"profit":       pr.Profit,
				}
			}
			games[i] = gin.H{
				"room_code":     record.RoomCode,
				"host_name":     record.HostName,
				"entry_fee":     record.EntryFee,
				"rounds_played": record.RoundsPlayed,
				"ended_at":      record.EndedAt,
				"players":       players,
			}
		}

		c.JSON(http.StatusOK, games)
	}
}
