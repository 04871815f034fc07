package controllers

import (
	"log"
	"net/http"

	"centercoin/middleware"
	"centercoin/services/game"

	"github.com/gin-gonic/gin"
)

type createRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	EntryFee int    `json:"entry_fee"`
}

type joinRoomRequest struct {
	Name string `json:"name" binding:"required"`
}

// @Summary Creates a new room
// @Description Allocates a room with the caller as host and returns its code, the host player id and a room token
// @Tags room
// @Accept json
// @Produce json
// @Success 200 {object} object{room_code=string,player_id=string,token=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /rooms [post]
func CreateRoom(gc *game.GameController) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player name is required"})
			return
		}

		room, playerId, err := gc.CreateRoom(c.Request.Context(), req.Name, req.EntryFee)
		if err != nil {
			log.Printf("[ROOM-CREATE-ERROR] %v", err)
			abortWithGameError(c, err)
			return
		}

		token, err := middleware.GenerateRoomToken(room.Code, playerId, req.Name)
		if err != nil {
			log.Printf("[ROOM-CREATE-ERROR] Token generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"room_code": room.Code,
			"player_id": playerId,
			"entry_fee": room.EntryFee,
			"token":     token,
		})
	}
}

// @Summary Joins or rejoins a room
// @Description Adds the caller to the room, or reactivates the existing player with the same name
// @Tags room
// @Accept json
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {object} object{room_code=string,player_id=string,token=string,rejoined=boolean}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /rooms/{room_code}/join [post]
func JoinRoom(gc *game.GameController) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := c.Param("room_code")

		var req joinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player name is required"})
			return
		}

		room, playerId, err := gc.JoinRoom(c.Request.Context(), roomCode, req.Name)
		if err != nil {
			log.Printf("[ROOM-JOIN-ERROR] Room %s, player %s: %v", roomCode, req.Name, err)
			abortWithGameError(c, err)
			return
		}

		token, err := middleware.GenerateRoomToken(room.Code, playerId, req.Name)
		if err != nil {
			log.Printf("[ROOM-JOIN-ERROR] Token generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"room_code": room.Code,
			"player_id": playerId,
			"is_host":   room.HostId == playerId,
			"token":     token,
		})
	}
}

// @Summary Public snapshot of a room
// @Description Returns the room document with undisclosed hands masked
// @Tags room
// @Produce json
// @Param room_code path string true "Room code"
// @Success 200 {object} models.Room
// @Failure 404 {object} object{error=string}
// @Router /rooms/{room_code} [get]
func GetRoomInfo(gc *game.GameController) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := c.Param("room_code")

		room, err := gc.Room(c.Request.Context(), roomCode)
		if err != nil {
			abortWithGameError(c, err)
			return
		}

		c.JSON(http.StatusOK, room.MaskedFor(""))
	}
}

// @Summary Leaves a room
// @Description Marks the authenticated player inactive; its record, wallet and hand are preserved for rejoin
// @Tags room
// @Produce json
// @Param Authorization header string true "Bearer room token"
// @Param room_code path string true "Room code"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /auth/rooms/{room_code}/leave [post]
// @Security ApiKeyAuth
func LeaveRoom(gc *game.GameController) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomCode := c.Param("room_code")

		claims, ok := middleware.RoomClaimsFrom(c)
		if !ok || claims.RoomCode != roomCode {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token does not match this room"})
			return
		}

		if err := gc.LeaveRoom(c.Request.Context(), roomCode, claims.PlayerId); err != nil {
			log.Printf("[ROOM-LEAVE-ERROR] Room %s, player %s: %v", roomCode, claims.PlayerId, err)
			abortWithGameError(c, err)
			return
		}

		log.Printf("[ROOM-LEAVE] Player %s left room %s", claims.PlayerId, roomCode)
		c.JSON(http.StatusOK, gin.H{"message": "left room successfully"})
	}
}

// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
