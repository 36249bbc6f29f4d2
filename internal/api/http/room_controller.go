package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkroom/backend/internal/api/http/converter"
	"github.com/checkroom/backend/internal/repository"
	"github.com/checkroom/backend/internal/service"
)

type RoomController struct {
	rooms service.RoomInteractor
}

func NewRoomController(rooms service.RoomInteractor) *RoomController {
	return &RoomController{rooms: rooms}
}

func (c *RoomController) CreateRoom(ctx *gin.Context) {
	creatorID, ok := userIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	type CreateRoomRequest struct {
		Emoji string `json:"emoji" binding:"required"`
		Name  string `json:"name" binding:"required"`
	}
	var req CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	room, err := c.rooms.CreateRoom(ctx.Request.Context(), creatorID, req.Emoji, req.Name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"room": converter.RoomToApi(room)})
}

func (c *RoomController) SetApproval(ctx *gin.Context) {
	roomID, ok := int64Query(ctx, "room_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	type CheckRoomRequest struct {
		IsApproved *bool `json:"is_approved" binding:"required"`
	}
	var req CheckRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := c.rooms.SetApproval(ctx.Request.Context(), roomID, *req.IsApproved); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrRoomNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"room_id": roomID, "is_approved": *req.IsApproved})
}

func (c *RoomController) GetRoomDetail(ctx *gin.Context) {
	roomID, ok := int64Query(ctx, "room_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	detail, err := c.rooms.RoomDetail(ctx.Request.Context(), roomID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrRoomNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

func (c *RoomController) ListRooms(ctx *gin.Context) {
	approved, ok := boolQuery(ctx, "is_approved")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_approved filter"})
		return
	}

	rooms, err := c.rooms.ListRooms(ctx.Request.Context(), approved)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, converter.RoomsToApi(rooms))
}

func (c *RoomController) ListMyRooms(ctx *gin.Context) {
	userID, ok := int64Query(ctx, "user_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	rooms, err := c.rooms.ListJoinedRooms(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, converter.RoomsToSummaries(rooms))
}
