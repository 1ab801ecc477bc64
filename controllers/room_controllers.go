package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/hotel-booking-app/apperrors"
	"github.com/yeremiapane/hotel-booking-app/models"
	"github.com/yeremiapane/hotel-booking-app/repositories"
	"github.com/yeremiapane/hotel-booking-app/utils"
)

type RoomController struct {
	Rooms repositories.RoomRepository
}

func NewRoomController(rooms repositories.RoomRepository) *RoomController {
	return &RoomController{Rooms: rooms}
}

// GetAllRooms -> list kamar paginated, terbaru dulu.
// Query: page, per_page (default 10).
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	rooms, total, err := rc.Rooms.List(page, perPage)
	if err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of rooms", gin.H{
		"rooms":      rooms,
		"pagination": utils.NewPageMeta(page, perPage, total),
	})
}

// CreateRoom -> tambah kamar baru (aksi administratif).
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req struct {
		Number      string `json:"number" binding:"required,max=50"`
		Type        string `json:"type" binding:"required,max=50"`
		IsAvailable *bool  `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	taken, err := rc.Rooms.NumberTaken(req.Number, 0)
	if err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}
	if taken {
		utils.RespondError(c, http.StatusUnprocessableEntity,
			apperrors.NewValidation("number", "has already been taken"))
		return
	}

	room := models.Room{
		Number:      req.Number,
		Type:        req.Type,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	if err := rc.Rooms.Create(&room); err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}

	utils.InfoLogger.Printf("New room created: %s (type=%s, available=%t)",
		room.Number, room.Type, room.IsAvailable)
	utils.RespondJSON(c, http.StatusCreated, "Room created successfully", room)
}

// GetRoomByID -> detail satu kamar.
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, err := parseID(c.Param("room_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, apperrors.ErrNotFound)
		return
	}

	room, err := rc.Rooms.FindByID(id)
	if err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room detail", room)
}

// UpdateRoom -> ubah number/type/is_available. Flag availability
// dikelola manual dari sini, tidak pernah di-flip oleh booking.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, err := parseID(c.Param("room_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, apperrors.ErrNotFound)
		return
	}

	room, err := rc.Rooms.FindByID(id)
	if err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}

	var req struct {
		Number      *string `json:"number"`
		Type        *string `json:"type"`
		IsAvailable *bool   `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if req.Number != nil {
		if *req.Number == "" || len(*req.Number) > 50 {
			utils.RespondError(c, http.StatusUnprocessableEntity,
				apperrors.NewValidation("number", "must be between 1 and 50 characters"))
			return
		}
		taken, err := rc.Rooms.NumberTaken(*req.Number, room.ID)
		if err != nil {
			utils.RespondError(c, apperrors.ErrorStatus(err), err)
			return
		}
		if taken {
			utils.RespondError(c, http.StatusUnprocessableEntity,
				apperrors.NewValidation("number", "has already been taken"))
			return
		}
		room.Number = *req.Number
	}
	if req.Type != nil {
		if *req.Type == "" || len(*req.Type) > 50 {
			utils.RespondError(c, http.StatusUnprocessableEntity,
				apperrors.NewValidation("type", "must be between 1 and 50 characters"))
			return
		}
		room.Type = *req.Type
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	if err := rc.Rooms.Update(room); err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room updated successfully", room)
}

// DeleteRoom -> soft delete kamar.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, err := parseID(c.Param("room_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, apperrors.ErrNotFound)
		return
	}

	if err := rc.Rooms.SoftDelete(id); err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}
	utils.InfoLogger.Printf("Room %d deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Room deleted successfully", gin.H{
		"id": id,
	})
}
