package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/hotel-booking-app/apperrors"
	"github.com/yeremiapane/hotel-booking-app/models"
	"github.com/yeremiapane/hotel-booking-app/services"
	"github.com/yeremiapane/hotel-booking-app/utils"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

// GetAllBookings -> list booking paginated (10/halaman, terbaru dulu)
// dengan room ter-embed.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	bookings, total, err := bc.Service.List(page, utils.DefaultPerPage)
	if err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bookings", gin.H{
		"bookings":   bookings,
		"pagination": utils.NewPageMeta(page, utils.DefaultPerPage, total),
	})
}

// CreateBooking -> admission + simpan booking baru (status pending).
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req struct {
		GuestName    string `json:"guest_name" binding:"required"`
		RoomID       uint   `json:"room_id" binding:"required"`
		CheckInDate  string `json:"check_in_date" binding:"required"`
		CheckOutDate string `json:"check_out_date" binding:"required"`
		PromoCode    string `json:"promo_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	checkIn, err := models.ParseDate(req.CheckInDate)
	if err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity,
			apperrors.NewValidation("check_in_date", "must be a valid date (YYYY-MM-DD)"))
		return
	}
	checkOut, err := models.ParseDate(req.CheckOutDate)
	if err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity,
			apperrors.NewValidation("check_out_date", "must be a valid date (YYYY-MM-DD)"))
		return
	}

	booking, err := bc.Service.Create(services.CreateBookingInput{
		GuestName:    req.GuestName,
		RoomID:       req.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		PromoCode:    req.PromoCode,
	})
	if err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Booking created", booking)
}

// GetBookingByID -> detail 1 booking beserta room-nya.
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, err := parseID(c.Param("booking_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, apperrors.ErrNotFound)
		return
	}

	booking, err := bc.Service.Get(id)
	if err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking detail", booking)
}

// UpdateBooking -> patch allow-listed; field yang dikirim divalidasi
// ulang satu per satu.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, err := parseID(c.Param("booking_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, apperrors.ErrNotFound)
		return
	}

	var req struct {
		GuestName    *string `json:"guest_name"`
		CheckInDate  *string `json:"check_in_date"`
		CheckOutDate *string `json:"check_out_date"`
		Status       *string `json:"status"`
		PromoCode    *string `json:"promo_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	patch := services.UpdateBookingPatch{
		GuestName: req.GuestName,
		Status:    req.Status,
		PromoCode: req.PromoCode,
	}
	if req.CheckInDate != nil {
		d, err := models.ParseDate(*req.CheckInDate)
		if err != nil {
			utils.RespondError(c, http.StatusUnprocessableEntity,
				apperrors.NewValidation("check_in_date", "must be a valid date (YYYY-MM-DD)"))
			return
		}
		patch.CheckInDate = &d
	}
	if req.CheckOutDate != nil {
		d, err := models.ParseDate(*req.CheckOutDate)
		if err != nil {
			utils.RespondError(c, http.StatusUnprocessableEntity,
				apperrors.NewValidation("check_out_date", "must be a valid date (YYYY-MM-DD)"))
			return
		}
		patch.CheckOutDate = &d
	}

	booking, err := bc.Service.Update(id, patch)
	if err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking updated", booking)
}

// DeleteBooking -> soft delete; delete kedua menghasilkan 404.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := parseID(c.Param("booking_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, apperrors.ErrNotFound)
		return
	}

	if err := bc.Service.Delete(id); err != nil {
		utils.RespondError(c, apperrors.ErrorStatus(err), err)
		return
	}
	utils.InfoLogger.Printf("Booking %d deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Booking deleted", gin.H{
		"id": id,
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
