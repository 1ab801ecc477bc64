package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/hotel-booking-app/apperrors"
	"github.com/yeremiapane/hotel-booking-app/models"
	"github.com/yeremiapane/hotel-booking-app/utils"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorage("find booking", err)
	}
	return &booking, nil
}

// List mengembalikan halaman booking (terbaru lebih dulu) dengan Room ter-embed.
func (r *bookingRepository) List(page, perPage int) ([]models.Booking, int64, error) {
	var bookings []models.Booking
	var total int64

	if err := r.db.Model(&models.Booking{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewStorage("count bookings", err)
	}
	err := r.db.Preload("Room").
		Order("created_at DESC, id DESC").
		Scopes(utils.Paginate(page, perPage)).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, apperrors.NewStorage("list bookings", err)
	}
	return bookings, total, nil
}

func (r *bookingRepository) Create(booking *models.Booking) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(booking).Error
	})
	if err != nil {
		return apperrors.NewStorage("create booking", err)
	}
	return nil
}

func (r *bookingRepository) Update(booking *models.Booking) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(booking).Error
	})
	if err != nil {
		return apperrors.NewStorage("update booking", err)
	}
	return nil
}

func (r *bookingRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return apperrors.NewStorage("delete booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ExistsOverlapping memeriksa booking non-deleted di kamar yang sama
// dengan interval yang bertabrakan. Perbandingan sengaja inklusif di
// kedua ujung: checkout yang menyentuh checkin booking lain tetap
// dihitung overlap.
func (r *bookingRepository) ExistsOverlapping(roomID uint, checkIn, checkOut models.Date) (bool, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, apperrors.NewStorage("check overlapping bookings", err)
	}
	return count > 0, nil
}
