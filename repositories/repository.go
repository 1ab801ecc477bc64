package repositories

import (
	"github.com/yeremiapane/hotel-booking-app/models"
)

// RoomRepository membungkus akses data kamar. Service dan controller
// bergantung ke interface ini, bukan ke koneksi gorm langsung.
type RoomRepository interface {
	FindByID(id uint) (*models.Room, error)
	List(page, perPage int) ([]models.Room, int64, error)
	Create(room *models.Room) error
	Update(room *models.Room) error
	SoftDelete(id uint) error
	NumberTaken(number string, excludeID uint) (bool, error)
}

// BookingRepository membungkus akses data booking.
type BookingRepository interface {
	FindByID(id uint) (*models.Booking, error)
	List(page, perPage int) ([]models.Booking, int64, error)
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	SoftDelete(id uint) error
	ExistsOverlapping(roomID uint, checkIn, checkOut models.Date) (bool, error)
}
