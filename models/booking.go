package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	GuestName    string         `gorm:"type:varchar(255);not null" json:"guest_name"`
	RoomID       uint           `gorm:"not null;index" json:"room_id"`
	Room         *Room          `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"room,omitempty"`
	CheckInDate  Date           `gorm:"not null" json:"check_in_date"`
	CheckOutDate Date           `gorm:"not null" json:"check_out_date"`
	Status       string         `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PromoCode    *string        `gorm:"type:varchar(50)" json:"promo_code,omitempty"`
	CreatedAt    time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// ValidStatus memeriksa nilai status sesuai enum pending/confirmed/cancelled.
func ValidStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}
