package models

import (
	"time"

	"gorm.io/gorm"
)

// Room: uniqueness nomor kamar di antara kamar non-deleted dijaga di
// repository, bukan lewat unique index, karena soft delete menyisakan
// tombstone dengan number yang sama.
type Room struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Number      string         `gorm:"type:varchar(50);not null;index" json:"number"`
	Type        string         `gorm:"type:varchar(50);not null" json:"type"`
	IsAvailable bool           `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Bookings    []Booking      `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
}
