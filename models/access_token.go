package models

import "time"

// AccessToken menyimpan bearer token opaque milik user.
// Hanya hash SHA-256 dari token yang disimpan, bukan plaintext-nya.
type AccessToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
