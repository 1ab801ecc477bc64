package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/hotel-booking-app/models"
	"github.com/yeremiapane/hotel-booking-app/utils"
)

// Seed mengisi data development: satu kamar per tipe, dua kamar
// unavailable, plus test user dengan token yang sudah diketahui.
// Idempotent: tidak menulis ulang kalau sudah ada data.
func Seed(db *gorm.DB) error {
	var roomCount int64
	if err := db.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		return err
	}
	if roomCount == 0 {
		rooms := []models.Room{
			{Number: "101", Type: "standard", IsAvailable: true},
			{Number: "102", Type: "deluxe", IsAvailable: true},
			{Number: "201", Type: "suite", IsAvailable: true},
			{Number: "202", Type: "executive", IsAvailable: true},
			{Number: "301", Type: "presidential", IsAvailable: true},
			{Number: "103", Type: "standard", IsAvailable: false},
			{Number: "104", Type: "deluxe", IsAvailable: false},
		}
		if err := db.Create(&rooms).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded %d rooms", len(rooms))
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}

		// Token hardcoded untuk smoke test lokal: "Bearer 12345"
		token := models.AccessToken{
			UserID:    user.ID,
			Name:      "test-token",
			TokenHash: utils.HashToken("12345"),
		}
		if err := db.Create(&token).Error; err != nil {
			return err
		}
		utils.InfoLogger.Println("Seeded test user (test@example.com / password, token 12345)")
	}

	return nil
}
