package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/hotel-booking-app/apperrors"
	"github.com/yeremiapane/hotel-booking-app/models"
	"github.com/yeremiapane/hotel-booking-app/utils"
)

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorage("find room", err)
	}
	return &room, nil
}

// List mengembalikan halaman kamar, terbaru lebih dulu.
func (r *roomRepository) List(page, perPage int) ([]models.Room, int64, error) {
	var rooms []models.Room
	var total int64

	if err := r.db.Model(&models.Room{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewStorage("count rooms", err)
	}
	err := r.db.Order("created_at DESC, id DESC").
		Scopes(utils.Paginate(page, perPage)).
		Find(&rooms).Error
	if err != nil {
		return nil, 0, apperrors.NewStorage("list rooms", err)
	}
	return rooms, total, nil
}

func (r *roomRepository) Create(room *models.Room) error {
	if err := r.db.Create(room).Error; err != nil {
		return apperrors.NewStorage("create room", err)
	}
	return nil
}

func (r *roomRepository) Update(room *models.Room) error {
	if err := r.db.Save(room).Error; err != nil {
		return apperrors.NewStorage("update room", err)
	}
	return nil
}

func (r *roomRepository) SoftDelete(id uint) error {
	res := r.db.Delete(&models.Room{}, id)
	if res.Error != nil {
		return apperrors.NewStorage("delete room", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// NumberTaken memeriksa apakah nomor kamar sudah dipakai kamar
// non-deleted lain. excludeID dipakai saat update agar kamar tidak
// bertabrakan dengan dirinya sendiri.
func (r *roomRepository) NumberTaken(number string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Room{}).Where("number = ?", number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.NewStorage("check room number", err)
	}
	return count > 0, nil
}
