package services

import (
	"sync"
	"time"

	"github.com/yeremiapane/hotel-booking-app/apperrors"
	"github.com/yeremiapane/hotel-booking-app/models"
	"github.com/yeremiapane/hotel-booking-app/repositories"
	"github.com/yeremiapane/hotel-booking-app/utils"
	"github.com/yeremiapane/hotel-booking-app/validators"
)

// BookingService memegang logika admission booking: cek ketersediaan
// kamar, deteksi overlap tanggal, validasi promo code, lalu tulis
// transaksional.
type BookingService struct {
	rooms    repositories.RoomRepository
	bookings repositories.BookingRepository
	locks    roomLocks

	// now bisa diganti di test untuk mengontrol "hari ini".
	now func() time.Time
}

func NewBookingService(rooms repositories.RoomRepository, bookings repositories.BookingRepository) *BookingService {
	return &BookingService{
		rooms:    rooms,
		bookings: bookings,
		now:      time.Now,
	}
}

type CreateBookingInput struct {
	GuestName    string
	RoomID       uint
	CheckInDate  models.Date
	CheckOutDate models.Date
	PromoCode    string
}

// UpdateBookingPatch adalah patch allow-listed: hanya field di sini
// yang boleh diubah lewat update, masing-masing opsional.
type UpdateBookingPatch struct {
	GuestName    *string
	CheckInDate  *models.Date
	CheckOutDate *models.Date
	Status       *string
	PromoCode    *string
}

// Create menjalankan admission check lalu menyimpan booking baru
// berstatus pending. Check pertama yang gagal langsung menghentikan
// proses; tidak ada booking parsial yang tersimpan.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	if err := validators.GuestName(in.GuestName); err != nil {
		return nil, err
	}
	if err := validators.CheckInAfterToday(in.CheckInDate, s.now()); err != nil {
		return nil, err
	}
	if err := validators.CheckOutAfterCheckIn(in.CheckInDate, in.CheckOutDate); err != nil {
		return nil, err
	}
	if err := validators.PromoCode(in.PromoCode); err != nil {
		return nil, err
	}

	room, err := s.rooms.FindByID(in.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.IsAvailable {
		return nil, apperrors.NewConflict(apperrors.ReasonRoomUnavailable,
			"Room is not available for booking")
	}

	// Serialisasi check+insert per kamar: tanpa ini dua request
	// bersamaan bisa sama-sama lolos cek overlap terhadap data lama.
	mu := s.locks.forRoom(in.RoomID)
	mu.Lock()
	defer mu.Unlock()

	overlap, err := s.bookings.ExistsOverlapping(in.RoomID, in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, apperrors.NewConflict(apperrors.ReasonDateOverlap,
			"Room is already booked for the selected dates")
	}

	booking := &models.Booking{
		GuestName:    in.GuestName,
		RoomID:       in.RoomID,
		CheckInDate:  in.CheckInDate,
		CheckOutDate: in.CheckOutDate,
		Status:       models.BookingStatusPending,
	}
	if in.PromoCode != "" {
		booking.PromoCode = &in.PromoCode
	}
	// Catatan: ketersediaan kamar sengaja tidak di-flip di sini;
	// flag is_available murni dikelola manual lewat endpoint kamar.

	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}
	booking.Room = room

	utils.InfoLogger.Printf("Booking %d created: room %d, %s -> %s",
		booking.ID, booking.RoomID, booking.CheckInDate, booking.CheckOutDate)
	return booking, nil
}

// Update menerapkan patch ke booking. Setiap field yang dikirim
// divalidasi ulang dengan aturan yang sama seperti create. Overlap
// tidak dicek ulang saat update.
func (s *BookingService) Update(id uint, patch UpdateBookingPatch) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.GuestName != nil {
		if err := validators.GuestName(*patch.GuestName); err != nil {
			return nil, err
		}
		booking.GuestName = *patch.GuestName
	}

	checkIn := booking.CheckInDate
	if patch.CheckInDate != nil {
		if err := validators.CheckInAfterToday(*patch.CheckInDate, s.now()); err != nil {
			return nil, err
		}
		checkIn = *patch.CheckInDate
		booking.CheckInDate = checkIn
	}
	if patch.CheckOutDate != nil {
		if err := validators.CheckOutAfterCheckIn(checkIn, *patch.CheckOutDate); err != nil {
			return nil, err
		}
		booking.CheckOutDate = *patch.CheckOutDate
	}

	if patch.Status != nil {
		if err := validators.Status(*patch.Status); err != nil {
			return nil, err
		}
		booking.Status = *patch.Status
	}

	if patch.PromoCode != nil {
		if err := validators.PromoCode(*patch.PromoCode); err != nil {
			return nil, err
		}
		if *patch.PromoCode == "" {
			booking.PromoCode = nil
		} else {
			booking.PromoCode = patch.PromoCode
		}
	}

	if err := s.bookings.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Delete melakukan soft delete. Booking yang sudah dihapus tidak
// ditemukan lagi, jadi delete kedua menghasilkan NotFound.
func (s *BookingService) Delete(id uint) error {
	return s.bookings.SoftDelete(id)
}

func (s *BookingService) Get(id uint) (*models.Booking, error) {
	return s.bookings.FindByID(id)
}

func (s *BookingService) List(page, perPage int) ([]models.Booking, int64, error) {
	return s.bookings.List(page, perPage)
}

// roomLocks memetakan room id ke mutex-nya, dengan pola yang sama
// seperti map ber-mutex untuk state shared lain di service ini.
type roomLocks struct {
	mu sync.Mutex
	m  map[uint]*sync.Mutex
}

func (l *roomLocks) forRoom(id uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.m == nil {
		l.m = make(map[uint]*sync.Mutex)
	}
	mtx, ok := l.m[id]
	if !ok {
		mtx = &sync.Mutex{}
		l.m[id] = mtx
	}
	return mtx
}
