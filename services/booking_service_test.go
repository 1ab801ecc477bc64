package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/hotel-booking-app/apperrors"
	"github.com/yeremiapane/hotel-booking-app/models"
	"github.com/yeremiapane/hotel-booking-app/repositories"
	"github.com/yeremiapane/hotel-booking-app/utils"
)

// "Hari ini" yang tetap supaya aturan check-in-after-today deterministik.
var testNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func setupBookingService(t *testing.T) (*BookingService, *gorm.DB) {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Booking{}))

	svc := NewBookingService(
		repositories.NewRoomRepository(db),
		repositories.NewBookingRepository(db),
	)
	svc.now = func() time.Time { return testNow }
	return svc, db
}

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func seedRoom(t *testing.T, db *gorm.DB, number string, available bool) *models.Room {
	t.Helper()
	room := &models.Room{Number: number, Type: "standard", IsAvailable: available}
	require.NoError(t, db.Create(room).Error)
	return room
}

func TestCreateBooking_Success(t *testing.T) {
	svc, db := setupBookingService(t)
	room := seedRoom(t, db, "101", true)

	booking, err := svc.Create(CreateBookingInput{
		GuestName:    "John Doe",
		RoomID:       room.ID,
		CheckInDate:  date(t, "2025-06-01"),
		CheckOutDate: date(t, "2025-06-05"),
		PromoCode:    "SUMMER2025",
	})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, room.ID, booking.RoomID)
	require.NotNil(t, booking.PromoCode)
	assert.Equal(t, "SUMMER2025", *booking.PromoCode)

	// Kamar tidak di-flip menjadi unavailable oleh booking.
	var fresh models.Room
	require.NoError(t, db.First(&fresh, room.ID).Error)
	assert.True(t, fresh.IsAvailable)
}

func TestCreateBooking_ValidationShortCircuits(t *testing.T) {
	svc, db := setupBookingService(t)
	room := seedRoom(t, db, "101", true)

	tests := []struct {
		name  string
		in    CreateBookingInput
		field string
	}{
		{
			"empty guest name",
			CreateBookingInput{GuestName: "", RoomID: room.ID,
				CheckInDate: date(t, "2025-06-01"), CheckOutDate: date(t, "2025-06-05")},
			"guest_name",
		},
		{
			"check-in today",
			CreateBookingInput{GuestName: "A", RoomID: room.ID,
				CheckInDate: date(t, "2025-05-01"), CheckOutDate: date(t, "2025-06-05")},
			"check_in_date",
		},
		{
			"check-out before check-in",
			CreateBookingInput{GuestName: "A", RoomID: room.ID,
				CheckInDate: date(t, "2025-06-05"), CheckOutDate: date(t, "2025-06-01")},
			"check_out_date",
		},
		{
			"check-out equals check-in",
			CreateBookingInput{GuestName: "A", RoomID: room.ID,
				CheckInDate: date(t, "2025-06-05"), CheckOutDate: date(t, "2025-06-05")},
			"check_out_date",
		},
		{
			"bad promo code",
			CreateBookingInput{GuestName: "A", RoomID: room.ID,
				CheckInDate: date(t, "2025-06-01"), CheckOutDate: date(t, "2025-06-05"),
				PromoCode: "bad code"},
			"promo_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.in)
			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	// Tidak ada booking parsial yang tersimpan.
	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateBooking_RoomNotFound(t *testing.T) {
	svc, _ := setupBookingService(t)

	_, err := svc.Create(CreateBookingInput{
		GuestName:    "John Doe",
		RoomID:       999,
		CheckInDate:  date(t, "2025-06-01"),
		CheckOutDate: date(t, "2025-06-05"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateBooking_RoomUnavailable(t *testing.T) {
	svc, db := setupBookingService(t)
	room := seedRoom(t, db, "103", false)

	_, err := svc.Create(CreateBookingInput{
		GuestName:    "John Doe",
		RoomID:       room.ID,
		CheckInDate:  date(t, "2025-06-01"),
		CheckOutDate: date(t, "2025-06-05"),
	})

	var ce *apperrors.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, apperrors.ReasonRoomUnavailable, ce.Reason)
}

func TestCreateBooking_OverlapMatrix(t *testing.T) {
	svc, db := setupBookingService(t)
	room := seedRoom(t, db, "101", true)

	// Booking eksisting: 2025-06-01 -> 2025-06-05.
	_, err := svc.Create(CreateBookingInput{
		GuestName:    "A",
		RoomID:       room.ID,
		CheckInDate:  date(t, "2025-06-01"),
		CheckOutDate: date(t, "2025-06-05"),
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		conflict bool
	}{
		{"partial overlap at tail", "2025-06-04", "2025-06-08", true},
		{"touching start boundary", "2025-06-05", "2025-06-06", true},
		{"touching end boundary", "2025-05-28", "2025-06-01", true},
		{"containing interval", "2025-05-30", "2025-06-10", true},
		{"contained interval", "2025-06-02", "2025-06-04", true},
		{"after existing", "2025-06-06", "2025-06-08", false},
		{"before existing", "2025-05-20", "2025-05-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(CreateBookingInput{
				GuestName:    "B",
				RoomID:       room.ID,
				CheckInDate:  date(t, tt.checkIn),
				CheckOutDate: date(t, tt.checkOut),
			})
			if !tt.conflict {
				assert.NoError(t, err)
				return
			}
			var ce *apperrors.ConflictError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, apperrors.ReasonDateOverlap, ce.Reason)
		})
	}
}

func TestCreateBooking_OverlapScopedToRoom(t *testing.T) {
	svc, db := setupBookingService(t)
	room1 := seedRoom(t, db, "101", true)
	room2 := seedRoom(t, db, "102", true)

	_, err := svc.Create(CreateBookingInput{
		GuestName: "A", RoomID: room1.ID,
		CheckInDate: date(t, "2025-06-01"), CheckOutDate: date(t, "2025-06-05"),
	})
	require.NoError(t, err)

	// Tanggal sama di kamar lain tidak konflik.
	_, err = svc.Create(CreateBookingInput{
		GuestName: "B", RoomID: room2.ID,
		CheckInDate: date(t, "2025-06-01"), CheckOutDate: date(t, "2025-06-05"),
	})
	assert.NoError(t, err)
}

func TestCreateBooking_DeletedBookingFreesDates(t *testing.T) {
	svc, db := setupBookingService(t)
	room := seedRoom(t, db, "101", true)

	first, err := svc.Create(CreateBookingInput{
		GuestName: "A", RoomID: room.ID,
		CheckInDate: date(t, "2025-06-01"), CheckOutDate: date(t, "2025-06-05"),
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(first.ID))

	// Tombstone tidak ikut dihitung dalam cek overlap.
	_, err = svc.Create(CreateBookingInput{
		GuestName: "B", RoomID: room.ID,
		CheckInDate: date(t, "2025-06-01"), CheckOutDate: date(t, "2025-06-05"),
	})
	assert.NoError(t, err)
}

func TestUpdateBooking_FieldsRevalidated(t *testing.T) {
	svc, db := setupBookingService(t)
	room := seedRoom(t, db, "101", true)

	booking, err := svc.Create(CreateBookingInput{
		GuestName: "A", RoomID: room.ID,
		CheckInDate: date(t, "2025-06-01"), CheckOutDate: date(t, "2025-06-05"),
	})
	require.NoError(t, err)

	confirmed := models.BookingStatusConfirmed
	name := "Jane Doe"
	updated, err := svc.Update(booking.ID, UpdateBookingPatch{
		GuestName: &name,
		Status:    &confirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.GuestName)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)

	badStatus := "archived"
	_, err = svc.Update(booking.ID, UpdateBookingPatch{Status: &badStatus})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)

	pastCheckIn := date(t, "2025-04-01")
	_, err = svc.Update(booking.ID, UpdateBookingPatch{CheckInDate: &pastCheckIn})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "check_in_date", ve.Field)

	// Check-out dibandingkan dengan check-in eksisting kalau check-in
	// tidak ikut dikirim.
	badCheckOut := date(t, "2025-06-01")
	_, err = svc.Update(booking.ID, UpdateBookingPatch{CheckOutDate: &badCheckOut})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "check_out_date", ve.Field)

	badPromo := "tiny"
	_, err = svc.Update(booking.ID, UpdateBookingPatch{PromoCode: &badPromo})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "promo_code", ve.Field)

	// Promo code kosong menghapus nilai yang ada.
	code := "WINTER2026"
	_, err = svc.Update(booking.ID, UpdateBookingPatch{PromoCode: &code})
	require.NoError(t, err)
	empty := ""
	updated, err = svc.Update(booking.ID, UpdateBookingPatch{PromoCode: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.PromoCode)
}

func TestUpdateBooking_DoesNotRecheckOverlap(t *testing.T) {
	svc, db := setupBookingService(t)
	room := seedRoom(t, db, "101", true)

	_, err := svc.Create(CreateBookingInput{
		GuestName: "A", RoomID: room.ID,
		CheckInDate: date(t, "2025-06-01"), CheckOutDate: date(t, "2025-06-05"),
	})
	require.NoError(t, err)

	second, err := svc.Create(CreateBookingInput{
		GuestName: "B", RoomID: room.ID,
		CheckInDate: date(t, "2025-06-10"), CheckOutDate: date(t, "2025-06-12"),
	})
	require.NoError(t, err)

	// Update tidak menjalankan cek overlap; memindahkan booking kedua
	// ke rentang booking pertama tetap berhasil.
	newIn := date(t, "2025-06-02")
	newOut := date(t, "2025-06-04")
	_, err = svc.Update(second.ID, UpdateBookingPatch{
		CheckInDate:  &newIn,
		CheckOutDate: &newOut,
	})
	assert.NoError(t, err)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	svc, _ := setupBookingService(t)
	name := "Nobody"
	_, err := svc.Update(42, UpdateBookingPatch{GuestName: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteBooking_Twice(t *testing.T) {
	svc, db := setupBookingService(t)
	room := seedRoom(t, db, "101", true)

	booking, err := svc.Create(CreateBookingInput{
		GuestName: "A", RoomID: room.ID,
		CheckInDate: date(t, "2025-06-01"), CheckOutDate: date(t, "2025-06-05"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(booking.ID))
	// Soft delete: row tetap ada sebagai tombstone.
	var count int64
	db.Unscoped().Model(&models.Booking{}).Where("id = ?", booking.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	assert.ErrorIs(t, svc.Delete(booking.ID), apperrors.ErrNotFound)

	_, err = svc.Get(booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateBooking_StorageError(t *testing.T) {
	svc, db := setupBookingService(t)
	room := seedRoom(t, db, "101", true)
	require.NoError(t, db.Migrator().DropTable(&models.Booking{}))

	_, err := svc.Create(CreateBookingInput{
		GuestName: "A", RoomID: room.ID,
		CheckInDate: date(t, "2025-06-01"), CheckOutDate: date(t, "2025-06-05"),
	})

	var se *apperrors.StorageError
	assert.ErrorAs(t, err, &se)
}
