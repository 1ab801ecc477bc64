package validators

import (
	"regexp"
	"time"

	"github.com/yeremiapane/hotel-booking-app/apperrors"
	"github.com/yeremiapane/hotel-booking-app/models"
)

var promoCodePattern = regexp.MustCompile(`^[A-Z0-9]{6,10}$`)

// PromoCode menerima string kosong (field opsional) atau kode
// uppercase alfanumerik sepanjang 6-10 karakter.
func PromoCode(code string) error {
	if code == "" {
		return nil
	}
	if !promoCodePattern.MatchString(code) {
		return apperrors.NewValidation("promo_code",
			"must be uppercase alphanumeric and between 6-10 characters")
	}
	return nil
}

func GuestName(name string) error {
	if name == "" {
		return apperrors.NewValidation("guest_name", "is required")
	}
	if len(name) > 255 {
		return apperrors.NewValidation("guest_name", "must not exceed 255 characters")
	}
	return nil
}

// CheckInAfterToday: tanggal check-in harus strictly setelah hari ini.
func CheckInAfterToday(checkIn models.Date, now time.Time) error {
	today := models.NewDate(now)
	if !checkIn.After(today.Time) {
		return apperrors.NewValidation("check_in_date", "must be a date after today")
	}
	return nil
}

// CheckOutAfterCheckIn: check-out harus strictly setelah check-in.
func CheckOutAfterCheckIn(checkIn, checkOut models.Date) error {
	if !checkOut.After(checkIn.Time) {
		return apperrors.NewValidation("check_out_date", "must be a date after check_in_date")
	}
	return nil
}

func Status(status string) error {
	if !models.ValidStatus(status) {
		return apperrors.NewValidation("status", "must be one of pending, confirmed, cancelled")
	}
	return nil
}
