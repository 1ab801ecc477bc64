package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound dipakai untuk id yang tidak dikenal (room atau booking).
var ErrNotFound = errors.New("record not found")

// ValidationError menandai field request yang tidak valid.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Alasan konflik pada admission booking.
const (
	ReasonRoomUnavailable = "room_unavailable"
	ReasonDateOverlap     = "date_overlap"
)

// ConflictError menandai booking yang ditolak karena kamar tidak
// tersedia atau tanggalnya bertabrakan dengan booking lain.
type ConflictError struct {
	Reason  string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(reason, message string) *ConflictError {
	return &ConflictError{Reason: reason, Message: message}
}

// StorageError membungkus kegagalan transaksi/persistensi.
// Penyebab aslinya ikut di message untuk diagnostik.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure on %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// ErrorStatus memetakan error domain ke status HTTP.
func ErrorStatus(err error) int {
	var ve *ValidationError
	var ce *ConflictError
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case errors.As(err, &ce):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
