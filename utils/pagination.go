package utils

import "gorm.io/gorm"

const DefaultPerPage = 10

// Paginate adalah gorm scope untuk pagination sederhana.
// Page mulai dari 1; nilai di luar batas dinormalisasi.
func Paginate(page, perPage int) func(db *gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = DefaultPerPage
	}
	offset := (page - 1) * perPage
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(perPage)
	}
}

// PageMeta meniru metadata paginator standar untuk response list.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

func NewPageMeta(page, perPage int, total int64) PageMeta {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = DefaultPerPage
	}
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return PageMeta{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}
