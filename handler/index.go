package handler

import "gorm.io/gorm"

// Handler bundles the storage handle shared by every endpoint. The handle's
// lifecycle is owned by main and injected here.
type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}
