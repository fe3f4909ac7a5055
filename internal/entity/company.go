package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company represents the owning tenant for data transfer between layers.
type Company struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
