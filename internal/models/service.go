package models

import (
	"time"

	"github.com/ericmelomp/PetFacil/internal/money"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:255;not null" json:"name"`
	Duration int    `gorm:"not null" json:"duration"`

	Price *money.Money `gorm:"type:decimal(10,2)" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
