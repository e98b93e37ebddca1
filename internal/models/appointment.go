package models

import (
	"time"

	"github.com/ericmelomp/PetFacil/internal/money"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetName    string  `gorm:"size:255;not null" json:"pet_name"`
	OwnerName  string  `gorm:"size:255;not null" json:"owner_name"`
	OwnerPhone *string `gorm:"size:50" json:"owner_phone"`

	// Referência fraca: serviço apagado vira NULL e o faturamento
	// agrupa como "no service".
	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`

	PickupService bool    `gorm:"default:false" json:"pickup_service"`
	PickupAddress *string `gorm:"type:text" json:"pickup_address"`
	Notes         *string `gorm:"type:text" json:"notes"`

	Price *money.Money `gorm:"type:decimal(10,2)" json:"price"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Paid          bool    `gorm:"default:false" json:"paid"`
	PaymentMethod *string `gorm:"size:20" json:"payment_method"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
