package dto

import (
	"time"

	"github.com/ericmelomp/PetFacil/internal/models"
	"github.com/ericmelomp/PetFacil/internal/money"
)

// Appointment é a forma achatada que o front consome: o agendamento
// junto com o nome do serviço (LEFT JOIN), nil quando a referência
// está pendurada.
type Appointment struct {
	ID              uint         `json:"id"`
	PetName         string       `json:"pet_name"`
	OwnerName       string       `json:"owner_name"`
	OwnerPhone      *string      `json:"owner_phone"`
	ServiceID       *uint        `json:"service_id"`
	ServiceName     *string      `json:"service_name"`
	AppointmentDate time.Time    `json:"appointment_date"`
	PickupService   bool         `json:"pickup_service"`
	PickupAddress   *string      `json:"pickup_address"`
	Notes           *string      `json:"notes"`
	Price           *money.Money `json:"price"`
	Status          string       `json:"status"`
	Paid            bool         `json:"paid"`
	PaymentMethod   *string      `json:"payment_method"`
	CreatedAt       time.Time    `json:"created_at"`
}

func FromAppointment(ap models.Appointment) Appointment {
	out := Appointment{
		ID:              ap.ID,
		PetName:         ap.PetName,
		OwnerName:       ap.OwnerName,
		OwnerPhone:      ap.OwnerPhone,
		ServiceID:       ap.ServiceID,
		AppointmentDate: ap.AppointmentDate,
		PickupService:   ap.PickupService,
		PickupAddress:   ap.PickupAddress,
		Notes:           ap.Notes,
		Price:           ap.Price,
		Status:          ap.Status,
		Paid:            ap.Paid,
		PaymentMethod:   ap.PaymentMethod,
		CreatedAt:       ap.CreatedAt,
	}

	if ap.Service != nil {
		name := ap.Service.Name
		out.ServiceName = &name
	}

	return out
}

func FromAppointments(aps []models.Appointment) []Appointment {
	out := make([]Appointment, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
