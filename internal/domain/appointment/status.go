package appointment

import "github.com/ericmelomp/PetFacil/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

// CanCancel: agendado ou concluído pode ser cancelado.
func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: só agendado pode ser concluído.
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}

// Billable diz se o agendamento entra no faturamento. Status
// desconhecido passa direto (defensivo): só cancelado fica de fora.
func Billable(current Status) bool {
	return current != StatusCancelled
}
