package billing

import (
	"context"
	"time"

	"github.com/ericmelomp/PetFacil/internal/models"
)

type Repository interface {
	// ListBillableForPeriod devolve os agendamentos não cancelados com
	// appointment_date dentro de [start, end] (inclusivo nas duas
	// pontas), com o serviço pré-carregado. É a ÚNICA leitura do
	// relatório: todos os agrupamentos derivam desse mesmo conjunto.
	ListBillableForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
