package billing

import (
	"sort"
	"time"

	domain "github.com/ericmelomp/PetFacil/internal/domain/appointment"
	"github.com/ericmelomp/PetFacil/internal/dto"
	"github.com/ericmelomp/PetFacil/internal/models"
	"github.com/ericmelomp/PetFacil/internal/money"
	"github.com/ericmelomp/PetFacil/internal/timezone"
)

// ===============================
// Sentinels
// ===============================

const (
	// NoService rotula agendamentos cuja referência de serviço é nula
	// ou ficou pendurada depois de um delete no catálogo.
	NoService = "no service"

	// NotInformed rotula agendamentos sem forma de pagamento.
	NotInformed = "not informed"
)

// ===============================
// Report
// ===============================

type DayBucket struct {
	Day          string            `json:"day"`
	Total        money.Money       `json:"total"`
	Count        int               `json:"count"`
	Appointments []dto.Appointment `json:"appointments"`
}

type ServiceBucket struct {
	Name  string      `json:"name"`
	Count int         `json:"count"`
	Total money.Money `json:"total"`
}

type PaymentBucket struct {
	Name  string      `json:"name"`
	Count int         `json:"count"`
	Total money.Money `json:"total"`
}

type Report struct {
	Total           money.Money     `json:"total"`
	Count           int             `json:"count"`
	ByDay           []DayBucket     `json:"by_day"`
	ByService       []ServiceBucket `json:"by_service"`
	ByPaymentMethod []PaymentBucket `json:"by_payment_method"`
}

// ===============================
// Aggregation
// ===============================

// BuildReport agrega um conjunto já selecionado de agendamentos em
// total, contagem e os três agrupamentos (dia, serviço, forma de
// pagamento). Função pura: mesma entrada, mesma saída, nenhuma leitura
// extra. Preço nulo conta 0 no total e 1 na contagem.
func BuildReport(rows []models.Appointment, loc *time.Location) *Report {
	report := &Report{
		ByDay:           []DayBucket{},
		ByService:       []ServiceBucket{},
		ByPaymentMethod: []PaymentBucket{},
	}

	dayIdx := map[string]int{}
	serviceIdx := map[string]int{}
	paymentIdx := map[string]int{}

	for _, ap := range rows {
		// A query já exclui cancelados; o filtro aqui segura o caso de
		// alguém passar um conjunto cru.
		if !domain.Billable(domain.Status(ap.Status)) {
			continue
		}

		var price money.Money
		if ap.Price != nil {
			price = *ap.Price
		}

		report.Total += price
		report.Count++

		// O dia é calculado UMA vez, a partir do instante gravado.
		day := timezone.DayKey(ap.AppointmentDate, loc)
		i, ok := dayIdx[day]
		if !ok {
			i = len(report.ByDay)
			dayIdx[day] = i
			report.ByDay = append(report.ByDay, DayBucket{
				Day:          day,
				Appointments: []dto.Appointment{},
			})
		}
		report.ByDay[i].Appointments = append(
			report.ByDay[i].Appointments,
			dto.FromAppointment(ap),
		)
		report.ByDay[i].Total += price
		report.ByDay[i].Count++

		serviceName := NoService
		if ap.Service != nil {
			serviceName = ap.Service.Name
		}
		i, ok = serviceIdx[serviceName]
		if !ok {
			i = len(report.ByService)
			serviceIdx[serviceName] = i
			report.ByService = append(report.ByService, ServiceBucket{
				Name: serviceName,
			})
		}
		report.ByService[i].Count++
		report.ByService[i].Total += price

		paymentMethod := NotInformed
		if ap.PaymentMethod != nil && *ap.PaymentMethod != "" {
			paymentMethod = *ap.PaymentMethod
		}
		i, ok = paymentIdx[paymentMethod]
		if !ok {
			i = len(report.ByPaymentMethod)
			paymentIdx[paymentMethod] = i
			report.ByPaymentMethod = append(report.ByPaymentMethod, PaymentBucket{
				Name: paymentMethod,
			})
		}
		report.ByPaymentMethod[i].Count++
		report.ByPaymentMethod[i].Total += price
	}

	// Dia em ordem cronológica (lexicográfica = cronológica no formato
	// YYYY-MM-DD). Os outros dois são estáveis: empate mantém a ordem
	// de chegada.
	sort.Slice(report.ByDay, func(a, b int) bool {
		return report.ByDay[a].Day < report.ByDay[b].Day
	})
	sort.SliceStable(report.ByService, func(a, b int) bool {
		return report.ByService[a].Count > report.ByService[b].Count
	})
	sort.SliceStable(report.ByPaymentMethod, func(a, b int) bool {
		return report.ByPaymentMethod[a].Total > report.ByPaymentMethod[b].Total
	})

	return report
}
