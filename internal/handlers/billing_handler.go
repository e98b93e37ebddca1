package handlers

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	domain "github.com/ericmelomp/PetFacil/internal/domain/billing"
	"github.com/ericmelomp/PetFacil/internal/httperr"
	"github.com/ericmelomp/PetFacil/internal/httpresp"
	"github.com/ericmelomp/PetFacil/internal/metrics"
)

// ======================================================
// HANDLER
// ======================================================

type billingReportService interface {
	Execute(ctx context.Context, startDate, endDate string) (*domain.Report, error)
}

type BillingHandler struct {
	reports billingReportService
}

func NewBillingHandler(reports billingReportService) *BillingHandler {
	return &BillingHandler{reports: reports}
}

// GetReport monta o relatório de faturamento do intervalo fechado
// [start_date, end_date]. As duas datas são obrigatórias; sem elas não
// se computa nada.
func (h *BillingHandler) GetReport(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if startDate == "" || endDate == "" {
		httperr.BadRequest(c, "missing_dates", "start_date e end_date são obrigatórios.")
		return
	}

	report, err := h.reports.Execute(c.Request.Context(), startDate, endDate)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida (use YYYY-MM-DD).")
			return
		}

		// Falha de banco: loga o detalhe, devolve mensagem opaca.
		log.Printf("billing report error: %v", err)
		httperr.Internal(c, "failed_to_build_report", "Erro ao gerar faturamento.")
		return
	}

	metrics.BillingReportsTotal.Inc()

	httpresp.OK(c, report)
}
