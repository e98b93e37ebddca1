package billing

import (
	"context"
	"time"

	domain "github.com/ericmelomp/PetFacil/internal/domain/billing"
	"github.com/ericmelomp/PetFacil/internal/httperr"
	"github.com/ericmelomp/PetFacil/internal/timezone"
)

type GenerateReport struct {
	repo domain.Repository
	loc  *time.Location
}

func NewGenerateReport(
	repo domain.Repository,
	loc *time.Location,
) *GenerateReport {
	return &GenerateReport{
		repo: repo,
		loc:  loc,
	}
}

// Execute expande o intervalo de datas para os limites do dia local,
// faz UMA leitura no banco e agrega tudo a partir dela. Leitura pura:
// não escreve nada.
func (uc *GenerateReport) Execute(
	ctx context.Context,
	startDate string,
	endDate string,
) (*domain.Report, error) {

	start, end, err := timezone.RangeBounds(startDate, endDate, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	rows, err := uc.repo.ListBillableForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return domain.BuildReport(rows, uc.loc), nil
}
