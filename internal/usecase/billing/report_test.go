package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ericmelomp/PetFacil/internal/httperr"
	"github.com/ericmelomp/PetFacil/internal/models"
	"github.com/ericmelomp/PetFacil/internal/timezone"
)

type stubRepo struct {
	rows []models.Appointment
	err  error

	calls     int
	lastStart time.Time
	lastEnd   time.Time
}

func (s *stubRepo) ListBillableForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	s.calls++
	s.lastStart = start
	s.lastEnd = end
	return s.rows, s.err
}

func TestExecuteExpandsRangeToLocalDays(t *testing.T) {
	loc := timezone.Location("America/Sao_Paulo")
	repo := &stubRepo{}
	uc := NewGenerateReport(repo, loc)

	if _, err := uc.Execute(context.Background(), "2024-03-05", "2024-03-05"); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if repo.calls != 1 {
		t.Fatalf("expected exactly one store read, got %d", repo.calls)
	}

	wantStart := time.Date(2024, 3, 5, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2024, 3, 5, 23, 59, 59, 999000000, loc)

	if !repo.lastStart.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", repo.lastStart, wantStart)
	}
	if !repo.lastEnd.Equal(wantEnd) {
		t.Fatalf("end = %v, want %v", repo.lastEnd, wantEnd)
	}
}

func TestExecuteInvalidDate(t *testing.T) {
	uc := NewGenerateReport(&stubRepo{}, timezone.Location("America/Sao_Paulo"))

	_, err := uc.Execute(context.Background(), "05/03/2024", "2024-03-05")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestExecutePropagatesStoreError(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	uc := NewGenerateReport(repo, timezone.Location("America/Sao_Paulo"))

	report, err := uc.Execute(context.Background(), "2024-03-05", "2024-03-05")
	if err == nil {
		t.Fatal("expected error")
	}
	if report != nil {
		t.Fatal("no partial result on store failure")
	}
}

func TestExecuteEmptyRange(t *testing.T) {
	uc := NewGenerateReport(&stubRepo{}, timezone.Location("America/Sao_Paulo"))

	report, err := uc.Execute(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if report.Total != 0 || report.Count != 0 || len(report.ByDay) != 0 {
		t.Fatalf("empty range report = %+v", report)
	}
}
