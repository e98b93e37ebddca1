package appointment

import (
	"testing"
	"time"

	"github.com/ericmelomp/PetFacil/internal/models"
)

func TestCancelTransitions(t *testing.T) {
	now := time.Now()

	for _, status := range []Status{StatusScheduled, StatusCompleted} {
		ap := &models.Appointment{Status: string(status)}
		if err := Cancel(ap, now); err != nil {
			t.Fatalf("Cancel from %s: %v", status, err)
		}
		if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil {
			t.Fatalf("Cancel from %s left %+v", status, ap)
		}
	}

	ap := &models.Appointment{Status: string(StatusCancelled)}
	if err := Cancel(ap, now); err == nil {
		t.Fatal("Cancel from cancelled should fail")
	}
}

func TestCompleteTransitions(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusScheduled)}
	if err := Complete(ap, now); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("Complete left %+v", ap)
	}

	for _, status := range []Status{StatusCompleted, StatusCancelled} {
		ap := &models.Appointment{Status: string(status)}
		if err := Complete(ap, now); err == nil {
			t.Fatalf("Complete from %s should fail", status)
		}
	}
}

func TestBillable(t *testing.T) {
	if Billable(StatusCancelled) {
		t.Fatal("cancelled must not be billable")
	}
	if !Billable(StatusScheduled) || !Billable(StatusCompleted) {
		t.Fatal("scheduled and completed are billable")
	}
	// Status fora do enum passa direto.
	if !Billable(Status("no-show")) {
		t.Fatal("unknown status is billable by default")
	}
}
