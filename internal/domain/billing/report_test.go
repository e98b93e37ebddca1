package billing

import (
	"reflect"
	"testing"
	"time"

	"github.com/ericmelomp/PetFacil/internal/models"
	"github.com/ericmelomp/PetFacil/internal/money"
	"github.com/ericmelomp/PetFacil/internal/timezone"
)

func loc() *time.Location {
	return timezone.Location("America/Sao_Paulo")
}

func price(cents int64) *money.Money {
	m := money.Money(cents)
	return &m
}

func strptr(s string) *string { return &s }

func at(day string, hour int) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", day, loc())
	return d.Add(time.Duration(hour) * time.Hour)
}

func sampleDay() []models.Appointment {
	banho := &models.Service{ID: 1, Name: "Banho"}
	tosa := &models.Service{ID: 2, Name: "Tosa"}

	svcID1, svcID2 := uint(1), uint(2)

	return []models.Appointment{
		{
			ID:              1,
			PetName:         "Rex",
			OwnerName:       "Ana",
			ServiceID:       &svcID1,
			Service:         banho,
			AppointmentDate: at("2024-03-05", 10),
			Status:          "completed",
			Price:           price(5000),
		},
		{
			ID:              2,
			PetName:         "Mia",
			OwnerName:       "Bruno",
			ServiceID:       &svcID2,
			Service:         tosa,
			AppointmentDate: at("2024-03-05", 14),
			Status:          "scheduled",
			Price:           price(3000),
			PaymentMethod:   strptr("pix"),
		},
		{
			ID:              3,
			PetName:         "Bob",
			OwnerName:       "Carla",
			ServiceID:       &svcID1,
			Service:         banho,
			AppointmentDate: at("2024-03-05", 16),
			Status:          "cancelled",
			Price:           price(99900),
		},
	}
}

func TestBuildReportExampleScenario(t *testing.T) {
	report := BuildReport(sampleDay(), loc())

	if report.Total != 8000 {
		t.Fatalf("total = %s, want 80.00", report.Total)
	}
	if report.Count != 2 {
		t.Fatalf("count = %d, want 2", report.Count)
	}

	if len(report.ByDay) != 1 {
		t.Fatalf("by_day len = %d", len(report.ByDay))
	}
	day := report.ByDay[0]
	if day.Day != "2024-03-05" || day.Total != 8000 || day.Count != 2 {
		t.Fatalf("by_day[0] = %+v", day)
	}
	if len(day.Appointments) != 2 {
		t.Fatalf("day appointments = %d", len(day.Appointments))
	}

	if len(report.ByService) != 2 {
		t.Fatalf("by_service len = %d", len(report.ByService))
	}
	for _, b := range report.ByService {
		if b.Name != "Banho" && b.Name != "Tosa" {
			t.Fatalf("unexpected service bucket %q", b.Name)
		}
		if b.Count != 1 {
			t.Fatalf("service %q count = %d", b.Name, b.Count)
		}
	}

	if len(report.ByPaymentMethod) != 2 {
		t.Fatalf("by_payment_method len = %d", len(report.ByPaymentMethod))
	}
	// Ordenado por total desc: "not informed" (50.00) antes de pix (30.00).
	if report.ByPaymentMethod[0].Name != NotInformed || report.ByPaymentMethod[0].Total != 5000 {
		t.Fatalf("by_payment_method[0] = %+v", report.ByPaymentMethod[0])
	}
	if report.ByPaymentMethod[1].Name != "pix" || report.ByPaymentMethod[1].Total != 3000 {
		t.Fatalf("by_payment_method[1] = %+v", report.ByPaymentMethod[1])
	}
}

func TestBuildReportExcludesCancelled(t *testing.T) {
	report := BuildReport(sampleDay(), loc())

	for _, day := range report.ByDay {
		for _, ap := range day.Appointments {
			if ap.Status == "cancelled" {
				t.Fatalf("cancelled appointment %d leaked into by_day", ap.ID)
			}
		}
	}

	// O cancelado custava 999.00: qualquer vazamento estoura o total.
	if report.Total != 8000 {
		t.Fatalf("total = %s", report.Total)
	}
}

func TestBuildReportConsistency(t *testing.T) {
	svcID := uint(1)
	banho := &models.Service{ID: 1, Name: "Banho"}

	rows := []models.Appointment{
		{ID: 1, Service: banho, ServiceID: &svcID, AppointmentDate: at("2024-03-05", 9), Status: "completed", Price: price(5000)},
		{ID: 2, AppointmentDate: at("2024-03-05", 11), Status: "scheduled", Price: price(2550), PaymentMethod: strptr("pix")},
		{ID: 3, AppointmentDate: at("2024-03-06", 9), Status: "scheduled"},
		{ID: 4, Service: banho, ServiceID: &svcID, AppointmentDate: at("2024-03-07", 15), Status: "completed", Price: price(7000), PaymentMethod: strptr("dinheiro")},
		{ID: 5, AppointmentDate: at("2024-03-07", 18), Status: "cancelled", Price: price(100000)},
	}

	report := BuildReport(rows, loc())

	var dayTotal, svcTotal, payTotal money.Money
	var dayCount, svcCount int
	for _, b := range report.ByDay {
		dayTotal += b.Total
		dayCount += b.Count
	}
	for _, b := range report.ByService {
		svcTotal += b.Total
		svcCount += b.Count
	}
	for _, b := range report.ByPaymentMethod {
		payTotal += b.Total
	}

	if dayTotal != report.Total || svcTotal != report.Total || payTotal != report.Total {
		t.Fatalf("totals diverge: report=%s day=%s service=%s payment=%s",
			report.Total, dayTotal, svcTotal, payTotal)
	}
	if dayCount != report.Count || svcCount != report.Count {
		t.Fatalf("counts diverge: report=%d day=%d service=%d",
			report.Count, dayCount, svcCount)
	}
}

func TestBuildReportNullPrice(t *testing.T) {
	rows := []models.Appointment{
		{ID: 1, AppointmentDate: at("2024-03-05", 9), Status: "scheduled"},
	}

	report := BuildReport(rows, loc())

	if report.Total != 0 {
		t.Fatalf("total = %s, want 0.00", report.Total)
	}
	if report.Count != 1 {
		t.Fatalf("count = %d, want 1", report.Count)
	}
	if report.ByDay[0].Count != 1 || report.ByDay[0].Total != 0 {
		t.Fatalf("by_day[0] = %+v", report.ByDay[0])
	}
}

func TestBuildReportDanglingServiceRef(t *testing.T) {
	gone := uint(42) // serviço já apagado do catálogo

	rows := []models.Appointment{
		{ID: 1, ServiceID: &gone, AppointmentDate: at("2024-03-05", 9), Status: "completed", Price: price(4000)},
	}

	report := BuildReport(rows, loc())

	if len(report.ByService) != 1 || report.ByService[0].Name != NoService {
		t.Fatalf("by_service = %+v, want sentinel %q", report.ByService, NoService)
	}
}

func TestBuildReportOrdering(t *testing.T) {
	tosa := &models.Service{ID: 2, Name: "Tosa"}
	banho := &models.Service{ID: 1, Name: "Banho"}

	rows := []models.Appointment{
		// Dias fora de ordem de propósito.
		{ID: 1, AppointmentDate: at("2024-03-07", 9), Status: "scheduled", Price: price(1000), PaymentMethod: strptr("pix")},
		{ID: 2, Service: tosa, AppointmentDate: at("2024-03-05", 9), Status: "scheduled", Price: price(2000), PaymentMethod: strptr("cartao")},
		{ID: 3, Service: tosa, AppointmentDate: at("2024-03-06", 9), Status: "scheduled", Price: price(3000), PaymentMethod: strptr("cartao")},
		{ID: 4, Service: banho, AppointmentDate: at("2024-03-06", 11), Status: "scheduled", Price: price(500), PaymentMethod: strptr("pix")},
	}

	report := BuildReport(rows, loc())

	for i := 1; i < len(report.ByDay); i++ {
		if report.ByDay[i-1].Day > report.ByDay[i].Day {
			t.Fatalf("by_day out of order: %s > %s", report.ByDay[i-1].Day, report.ByDay[i].Day)
		}
	}
	for i := 1; i < len(report.ByService); i++ {
		if report.ByService[i-1].Count < report.ByService[i].Count {
			t.Fatalf("by_service out of order at %d", i)
		}
	}
	for i := 1; i < len(report.ByPaymentMethod); i++ {
		if report.ByPaymentMethod[i-1].Total < report.ByPaymentMethod[i].Total {
			t.Fatalf("by_payment_method out of order at %d", i)
		}
	}

	// Tosa (2) antes de Banho (1) e "no service" (1); empate em 1
	// mantém ordem de chegada: "no service" veio primeiro.
	if report.ByService[0].Name != "Tosa" {
		t.Fatalf("by_service[0] = %+v", report.ByService[0])
	}
	if report.ByService[1].Name != NoService || report.ByService[2].Name != "Banho" {
		t.Fatalf("tie order broken: %+v", report.ByService)
	}
}

func TestBuildReportIdempotent(t *testing.T) {
	rows := sampleDay()

	a := BuildReport(rows, loc())
	b := BuildReport(rows, loc())

	if !reflect.DeepEqual(a, b) {
		t.Fatal("same input produced different reports")
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil, loc())

	if report.Total != 0 || report.Count != 0 {
		t.Fatalf("empty report = %+v", report)
	}
	if report.ByDay == nil || report.ByService == nil || report.ByPaymentMethod == nil {
		t.Fatal("groupings must be empty slices, not nil")
	}
}
