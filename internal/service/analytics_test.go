package service

import (
	"testing"

	"github.com/dinehall/restaurant-reservation/internal/model"
)

func sampleData() ([]model.Reservation, []model.Table) {
	reservations := []model.Reservation{
		{CustomerName: "John Doe", CustomerEmail: "john@example.com", TableNumber: "T01",
			ReservationDate: "2024-06-01", ReservationTime: "18:00", PartySize: 2},
		{CustomerName: "John Doe", CustomerEmail: "john@example.com", TableNumber: "T02",
			ReservationDate: "2024-06-02", ReservationTime: "18:30", PartySize: 4},
		{CustomerName: "Jane Smith", CustomerEmail: "jane@example.com", TableNumber: "T01",
			ReservationDate: "2024-06-01", ReservationTime: "20:00", PartySize: 2},
	}
	tables := []model.Table{
		{TableNumber: "T01", Capacity: 2},
		{TableNumber: "T02", Capacity: 4},
		{TableNumber: "T03", Capacity: 6},
	}
	return reservations, tables
}

func TestBuildAnalyticsRevenue(t *testing.T) {
	reservations, tables := sampleData()
	report := BuildAnalytics(reservations, tables)

	if got := report.DailyRevenue["2024-06-01"]; got != 4*RevenuePerHead {
		t.Errorf("daily revenue 2024-06-01 = %d, want %d", got, 4*RevenuePerHead)
	}
	if got := report.DailyRevenue["2024-06-02"]; got != 4*RevenuePerHead {
		t.Errorf("daily revenue 2024-06-02 = %d, want %d", got, 4*RevenuePerHead)
	}
	if report.Summary.TotalRevenue != 8*RevenuePerHead {
		t.Errorf("total revenue = %d, want %d", report.Summary.TotalRevenue, 8*RevenuePerHead)
	}
	if report.Summary.TotalReservations != 3 {
		t.Errorf("total reservations = %d, want 3", report.Summary.TotalReservations)
	}
	wantAvg := 8.0 / 3.0
	if report.Summary.AveragePartySize != wantAvg {
		t.Errorf("average party size = %v, want %v", report.Summary.AveragePartySize, wantAvg)
	}
}

func TestBuildAnalyticsTableStats(t *testing.T) {
	reservations, tables := sampleData()
	report := BuildAnalytics(reservations, tables)

	if len(report.TableStats) != 3 {
		t.Fatalf("expected stats for 3 tables, got %d", len(report.TableStats))
	}
	// T01: 2 reservations x party 2 = 200; T02: 1 x party 4 = 200; ties keep
	// inventory order, so T01 leads.
	if report.TableStats[0].TableNumber != "T01" {
		t.Errorf("best table = %q, want T01", report.TableStats[0].TableNumber)
	}
	if report.TableStats[0].TotalReservations != 2 {
		t.Errorf("T01 reservations = %d, want 2", report.TableStats[0].TotalReservations)
	}
	if report.TableStats[0].AveragePartySize != 2 {
		t.Errorf("T01 average party = %v, want 2", report.TableStats[0].AveragePartySize)
	}
	// T03 has no reservations at all.
	last := report.TableStats[2]
	if last.TableNumber != "T03" || last.TotalReservations != 0 || last.TotalRevenue != 0 {
		t.Errorf("idle table stats wrong: %+v", last)
	}
	if report.Summary.BestTable == nil || report.Summary.BestTable.TableNumber != "T01" {
		t.Errorf("summary best table wrong: %+v", report.Summary.BestTable)
	}
}

func TestBuildAnalyticsPeakHoursAndCustomers(t *testing.T) {
	reservations, tables := sampleData()
	report := BuildAnalytics(reservations, tables)

	if len(report.PeakHours) != 2 {
		t.Fatalf("expected 2 peak hours, got %d", len(report.PeakHours))
	}
	if report.PeakHours[0].Hour != "18:00" || report.PeakHours[0].Count != 2 {
		t.Errorf("top peak hour = %+v, want 18:00 x2", report.PeakHours[0])
	}

	if len(report.CustomerStats) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(report.CustomerStats))
	}
	top := report.CustomerStats[0]
	if top.Email != "john@example.com" || top.TotalVisits != 2 || top.TotalSpent != 6*RevenuePerHead {
		t.Errorf("top customer = %+v", top)
	}
}

func TestBuildAnalyticsEmpty(t *testing.T) {
	report := BuildAnalytics(nil, nil)
	if report.Summary.TotalRevenue != 0 || report.Summary.TotalReservations != 0 {
		t.Errorf("empty report summary = %+v", report.Summary)
	}
	if report.Summary.AveragePartySize != 0 {
		t.Errorf("empty report average party = %v", report.Summary.AveragePartySize)
	}
	if report.Summary.BestTable != nil {
		t.Errorf("empty report best table = %+v", report.Summary.BestTable)
	}
	if len(report.TableStats) != 0 || len(report.PeakHours) != 0 || len(report.CustomerStats) != 0 {
		t.Errorf("empty report has aggregates: %+v", report)
	}
}
