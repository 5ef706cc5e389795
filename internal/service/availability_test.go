package service

import (
	"testing"

	"github.com/dinehall/restaurant-reservation/internal/model"
)

func TestFilterAvailable(t *testing.T) {
	tables := []model.Table{
		{TableNumber: "T01", Capacity: 2},
		{TableNumber: "T02", Capacity: 4},
		{TableNumber: "T03", Capacity: 6},
	}

	got := FilterAvailable(tables, nil)
	if len(got) != 3 {
		t.Fatalf("no reservations: expected 3 tables, got %d", len(got))
	}

	got = FilterAvailable(tables, []string{"T02"})
	if len(got) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(got))
	}
	if got[0].TableNumber != "T01" || got[1].TableNumber != "T03" {
		t.Errorf("order not preserved: %q, %q", got[0].TableNumber, got[1].TableNumber)
	}

	got = FilterAvailable(tables, []string{"T01", "T02", "T03"})
	if len(got) != 0 {
		t.Fatalf("all taken: expected 0 tables, got %d", len(got))
	}

	// Taken numbers with no matching table are ignored.
	got = FilterAvailable(tables, []string{"T99"})
	if len(got) != 3 {
		t.Fatalf("unknown taken number: expected 3 tables, got %d", len(got))
	}
}

func TestValidateSlot(t *testing.T) {
	if err := ValidateSlot("2024-06-01", "18:00"); err != nil {
		t.Fatalf("valid slot rejected: %v", err)
	}
	cases := []struct {
		name, date, time string
	}{
		{"empty date", "", "18:00"},
		{"bad date", "June 1", "18:00"},
		{"wrong date layout", "01-06-2024", "18:00"},
		{"empty time", "2024-06-01", ""},
		{"bad time", "2024-06-01", "25:99"},
		{"wrong time layout", "2024-06-01", "6:00 PM"},
	}
	for _, c := range cases {
		err := ValidateSlot(c.date, c.time)
		if err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
			continue
		}
		if !IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got %v", c.name, err)
		}
	}
}
