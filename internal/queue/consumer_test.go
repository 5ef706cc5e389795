package queue

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatEventLineCreated(t *testing.T) {
	ev := ReservationEvent{
		Kind:            KindCreated,
		ReservationID:   7,
		CustomerName:    "John Doe",
		TableNumber:     "T01",
		ReservationDate: "2024-06-01",
		ReservationTime: "18:00",
		PartySize:       2,
		Status:          "pending",
		OccurredAt:      "2024-06-01T12:00:00Z",
	}
	line := formatEventLine(ev)
	for _, want := range []string{"Reservation created", "reservation_id=7", "table=T01", "slot=2024-06-01 18:00", "status=pending"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("line not newline-terminated: %q", line)
	}
}

func TestFormatEventLineStatusChanged(t *testing.T) {
	ev := ReservationEvent{
		Kind:      KindStatusChanged,
		Status:    "seated",
		OldStatus: "confirmed",
	}
	line := formatEventLine(ev)
	if !strings.Contains(line, "status=confirmed->seated") {
		t.Errorf("line %q missing transition", line)
	}
}

func TestEventRoundTrip(t *testing.T) {
	ev := ReservationEvent{Kind: KindStatusChanged, ReservationID: 3, Status: "cancelled", OldStatus: "pending"}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	var got ReservationEvent
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	if got != ev {
		t.Errorf("round trip mismatch: %+v != %+v", got, ev)
	}
}
