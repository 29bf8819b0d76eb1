package fixtures

import (
	"encoding/json"
	"testing"
)

func TestCredentials(t *testing.T) {
	t.Parallel()

	c := Credentials()

	if c.Email != "admin@test.com" || c.Password != "Password123!" {
		t.Errorf("unexpected login pair %q / %q", c.Email, c.Password)
	}
	if c.Name != "Admin" || c.Surname != "Test" || c.Role != "ADMIN" {
		t.Errorf("unexpected profile %+v", c)
	}
}

func TestEvents_OrderAndTargets(t *testing.T) {
	t.Parallel()

	events := Events()

	want := []struct {
		title string
		euros string
	}{
		{"Concierto Solidario de Primavera", "5000.00"},
		{"Cena de Gala Benéfica", "15000.00"},
		{"XI Marcha por la Vida", "8000.00"},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, w := range want {
		if events[i].Title != w.title {
			t.Errorf("event %d: expected %q, got %q", i, w.title, events[i].Title)
		}
		if events[i].Target.String() != w.euros {
			t.Errorf("event %d: expected target %s, got %s", i, w.euros, events[i].Target)
		}
	}
}

func TestEvents_ScheduleIsConsistent(t *testing.T) {
	t.Parallel()

	for _, e := range Events() {
		if !e.EndsAt.After(e.StartsAt) {
			t.Errorf("%s: end %v is not after start %v", e.Title, e.EndsAt, e.StartsAt)
		}
		if e.Description == "" || e.Venue == "" || e.ImageURL == "" {
			t.Errorf("%s: incomplete record", e.Title)
		}
	}
}

func TestEvents_WireFormat(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Events()[1])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["fechaInicio"] != "2026-05-20T21:00:00Z" || got["fechaFin"] != "2026-05-21T01:00:00Z" {
		t.Errorf("unexpected schedule %v -> %v", got["fechaInicio"], got["fechaFin"])
	}
	if got["lugar"] != "Hotel Puente Romano, Marbella" {
		t.Errorf("unexpected venue %v", got["lugar"])
	}
}

func TestEvents_ReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	first := Events()
	first[0].Title = "changed"

	if Events()[0].Title != "Concierto Solidario de Primavera" {
		t.Error("expected mutation of a returned slice not to leak")
	}
}
