package planner

import (
	"errors"
	"testing"
)

func TestParseEventsPlainArray(t *testing.T) {
	raw := `[{"title": "Deep Work", "start_time": "09:00:00", "end_time": "10:30:00", "description": "focus block"}]`

	events, err := ParseEvents(raw)
	if err != nil {
		t.Fatalf("ParseEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Title != "Deep Work" || e.StartTime != "09:00:00" || e.EndTime != "10:30:00" || e.Description != "focus block" {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestParseEventsStripsCodeFences(t *testing.T) {
	raw := "```json\n[{\"title\": \"Meditate\", \"start_time\": \"07:00:00\", \"end_time\": \"07:30:00\"}]\n```"

	events, err := ParseEvents(raw)
	if err != nil {
		t.Fatalf("ParseEvents: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Meditate" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestParseEventsIgnoresSurroundingProse(t *testing.T) {
	raw := `Here is your schedule for the day:

[{"title": "Breakfast", "start_time": "08:00:00", "end_time": "08:30:00"}]

Let me know if you'd like changes!`

	events, err := ParseEvents(raw)
	if err != nil {
		t.Fatalf("ParseEvents: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Breakfast" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestParseEventsEmptyArray(t *testing.T) {
	events, err := ParseEvents("[]")
	if err != nil {
		t.Fatalf("ParseEvents: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestParseEventsNoArray(t *testing.T) {
	for _, raw := range []string{
		"Sorry, I can't plan your day right now.",
		"",
		`{"title": "Not an array"}`,
	} {
		_, err := ParseEvents(raw)
		if !errors.Is(err, ErrUnparsableResponse) {
			t.Errorf("ParseEvents(%q): expected ErrUnparsableResponse, got %v", raw, err)
		}
	}
}

func TestParseEventsMalformedJSON(t *testing.T) {
	_, err := ParseEvents(`[{"title": "Broken", "start_time": }]`)
	if !errors.Is(err, ErrUnparsableResponse) {
		t.Errorf("expected ErrUnparsableResponse, got %v", err)
	}
}

func TestParseEventsMissingFieldsPassThrough(t *testing.T) {
	// Structural parsing succeeds; field-level problems are validation's job.
	events, err := ParseEvents(`[{"title": "No Times"}]`)
	if err != nil {
		t.Fatalf("ParseEvents: %v", err)
	}
	if len(events) != 1 || events[0].StartTime != "" {
		t.Errorf("unexpected events: %+v", events)
	}
}
