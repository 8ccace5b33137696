package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// PlannedEvent is one entry of the model's proposed schedule, before
// validation.
type PlannedEvent struct {
	Title       string `json:"title"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description,omitempty"`
}

// ErrUnparsableResponse reports that the model's reply contained no JSON
// events array. This is the one policy for every call site: the error is
// surfaced to the caller, never swallowed into an empty schedule.
var ErrUnparsableResponse = errors.New("could not parse AI scheduling response")

var fenceReplacer = strings.NewReplacer("```json", "", "```", "")

// ParseEvents extracts the JSON array of events from raw model output.
// Markdown code fences are stripped and any prose around the array is
// ignored; the array itself must be valid JSON.
func ParseEvents(raw string) ([]PlannedEvent, error) {
	cleaned := strings.TrimSpace(fenceReplacer.Replace(raw))

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON array found", ErrUnparsableResponse)
	}
	candidate := cleaned[start : end+1]

	parsed := gjson.Parse(candidate)
	if !gjson.Valid(candidate) || !parsed.IsArray() {
		return nil, fmt.Errorf("%w: malformed JSON array", ErrUnparsableResponse)
	}

	events := []PlannedEvent{}
	for _, item := range parsed.Array() {
		events = append(events, PlannedEvent{
			Title:       item.Get("title").String(),
			StartTime:   item.Get("start_time").String(),
			EndTime:     item.Get("end_time").String(),
			Description: item.Get("description").String(),
		})
	}
	return events, nil
}
