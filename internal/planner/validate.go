package planner

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/chris/daygo/internal/db"
)

// DropCounts records why proposed events were rejected, by reason. It goes
// out in the response's debug block so a bad run can be diagnosed from the
// client side.
type DropCounts struct {
	MissingFields int `json:"missing_fields,omitempty"`
	BadTimeFormat int `json:"bad_time_format,omitempty"`
	Inverted      int `json:"inverted,omitempty"`
	OffGrid       int `json:"off_grid,omitempty"`
	OutsideWindow int `json:"outside_window,omitempty"`
	Overlap       int `json:"overlap,omitempty"`
}

func (d DropCounts) Total() int {
	return d.MissingFields + d.BadTimeFormat + d.Inverted + d.OffGrid + d.OutsideWindow + d.Overlap
}

var (
	shortTimeRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	fullTimeRe  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]:00$`)
)

// ValidateEvents treats the parsed model output as untrusted input: prompt
// instructions are requested, never assumed followed. Times are normalized
// to HH:MM:00; events with missing fields, malformed or inverted times,
// starts/ends off the 30-minute grid, or spans outside the planning window
// are dropped. Survivors are swept chronologically and any that overlap an
// already-accepted or pre-existing event are dropped too (earlier wins).
func ValidateEvents(events []PlannedEvent, existing []db.ScheduleEvent, wakeTime, bedTime string) ([]PlannedEvent, DropCounts) {
	var drops DropCounts
	wake := normalizeTime(wakeTime)
	bed := normalizeTime(bedTime)

	valid := make([]PlannedEvent, 0, len(events))
	for _, e := range events {
		e.StartTime = normalizeTime(e.StartTime)
		e.EndTime = normalizeTime(e.EndTime)

		switch {
		case e.Title == "" || e.StartTime == "" || e.EndTime == "":
			drops.MissingFields++
		case !fullTimeRe.MatchString(e.StartTime) || !fullTimeRe.MatchString(e.EndTime):
			drops.BadTimeFormat++
		case e.StartTime >= e.EndTime:
			drops.Inverted++
		case !onGrid(e.StartTime) || !onGrid(e.EndTime):
			drops.OffGrid++
		case wake != "" && e.StartTime < wake, bed != "" && e.EndTime > bed:
			drops.OutsideWindow++
		default:
			valid = append(valid, e)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool { return valid[i].StartTime < valid[j].StartTime })

	accepted := make([]PlannedEvent, 0, len(valid))
	for _, e := range valid {
		if overlapsAccepted(e, accepted) || overlapsExisting(e, existing) {
			drops.Overlap++
			continue
		}
		accepted = append(accepted, e)
	}
	return accepted, drops
}

// normalizeTime canonicalizes model output to zero-padded HH:MM:00 so that
// lexicographic comparison is also chronological. Unrecognized values pass
// through for the format check to reject.
func normalizeTime(t string) string {
	t = strings.TrimSpace(t)
	if shortTimeRe.MatchString(t) {
		t += ":00"
	}
	if fullTimeRe.MatchString(t) && len(t) == 7 {
		t = "0" + t
	}
	return t
}

func onGrid(t string) bool {
	// t is HH:MM:00 by the time this runs
	min, err := strconv.Atoi(t[3:5])
	if err != nil {
		return false
	}
	return min%30 == 0
}

func overlapsAccepted(e PlannedEvent, accepted []PlannedEvent) bool {
	for _, a := range accepted {
		if e.StartTime < a.EndTime && e.EndTime > a.StartTime {
			return true
		}
	}
	return false
}

func overlapsExisting(e PlannedEvent, existing []db.ScheduleEvent) bool {
	for _, x := range existing {
		if e.StartTime < normalizeTime(x.EndTime) && e.EndTime > normalizeTime(x.StartTime) {
			return true
		}
	}
	return false
}
