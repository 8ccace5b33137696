package api

import (
	"encoding/json"
	"net/http"

	"github.com/chris/daygo/internal/db"
	"github.com/chris/daygo/internal/planner"
)

// applyRequest is the stateless planning contract: the caller supplies the
// whole context in the body and gets a proposed schedule back. Nothing is
// persisted.
type applyRequest struct {
	Rules          []db.CalendarRule  `json:"rules"`
	ExistingEvents []db.ScheduleEvent `json:"existingEvents"`
	Habits         []db.Habit         `json:"habits"`
	Todos          []db.Todo          `json:"todos"`
	Goals          []db.Goal          `json:"goals"`
	Visions        []db.Vision        `json:"visions"`
	Mantras        []db.Mantra        `json:"mantras"`
	Date           string             `json:"date"`
	DailyNote      string             `json:"dailyNote"`
	Preferences    *struct {
		WakeTime string `json:"wake_time"`
		BedTime  string `json:"bed_time"`
	} `json:"preferences"`
}

func applyCalendarRules(pl *planner.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		if req.Date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "date is required")
			return
		}

		pctx := &planner.Context{
			Date:           req.Date,
			WakeTime:       db.DefaultWakeTime,
			BedTime:        db.DefaultBedTime,
			DailyNote:      req.DailyNote,
			Rules:          req.Rules,
			ExistingEvents: req.ExistingEvents,
			Habits:         req.Habits,
			Todos:          req.Todos,
			Goals:          req.Goals,
			Visions:        req.Visions,
			Mantras:        req.Mantras,
		}
		if req.Preferences != nil {
			if req.Preferences.WakeTime != "" {
				pctx.WakeTime = req.Preferences.WakeTime
			}
			if req.Preferences.BedTime != "" {
				pctx.BedTime = req.Preferences.BedTime
			}
		}

		result, err := pl.ApplyRules(r.Context(), pctx)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// planDay runs the stored-context pipeline: gather, plan, and atomically
// replace the date's AI-generated events.
func planDay(pl *planner.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Date string `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		if req.Date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "date is required")
			return
		}

		events, err := pl.PlanDay(r.Context(), userID(r), req.Date)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"events": events})
	}
}
