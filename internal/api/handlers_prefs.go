package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/chris/daygo/internal/db"
)

var prefTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

func getPreferences(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := database.GetPreferences(r.Context(), userID(r))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, prefs)
	}
}

func setPreferences(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			WakeTime string `json:"wake_time"`
			BedTime  string `json:"bed_time"`
			AutoPlan bool   `json:"auto_plan"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		if req.WakeTime == "" {
			req.WakeTime = db.DefaultWakeTime
		}
		if req.BedTime == "" {
			req.BedTime = db.DefaultBedTime
		}
		if !prefTimeRe.MatchString(req.WakeTime) || !prefTimeRe.MatchString(req.BedTime) {
			writeError(w, http.StatusBadRequest, errBadRequest, "times must be HH:MM or HH:MM:SS")
			return
		}
		if err := database.SetPreferences(r.Context(), userID(r), fullTime(req.WakeTime), fullTime(req.BedTime), req.AutoPlan); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

// fullTime widens HH:MM to the HH:MM:SS form the store uses.
func fullTime(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}

func getDailyNote(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "date query parameter is required")
			return
		}
		note, err := database.GetDailyNote(r.Context(), userID(r), date)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"date": date, "note": note})
	}
}

func setDailyNote(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Date string `json:"date"`
			Note string `json:"note"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "date is required")
			return
		}
		if err := database.SetDailyNote(r.Context(), userID(r), req.Date, req.Note); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}
