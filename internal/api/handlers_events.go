package api

import (
	"encoding/json"
	"net/http"

	"github.com/chris/daygo/internal/db"
	"github.com/gorilla/mux"
)

func listEvents(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "date query parameter is required")
			return
		}
		events, err := database.ListEvents(r.Context(), userID(r), date)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if events == nil {
			events = []db.ScheduleEvent{}
		}
		writeJSON(w, http.StatusOK, events)
	}
}

func createEvent(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Date        string `json:"date"`
			StartTime   string `json:"start_time"`
			EndTime     string `json:"end_time"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		if req.Title == "" || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "title, date, start_time, and end_time are required")
			return
		}
		if req.StartTime >= req.EndTime {
			writeError(w, http.StatusBadRequest, errBadRequest, "start_time must be before end_time")
			return
		}
		event, err := database.CreateEvent(r.Context(), userID(r), req.Date, db.EventInput{
			Title:       req.Title,
			Description: req.Description,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
		})
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, event)
	}
}

func updateEvent(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title       *string `json:"title"`
			Description *string `json:"description"`
			StartTime   *string `json:"start_time"`
			EndTime     *string `json:"end_time"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		fields := make(map[string]any)
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.StartTime != nil {
			fields["start_time"] = *req.StartTime
		}
		if req.EndTime != nil {
			fields["end_time"] = *req.EndTime
		}
		if err := database.UpdateEvent(r.Context(), userID(r), mux.Vars(r)["id"], fields); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func deleteEvent(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.DeleteEvent(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func completeEvent(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Completed bool `json:"completed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		if err := database.SetEventCompleted(r.Context(), userID(r), mux.Vars(r)["id"], req.Completed); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

// deleteAIEvents bulk-clears the AI-generated portion of a date's schedule.
func deleteAIEvents(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "date query parameter is required")
			return
		}
		n, err := database.DeleteAIEvents(r.Context(), userID(r), date)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": n})
	}
}
