package api

import (
	"encoding/json"
	"net/http"

	"github.com/chris/daygo/internal/db"
	"github.com/gorilla/mux"
)

func listTemplates(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := database.ListTemplates(r.Context(), userID(r))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if templates == nil {
			templates = []db.ScheduleTemplate{}
		}
		writeJSON(w, http.StatusOK, templates)
	}
}

// saveTemplate snapshots the named date's schedule for later reuse.
func saveTemplate(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Date        string `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "name and date are required")
			return
		}
		id, err := database.SaveTemplate(r.Context(), userID(r), req.Name, req.Description, req.Date)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func deleteTemplate(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.DeleteTemplate(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func applyTemplate(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Date string `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "date is required")
			return
		}
		events, err := database.ApplyTemplate(r.Context(), userID(r), mux.Vars(r)["id"], req.Date)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"events": events})
	}
}
