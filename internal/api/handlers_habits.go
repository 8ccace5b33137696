package api

import (
	"encoding/json"
	"net/http"

	"github.com/chris/daygo/internal/db"
	"github.com/gorilla/mux"
)

func listHabits(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("active") == "true"
		habits, err := database.ListHabits(r.Context(), userID(r), activeOnly)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if habits == nil {
			habits = []db.Habit{}
		}

		// With a date, join in that day's completion state.
		if date := r.URL.Query().Get("date"); date != "" {
			completion, err := database.HabitCompletion(r.Context(), userID(r), date)
			if err != nil {
				writeStoreError(w, err)
				return
			}
			type habitWithLog struct {
				db.Habit
				Completed bool `json:"completed"`
			}
			out := make([]habitWithLog, len(habits))
			for i, h := range habits {
				out[i] = habitWithLog{Habit: h, Completed: completion[h.ID]}
			}
			writeJSON(w, http.StatusOK, out)
			return
		}
		writeJSON(w, http.StatusOK, habits)
	}
}

func createHabit(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "name is required")
			return
		}
		id, err := database.CreateHabit(r.Context(), userID(r), req.Name, req.Description)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func updateHabit(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name        *string `json:"name"`
			Description *string `json:"description"`
			IsActive    *bool   `json:"is_active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		fields := make(map[string]any)
		if req.Name != nil {
			fields["name"] = *req.Name
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.IsActive != nil {
			fields["is_active"] = *req.IsActive
		}
		if err := database.UpdateHabit(r.Context(), userID(r), mux.Vars(r)["id"], fields); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func deleteHabit(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.DeleteHabit(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func logHabit(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Date      string `json:"date"`
			Completed bool   `json:"completed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "date is required")
			return
		}
		if err := database.LogHabit(r.Context(), userID(r), mux.Vars(r)["id"], req.Date, req.Completed); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "logged"})
	}
}
