package api

import (
	"encoding/json"
	"net/http"

	"github.com/chris/daygo/internal/db"
	"github.com/gorilla/mux"
)

func listGoals(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goals, err := database.ListGoals(r.Context(), userID(r))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if goals == nil {
			goals = []db.Goal{}
		}
		writeJSON(w, http.StatusOK, goals)
	}
}

func createGoal(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var g db.Goal
		if err := json.NewDecoder(r.Body).Decode(&g); err != nil || g.Title == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "title is required")
			return
		}
		id, err := database.CreateGoal(r.Context(), userID(r), g)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func updateGoal(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title         *string  `json:"title"`
			Description   *string  `json:"description"`
			MetricName    *string  `json:"metric_name"`
			MetricTarget  *float64 `json:"metric_target"`
			MetricCurrent *float64 `json:"metric_current"`
			Deadline      *string  `json:"deadline"`
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
		if req.MetricName != nil {
			fields["metric_name"] = *req.MetricName
		}
		if req.MetricTarget != nil {
			fields["metric_target"] = *req.MetricTarget
		}
		if req.MetricCurrent != nil {
			fields["metric_current"] = *req.MetricCurrent
		}
		if req.Deadline != nil {
			fields["deadline"] = *req.Deadline
		}
		if err := database.UpdateGoal(r.Context(), userID(r), mux.Vars(r)["id"], fields); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func deleteGoal(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.DeleteGoal(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
