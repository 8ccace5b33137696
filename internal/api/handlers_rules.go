package api

import (
	"encoding/json"
	"net/http"

	"github.com/chris/daygo/internal/db"
	"github.com/gorilla/mux"
)

func listRules(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rules, err := database.ListRules(r.Context(), userID(r))
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if rules == nil {
			rules = []db.CalendarRule{}
		}
		writeJSON(w, http.StatusOK, rules)
	}
}

func createRule(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RuleText string `json:"rule_text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RuleText == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "rule_text is required")
			return
		}
		rule, err := database.CreateRule(r.Context(), userID(r), req.RuleText)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rule)
	}
}

func updateRule(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RuleText *string `json:"rule_text"`
			IsActive *bool   `json:"is_active"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		fields := make(map[string]any)
		if req.RuleText != nil {
			fields["rule_text"] = *req.RuleText
		}
		if req.IsActive != nil {
			fields["is_active"] = *req.IsActive
		}
		if err := database.UpdateRule(r.Context(), userID(r), mux.Vars(r)["id"], fields); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func deleteRule(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.DeleteRule(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func reorderRules(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			IDs []string `json:"ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			writeError(w, http.StatusBadRequest, errBadRequest, "ids is required")
			return
		}
		if err := database.ReorderRules(r.Context(), userID(r), req.IDs); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "reordered"})
	}
}
