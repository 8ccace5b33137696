package api

import (
	"encoding/json"
	"net/http"

	"github.com/chris/daygo/internal/db"
	"github.com/gorilla/mux"
)

func listTodos(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "date query parameter is required")
			return
		}
		todos, err := database.ListTodos(r.Context(), userID(r), date)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if todos == nil {
			todos = []db.Todo{}
		}
		writeJSON(w, http.StatusOK, todos)
	}
}

func createTodo(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
			Date string `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" || req.Date == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "text and date are required")
			return
		}
		id, err := database.CreateTodo(r.Context(), userID(r), req.Text, req.Date)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func updateTodo(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text      *string `json:"text"`
			Completed *bool   `json:"completed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		fields := make(map[string]any)
		if req.Text != nil {
			fields["text"] = *req.Text
		}
		if req.Completed != nil {
			fields["completed"] = *req.Completed
		}
		if err := database.UpdateTodo(r.Context(), userID(r), mux.Vars(r)["id"], fields); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func deleteTodo(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.DeleteTodo(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func reorderTodos(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			IDs []string `json:"ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			writeError(w, http.StatusBadRequest, errBadRequest, "ids is required")
			return
		}
		if err := database.ReorderTodos(r.Context(), userID(r), req.IDs); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "reordered"})
	}
}
