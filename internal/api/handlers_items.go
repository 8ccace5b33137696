package api

// Visions and mantras share the same shape: a short text with an active
// flag and a sort position. The handlers mirror each other deliberately.

import (
	"encoding/json"
	"net/http"

	"github.com/chris/daygo/internal/db"
	"github.com/gorilla/mux"
)

type textItemRequest struct {
	Text     *string `json:"text"`
	IsActive *bool   `json:"is_active"`
}

func (req textItemRequest) fields() map[string]any {
	fields := make(map[string]any)
	if req.Text != nil {
		fields["text"] = *req.Text
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	return fields
}

func listVisions(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visions, err := database.ListVisions(r.Context(), userID(r), r.URL.Query().Get("active") == "true")
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if visions == nil {
			visions = []db.Vision{}
		}
		writeJSON(w, http.StatusOK, visions)
	}
}

func createVision(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "text is required")
			return
		}
		id, err := database.CreateVision(r.Context(), userID(r), req.Text)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func updateVision(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		if err := database.UpdateVision(r.Context(), userID(r), mux.Vars(r)["id"], req.fields()); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func deleteVision(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.DeleteVision(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func reorderVisions(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			IDs []string `json:"ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			writeError(w, http.StatusBadRequest, errBadRequest, "ids is required")
			return
		}
		if err := database.ReorderVisions(r.Context(), userID(r), req.IDs); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "reordered"})
	}
}

func listMantras(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mantras, err := database.ListMantras(r.Context(), userID(r), r.URL.Query().Get("active") == "true")
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if mantras == nil {
			mantras = []db.Mantra{}
		}
		writeJSON(w, http.StatusOK, mantras)
	}
}

func createMantra(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			writeError(w, http.StatusBadRequest, errBadRequest, "text is required")
			return
		}
		id, err := database.CreateMantra(r.Context(), userID(r), req.Text)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func updateMantra(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req textItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errBadRequest, "invalid request body")
			return
		}
		if err := database.UpdateMantra(r.Context(), userID(r), mux.Vars(r)["id"], req.fields()); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func deleteMantra(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.DeleteMantra(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

func reorderMantras(database *db.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			IDs []string `json:"ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			writeError(w, http.StatusBadRequest, errBadRequest, "ids is required")
			return
		}
		if err := database.ReorderMantras(r.Context(), userID(r), req.IDs); err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "reordered"})
	}
}
