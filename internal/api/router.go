// Package api provides HTTP routing and handlers for the REST API.
package api

import (
	"net/http"

	"github.com/chris/daygo/internal/db"
	"github.com/chris/daygo/internal/planner"
	"github.com/gorilla/mux"
)

// NewRouter wires every API route. All dependencies are injected; nothing
// is ambient.
func NewRouter(database *db.DB, pl *planner.Planner) *mux.Router {
	r := mux.NewRouter()
	r.Use(logging)
	r.Use(recovery)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", health).Methods("GET")

	// Everything below needs a caller identity.
	authed := api.NewRoute().Subrouter()
	authed.Use(requireUser)

	// Planning
	authed.HandleFunc("/calendar-rules/apply", applyCalendarRules(pl)).Methods("POST")
	authed.HandleFunc("/plan", planDay(pl)).Methods("POST")

	// Calendar rules
	authed.HandleFunc("/calendar-rules", listRules(database)).Methods("GET")
	authed.HandleFunc("/calendar-rules", createRule(database)).Methods("POST")
	authed.HandleFunc("/calendar-rules/reorder", reorderRules(database)).Methods("POST")
	authed.HandleFunc("/calendar-rules/{id}", updateRule(database)).Methods("PATCH")
	authed.HandleFunc("/calendar-rules/{id}", deleteRule(database)).Methods("DELETE")

	// Schedule events
	authed.HandleFunc("/schedule", listEvents(database)).Methods("GET")
	authed.HandleFunc("/schedule", createEvent(database)).Methods("POST")
	authed.HandleFunc("/schedule/ai", deleteAIEvents(database)).Methods("DELETE")
	authed.HandleFunc("/schedule/{id}", updateEvent(database)).Methods("PATCH")
	authed.HandleFunc("/schedule/{id}", deleteEvent(database)).Methods("DELETE")
	authed.HandleFunc("/schedule/{id}/complete", completeEvent(database)).Methods("POST")

	// Habits
	authed.HandleFunc("/habits", listHabits(database)).Methods("GET")
	authed.HandleFunc("/habits", createHabit(database)).Methods("POST")
	authed.HandleFunc("/habits/{id}", updateHabit(database)).Methods("PATCH")
	authed.HandleFunc("/habits/{id}", deleteHabit(database)).Methods("DELETE")
	authed.HandleFunc("/habits/{id}/log", logHabit(database)).Methods("POST")

	// Todos
	authed.HandleFunc("/todos", listTodos(database)).Methods("GET")
	authed.HandleFunc("/todos", createTodo(database)).Methods("POST")
	authed.HandleFunc("/todos/reorder", reorderTodos(database)).Methods("POST")
	authed.HandleFunc("/todos/{id}", updateTodo(database)).Methods("PATCH")
	authed.HandleFunc("/todos/{id}", deleteTodo(database)).Methods("DELETE")

	// Goals
	authed.HandleFunc("/goals", listGoals(database)).Methods("GET")
	authed.HandleFunc("/goals", createGoal(database)).Methods("POST")
	authed.HandleFunc("/goals/{id}", updateGoal(database)).Methods("PATCH")
	authed.HandleFunc("/goals/{id}", deleteGoal(database)).Methods("DELETE")

	// Visions
	authed.HandleFunc("/visions", listVisions(database)).Methods("GET")
	authed.HandleFunc("/visions", createVision(database)).Methods("POST")
	authed.HandleFunc("/visions/reorder", reorderVisions(database)).Methods("POST")
	authed.HandleFunc("/visions/{id}", updateVision(database)).Methods("PATCH")
	authed.HandleFunc("/visions/{id}", deleteVision(database)).Methods("DELETE")

	// Mantras
	authed.HandleFunc("/mantras", listMantras(database)).Methods("GET")
	authed.HandleFunc("/mantras", createMantra(database)).Methods("POST")
	authed.HandleFunc("/mantras/reorder", reorderMantras(database)).Methods("POST")
	authed.HandleFunc("/mantras/{id}", updateMantra(database)).Methods("PATCH")
	authed.HandleFunc("/mantras/{id}", deleteMantra(database)).Methods("DELETE")

	// Preferences and daily notes
	authed.HandleFunc("/preferences", getPreferences(database)).Methods("GET")
	authed.HandleFunc("/preferences", setPreferences(database)).Methods("PUT")
	authed.HandleFunc("/daily-note", getDailyNote(database)).Methods("GET")
	authed.HandleFunc("/daily-note", setDailyNote(database)).Methods("PUT")

	// Schedule templates
	authed.HandleFunc("/templates", listTemplates(database)).Methods("GET")
	authed.HandleFunc("/templates", saveTemplate(database)).Methods("POST")
	authed.HandleFunc("/templates/{id}", deleteTemplate(database)).Methods("DELETE")
	authed.HandleFunc("/templates/{id}/apply", applyTemplate(database)).Methods("POST")

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
