package planner

import (
	"strings"
	"testing"

	"github.com/chris/daygo/internal/db"
)

func TestBuildPromptsDeterministic(t *testing.T) {
	c := &Context{
		Date:     "2026-03-01",
		WakeTime: "07:00:00",
		BedTime:  "22:00:00",
		Habits:   []db.Habit{{Name: "Meditate", Description: "10 minutes"}},
		Todos:    []db.Todo{{Text: "buy milk"}},
	}

	sys1, usr1 := BuildPrompts(c)
	sys2, usr2 := BuildPrompts(c)
	if sys1 != sys2 || usr1 != usr2 {
		t.Error("same context must produce identical prompts")
	}
}

func TestBuildPromptsEmptyContextFallbacks(t *testing.T) {
	c := &Context{Date: "2026-03-01"}
	_, usr := BuildPrompts(c)

	for _, want := range []string{
		noRulesFallback,
		noEventsFallback,
		noHabitsFallback,
		noTodosFallback,
		noGoalsFallback,
		noVisionsFallback,
		noMantrasFallback,
		noNotesFallback,
	} {
		if !strings.Contains(usr, want) {
			t.Errorf("expected fallback %q in user prompt", want)
		}
	}
}

func TestBuildPromptsWindowDefaults(t *testing.T) {
	sys, usr := BuildPrompts(&Context{Date: "2026-03-01"})

	if !strings.Contains(sys, "between 07:00 and 22:00") {
		t.Error("system prompt should carry the default planning window")
	}
	if !strings.Contains(usr, "Wake time: 07:00 | Bed time: 22:00") {
		t.Error("user prompt should carry the default planning window")
	}
}

func TestBuildPromptsCustomWindow(t *testing.T) {
	sys, _ := BuildPrompts(&Context{Date: "2026-03-01", WakeTime: "05:30:00", BedTime: "21:00:00"})
	if !strings.Contains(sys, "between 05:30 and 21:00") {
		t.Errorf("system prompt should use the user's window, got:\n%s", sys)
	}
}

func TestRenderRulesPriorityOrderAndNumbering(t *testing.T) {
	c := &Context{
		Date: "2026-03-01",
		Rules: []db.CalendarRule{
			{RuleText: "Gym at 17:00", Priority: 2, IsActive: true},
			{RuleText: "No meetings before noon", Priority: 0, IsActive: true},
			{RuleText: "Ignored", Priority: 1, IsActive: false},
		},
	}
	_, usr := BuildPrompts(c)

	rules := usr[strings.Index(usr, "=== SCHEDULING RULES"):]
	if !strings.Contains(rules, "1. No meetings before noon") {
		t.Error("lowest-priority-number rule should be numbered 1")
	}
	if !strings.Contains(rules, "2. Gym at 17:00") {
		t.Error("next rule should be numbered 2 regardless of stored priority value")
	}
	if strings.Contains(rules, "Ignored") {
		t.Error("inactive rules must not appear in the prompt")
	}
}

func TestBuildPromptsMentionsHabitsAndEvents(t *testing.T) {
	c := &Context{
		Date:   "2026-03-01",
		Habits: []db.Habit{{Name: "Meditate", Description: "10 minutes"}},
		ExistingEvents: []db.ScheduleEvent{
			{Title: "Dentist", StartTime: "10:00:00", EndTime: "11:00:00"},
		},
	}
	_, usr := BuildPrompts(c)

	if !strings.Contains(usr, "- Meditate: 10 minutes") {
		t.Error("habit with description should be rendered name: description")
	}
	if !strings.Contains(usr, "- Dentist: 10:00:00 - 11:00:00") {
		t.Error("existing events should be listed with their times")
	}
}

func TestBuildPromptsCompletedTodoCount(t *testing.T) {
	c := &Context{
		Date: "2026-03-01",
		Todos: []db.Todo{
			{Text: "buy milk"},
			{Text: "done already", Completed: true},
			{Text: "also done", Completed: true},
		},
	}
	_, usr := BuildPrompts(c)

	if !strings.Contains(usr, "- buy milk") {
		t.Error("pending todo missing from prompt")
	}
	if strings.Contains(usr, "done already") {
		t.Error("completed todos must not be listed")
	}
	if !strings.Contains(usr, "(2 already completed today)") {
		t.Error("completed count annotation missing")
	}
}
