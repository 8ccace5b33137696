package db

import (
	"context"
	"errors"
	"testing"
)

const testUser = "11111111-1111-1111-1111-111111111111"

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

// --- Calendar rules ---

func TestCreateRuleAssignsNextPriority(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	first, err := d.CreateRule(ctx, testUser, "No meetings before noon")
	if err != nil {
		t.Fatalf("CreateRule: %v", err)
	}
	if first.Priority != 0 {
		t.Errorf("expected first rule priority 0, got %d", first.Priority)
	}

	second, err := d.CreateRule(ctx, testUser, "Gym at 17:00")
	if err != nil {
		t.Fatalf("CreateRule: %v", err)
	}
	if second.Priority != 1 {
		t.Errorf("expected second rule priority 1, got %d", second.Priority)
	}

	// Another user's rules do not affect the sequence.
	other, err := d.CreateRule(ctx, "other-user", "Lunch at 12")
	if err != nil {
		t.Fatalf("CreateRule: %v", err)
	}
	if other.Priority != 0 {
		t.Errorf("expected other user's first rule priority 0, got %d", other.Priority)
	}
}

func TestListActiveRulesExcludesInactive(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	a, _ := d.CreateRule(ctx, testUser, "A")
	d.CreateRule(ctx, testUser, "B")

	if err := d.UpdateRule(ctx, testUser, a.ID, map[string]any{"is_active": false}); err != nil {
		t.Fatalf("UpdateRule: %v", err)
	}

	active, err := d.ListActiveRules(ctx, testUser)
	if err != nil {
		t.Fatalf("ListActiveRules: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active rule, got %d", len(active))
	}
	if active[0].RuleText != "B" {
		t.Errorf("expected rule %q, got %q", "B", active[0].RuleText)
	}

	all, err := d.ListRules(ctx, testUser)
	if err != nil {
		t.Fatalf("ListRules: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rules total, got %d", len(all))
	}
}

func TestReorderRules(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	a, _ := d.CreateRule(ctx, testUser, "A")
	b, _ := d.CreateRule(ctx, testUser, "B")
	c, _ := d.CreateRule(ctx, testUser, "C")

	if err := d.ReorderRules(ctx, testUser, []string{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("ReorderRules: %v", err)
	}

	rules, _ := d.ListRules(ctx, testUser)
	got := []string{rules[0].RuleText, rules[1].RuleText, rules[2].RuleText}
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestUpdateRuleNotFound(t *testing.T) {
	d := openTestDB(t)

	err := d.UpdateRule(context.Background(), testUser, "missing-id", map[string]any{"rule_text": "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMutationsScopedToOwner(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()
	const intruder = "99999999-9999-9999-9999-999999999999"

	rule, _ := d.CreateRule(ctx, testUser, "No meetings before noon")

	err := d.UpdateRule(ctx, intruder, rule.ID, map[string]any{"rule_text": "changed"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("update as another user: expected ErrNotFound, got %v", err)
	}
	if err := d.DeleteRule(ctx, intruder, rule.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete as another user: expected ErrNotFound, got %v", err)
	}

	rules, _ := d.ListRules(ctx, testUser)
	if len(rules) != 1 || rules[0].RuleText != "No meetings before noon" {
		t.Errorf("owner's rule should be untouched, got %+v", rules)
	}

	event, _ := d.CreateEvent(ctx, testUser, "2026-03-01", EventInput{Title: "Dentist", StartTime: "10:00:00", EndTime: "11:00:00"})
	if err := d.DeleteEvent(ctx, intruder, event.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete event as another user: expected ErrNotFound, got %v", err)
	}
	if err := d.SetEventCompleted(ctx, intruder, event.ID, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("complete event as another user: expected ErrNotFound, got %v", err)
	}
	events, _ := d.ListEvents(ctx, testUser, "2026-03-01")
	if len(events) != 1 || events[0].Completed {
		t.Errorf("owner's event should be untouched, got %+v", events)
	}

	habitID, _ := d.CreateHabit(ctx, testUser, "Meditate", "")
	if err := d.LogHabit(ctx, intruder, habitID, "2026-03-01", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("log another user's habit: expected ErrNotFound, got %v", err)
	}
	completion, _ := d.HabitCompletion(ctx, testUser, "2026-03-01")
	if len(completion) != 0 {
		t.Errorf("no log should exist for the owner, got %v", completion)
	}
}

// --- Schedule events ---

func TestCreateAndListEventsOrdered(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	d.CreateEvent(ctx, testUser, "2026-03-01", EventInput{Title: "Lunch", StartTime: "12:00:00", EndTime: "12:30:00"})
	d.CreateEvent(ctx, testUser, "2026-03-01", EventInput{Title: "Standup", StartTime: "09:00:00", EndTime: "09:30:00"})

	events, err := d.ListEvents(ctx, testUser, "2026-03-01")
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Title != "Standup" {
		t.Errorf("expected earliest event first, got %q", events[0].Title)
	}
}

func TestReplaceAIEventsKeepsUserEvents(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	d.CreateEvent(ctx, testUser, "2026-03-01", EventInput{Title: "Dentist", StartTime: "10:00:00", EndTime: "11:00:00"})
	d.CreateEvent(ctx, testUser, "2026-03-01", EventInput{Title: "Old Plan", StartTime: "08:00:00", EndTime: "09:00:00", IsAIGenerated: true})

	_, err := d.ReplaceAIEvents(ctx, testUser, "2026-03-01", []EventInput{
		{Title: "Morning Focus", StartTime: "07:00:00", EndTime: "09:00:00"},
		{Title: "Review", StartTime: "14:00:00", EndTime: "15:00:00"},
	})
	if err != nil {
		t.Fatalf("ReplaceAIEvents: %v", err)
	}

	events, _ := d.ListEvents(ctx, testUser, "2026-03-01")
	if len(events) != 3 {
		t.Fatalf("expected 3 events (1 user + 2 AI), got %d", len(events))
	}
	for _, e := range events {
		if e.Title == "Old Plan" {
			t.Error("previous AI event should have been replaced")
		}
		if e.Title == "Dentist" && e.IsAIGenerated {
			t.Error("user event must not be flagged AI-generated")
		}
	}
}

func TestReplaceAIEventsEmptyClearsDay(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	if _, err := d.ReplaceAIEvents(ctx, testUser, "2026-03-01", []EventInput{
		{Title: "Plan", StartTime: "07:00:00", EndTime: "08:00:00"},
	}); err != nil {
		t.Fatalf("ReplaceAIEvents: %v", err)
	}
	if _, err := d.ReplaceAIEvents(ctx, testUser, "2026-03-01", nil); err != nil {
		t.Fatalf("ReplaceAIEvents(empty): %v", err)
	}

	events, _ := d.ListEvents(ctx, testUser, "2026-03-01")
	if len(events) != 0 {
		t.Errorf("expected empty schedule, got %d events", len(events))
	}
}

func TestDeleteAIEvents(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	d.CreateEvent(ctx, testUser, "2026-03-01", EventInput{Title: "Keep", StartTime: "10:00:00", EndTime: "11:00:00"})
	d.CreateEvent(ctx, testUser, "2026-03-01", EventInput{Title: "Drop", StartTime: "12:00:00", EndTime: "13:00:00", IsAIGenerated: true})
	d.CreateEvent(ctx, testUser, "2026-03-02", EventInput{Title: "Other Day", StartTime: "12:00:00", EndTime: "13:00:00", IsAIGenerated: true})

	n, err := d.DeleteAIEvents(ctx, testUser, "2026-03-01")
	if err != nil {
		t.Fatalf("DeleteAIEvents: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted, got %d", n)
	}

	day2, _ := d.ListEvents(ctx, testUser, "2026-03-02")
	if len(day2) != 1 {
		t.Errorf("other day's AI event should survive, got %d events", len(day2))
	}
}

// --- Habits ---

func TestHabitLogUpsert(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	id, err := d.CreateHabit(ctx, testUser, "Meditate", "10 minutes")
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}

	if err := d.LogHabit(ctx, testUser, id, "2026-03-01", true); err != nil {
		t.Fatalf("LogHabit: %v", err)
	}
	// Logging again for the same date overwrites, not duplicates.
	if err := d.LogHabit(ctx, testUser, id, "2026-03-01", false); err != nil {
		t.Fatalf("LogHabit: %v", err)
	}

	completion, err := d.HabitCompletion(ctx, testUser, "2026-03-01")
	if err != nil {
		t.Fatalf("HabitCompletion: %v", err)
	}
	if len(completion) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(completion))
	}
	if completion[id] {
		t.Error("expected second log to overwrite completed=true with false")
	}
}

func TestListHabitsActiveFilter(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	id, _ := d.CreateHabit(ctx, testUser, "Read", "")
	d.CreateHabit(ctx, testUser, "Run", "")
	d.UpdateHabit(ctx, testUser, id, map[string]any{"is_active": false})

	active, err := d.ListHabits(ctx, testUser, true)
	if err != nil {
		t.Fatalf("ListHabits: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Run" {
		t.Errorf("expected only %q active, got %+v", "Run", active)
	}
}

// --- Todos ---

func TestTodosScopedByDate(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	d.CreateTodo(ctx, testUser, "buy milk", "2026-03-01")
	d.CreateTodo(ctx, testUser, "call mom", "2026-03-02")

	todos, err := d.ListTodos(ctx, testUser, "2026-03-01")
	if err != nil {
		t.Fatalf("ListTodos: %v", err)
	}
	if len(todos) != 1 || todos[0].Text != "buy milk" {
		t.Errorf("expected only the 2026-03-01 todo, got %+v", todos)
	}
}

func TestCompleteTodo(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	id, _ := d.CreateTodo(ctx, testUser, "buy milk", "2026-03-01")
	if err := d.UpdateTodo(ctx, testUser, id, map[string]any{"completed": true}); err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}

	todos, _ := d.ListTodos(ctx, testUser, "2026-03-01")
	if !todos[0].Completed {
		t.Error("expected todo to be completed")
	}
}

// --- Preferences ---

func TestPreferencesDefaults(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	prefs, err := d.GetPreferences(ctx, testUser)
	if err != nil {
		t.Fatalf("GetPreferences: %v", err)
	}
	if prefs.WakeTime != DefaultWakeTime || prefs.BedTime != DefaultBedTime {
		t.Errorf("expected defaults %s/%s, got %s/%s", DefaultWakeTime, DefaultBedTime, prefs.WakeTime, prefs.BedTime)
	}
	if prefs.AutoPlan {
		t.Error("auto_plan should default to off")
	}
}

func TestSetPreferencesUpsert(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	if err := d.SetPreferences(ctx, testUser, "06:00:00", "23:00:00", true); err != nil {
		t.Fatalf("SetPreferences: %v", err)
	}
	if err := d.SetPreferences(ctx, testUser, "06:30:00", "23:00:00", true); err != nil {
		t.Fatalf("SetPreferences (update): %v", err)
	}

	prefs, _ := d.GetPreferences(ctx, testUser)
	if prefs.WakeTime != "06:30:00" {
		t.Errorf("expected wake_time 06:30:00, got %s", prefs.WakeTime)
	}

	users, err := d.ListAutoPlanUsers(ctx)
	if err != nil {
		t.Fatalf("ListAutoPlanUsers: %v", err)
	}
	if len(users) != 1 || users[0] != testUser {
		t.Errorf("expected auto-plan users [%s], got %v", testUser, users)
	}
}

// --- Daily notes ---

func TestDailyNoteUpsert(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	note, err := d.GetDailyNote(ctx, testUser, "2026-03-01")
	if err != nil {
		t.Fatalf("GetDailyNote: %v", err)
	}
	if note != "" {
		t.Errorf("expected empty note, got %q", note)
	}

	d.SetDailyNote(ctx, testUser, "2026-03-01", "dinner with family 6-8pm")
	d.SetDailyNote(ctx, testUser, "2026-03-01", "dinner moved to 7pm")

	note, _ = d.GetDailyNote(ctx, testUser, "2026-03-01")
	if note != "dinner moved to 7pm" {
		t.Errorf("expected replaced note, got %q", note)
	}
}

// --- Schedule templates ---

func TestSaveAndApplyTemplate(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	d.CreateEvent(ctx, testUser, "2026-03-01", EventInput{Title: "Gym", StartTime: "17:00:00", EndTime: "18:00:00"})
	d.CreateEvent(ctx, testUser, "2026-03-01", EventInput{Title: "Focus", Description: "deep work", StartTime: "09:00:00", EndTime: "11:00:00"})

	id, err := d.SaveTemplate(ctx, testUser, "weekday", "standard day", "2026-03-01")
	if err != nil {
		t.Fatalf("SaveTemplate: %v", err)
	}

	applied, err := d.ApplyTemplate(ctx, testUser, id, "2026-03-08")
	if err != nil {
		t.Fatalf("ApplyTemplate: %v", err)
	}
	if len(applied) != 2 {
		t.Fatalf("expected 2 applied events, got %d", len(applied))
	}

	events, _ := d.ListEvents(ctx, testUser, "2026-03-08")
	if len(events) != 2 {
		t.Fatalf("expected 2 events on target date, got %d", len(events))
	}
	if events[0].Title != "Focus" || events[0].Description != "deep work" {
		t.Errorf("unexpected first applied event: %+v", events[0])
	}
	if events[0].IsAIGenerated {
		t.Error("template events must not be flagged AI-generated")
	}
}

func TestApplyTemplateNotFound(t *testing.T) {
	d := openTestDB(t)

	_, err := d.ApplyTemplate(context.Background(), testUser, "missing-id", "2026-03-08")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
