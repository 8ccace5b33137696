package planner

import (
	"fmt"
	"sort"
	"strings"
)

// Fallback lines rendered when a collection is empty. The model behaves
// noticeably worse with blank sections than with an explicit "nothing here".
const (
	noRulesFallback   = "No specific rules - plan the day intelligently based on context"
	noEventsFallback  = "No existing events - the day is open"
	noHabitsFallback  = "No habits defined"
	noTodosFallback   = "No pending todos"
	noGoalsFallback   = "No goals defined"
	noVisionsFallback = "No visions defined"
	noMantrasFallback = "No mantras defined"
	noNotesFallback   = "No specific notes for today"
)

// BuildPrompts renders the planning context into the system/user prompt
// pair. It is a pure function: the same context always produces the same
// two strings.
func BuildPrompts(c *Context) (systemPrompt, userPrompt string) {
	wake := displayTime(c.WakeTime, "07:00")
	bed := displayTime(c.BedTime, "22:00")

	systemPrompt = fmt.Sprintf(`You are a daily planner AI. Create a schedule based on the user's habits, todos, goals, visions, and daily mantras.

IMPORTANT: ALWAYS create a schedule that fills the ENTIRE day from wake time to bed time. Ignore the current time - schedule ALL time slots even if they appear to be "in the past." The user wants a complete day plan.

CONSTRAINTS:
1. Only schedule between %s and %s (user's wake and bed times)
2. Fill the entire day from wake time to bed time
3. NEVER overlap with existing events
4. Use 30-minute increments ONLY (e.g., 09:00, 09:30, 10:00)
5. PREFER larger time blocks (1-4 hours) for focused work - use 30-minute blocks only for short tasks like meals, breaks, or quick activities
6. DO NOT create "Break" events - gaps between events ARE the breaks
7. Schedule time for ALL habits - they are the user's daily commitments
8. Work towards the user's goals and vision
9. Let the user's daily mantras guide the tone and focus of the day

RESPONSE FORMAT:
Respond with ONLY a valid JSON array. No explanation, no markdown, no code blocks.
Each event:
- "title": string (clear, action-oriented name)
- "start_time": "HH:MM:00" (24-hour format, 30-min increments only)
- "end_time": "HH:MM:00" (24-hour format, 30-min increments only)
- "description": string (optional, brief context)

Example: [{"title": "Deep Work", "start_time": "09:00:00", "end_time": "10:30:00"}]

NEVER return an empty array unless ALL time slots are filled.`, wake, bed)

	var b strings.Builder
	fmt.Fprintf(&b, "Today's date: %s\n", c.Date)
	fmt.Fprintf(&b, "Wake time: %s | Bed time: %s\n", wake, bed)

	b.WriteString("\n=== EXISTING EVENTS (DO NOT OVERLAP) ===\n")
	b.WriteString(renderEvents(c))

	b.WriteString("\n\n=== TODAY'S NOTES (IMPORTANT CONTEXT - schedule around these) ===\n")
	if c.DailyNote != "" {
		b.WriteString(c.DailyNote)
	} else {
		b.WriteString(noNotesFallback)
	}

	b.WriteString("\n\n=== TODAY'S TODOS ===\n")
	b.WriteString(renderTodos(c))
	if n := completedTodoCount(c); n > 0 {
		fmt.Fprintf(&b, "\n(%d already completed today)", n)
	}

	b.WriteString("\n\n=== HABITS (schedule time for these) ===\n")
	b.WriteString(renderHabits(c))

	b.WriteString("\n\n=== GOALS ===\n")
	b.WriteString(renderGoals(c))

	b.WriteString("\n\n=== VISION ===\n")
	b.WriteString(renderVisions(c))

	b.WriteString("\n\n=== TODAY'S MANTRAS (user's focus for the day) ===\n")
	b.WriteString(renderMantras(c))

	b.WriteString("\n\n=== SCHEDULING RULES (in priority order) ===\n")
	b.WriteString(renderRules(c))

	fmt.Fprintf(&b, "\n\nCreate a schedule from %s to %s. Respond with only a JSON array.", wake, bed)

	return systemPrompt, b.String()
}

func renderRules(c *Context) string {
	active := make([]struct {
		priority int
		text     string
	}, 0, len(c.Rules))
	for _, r := range c.Rules {
		if r.IsActive {
			active = append(active, struct {
				priority int
				text     string
			}{r.Priority, r.RuleText})
		}
	}
	if len(active) == 0 {
		return noRulesFallback
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].priority < active[j].priority })

	var lines []string
	for i, r := range active {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, r.text))
	}
	return strings.Join(lines, "\n")
}

func renderEvents(c *Context) string {
	if len(c.ExistingEvents) == 0 {
		return noEventsFallback
	}
	var lines []string
	for _, e := range c.ExistingEvents {
		lines = append(lines, fmt.Sprintf("- %s: %s - %s", e.Title, e.StartTime, e.EndTime))
	}
	return strings.Join(lines, "\n")
}

func renderHabits(c *Context) string {
	if len(c.Habits) == 0 {
		return noHabitsFallback
	}
	var lines []string
	for _, h := range c.Habits {
		line := "- " + h.Name
		if h.Description != "" {
			line += ": " + h.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderTodos(c *Context) string {
	var lines []string
	for _, t := range c.Todos {
		if !t.Completed {
			lines = append(lines, "- "+t.Text)
		}
	}
	if len(lines) == 0 {
		return noTodosFallback
	}
	return strings.Join(lines, "\n")
}

func completedTodoCount(c *Context) int {
	n := 0
	for _, t := range c.Todos {
		if t.Completed {
			n++
		}
	}
	return n
}

func renderGoals(c *Context) string {
	if len(c.Goals) == 0 {
		return noGoalsFallback
	}
	var lines []string
	for _, g := range c.Goals {
		line := "- " + g.Title
		if g.Description != "" {
			line += ": " + g.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderVisions(c *Context) string {
	if len(c.Visions) == 0 {
		return noVisionsFallback
	}
	var lines []string
	for _, v := range c.Visions {
		lines = append(lines, "- "+v.Text)
	}
	return strings.Join(lines, "\n")
}

func renderMantras(c *Context) string {
	if len(c.Mantras) == 0 {
		return noMantrasFallback
	}
	var lines []string
	for _, m := range c.Mantras {
		lines = append(lines, fmt.Sprintf("- %q", m.Text))
	}
	return strings.Join(lines, "\n")
}

// displayTime shortens an HH:MM:SS store value to the HH:MM form used in
// prompt text.
func displayTime(t, fallback string) string {
	if t == "" {
		return fallback
	}
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
