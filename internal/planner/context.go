package planner

import (
	"context"

	"github.com/chris/daygo/internal/db"
	"golang.org/x/sync/errgroup"
)

// Context is everything the prompt composer needs to plan one user-day.
// The aggregate reads are independent; no cross-collection consistency is
// promised, which is fine for drafting an advisory plan.
type Context struct {
	Date           string             `json:"date"`
	WakeTime       string             `json:"wake_time"`
	BedTime        string             `json:"bed_time"`
	DailyNote      string             `json:"dailyNote,omitempty"`
	Rules          []db.CalendarRule  `json:"rules"`
	ExistingEvents []db.ScheduleEvent `json:"existingEvents"`
	Habits         []db.Habit         `json:"habits"`
	Todos          []db.Todo          `json:"todos"`
	Goals          []db.Goal          `json:"goals"`
	Visions        []db.Vision        `json:"visions"`
	Mantras        []db.Mantra        `json:"mantras"`
}

// GatherContext fetches the planning inputs for a user and date. The reads
// run concurrently; any single failure aborts the whole gather.
func GatherContext(ctx context.Context, database *db.DB, userID, date string) (*Context, error) {
	out := &Context{Date: date}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		prefs, err := database.GetPreferences(ctx, userID)
		if err != nil {
			return err
		}
		out.WakeTime = prefs.WakeTime
		out.BedTime = prefs.BedTime
		return nil
	})
	g.Go(func() error {
		var err error
		out.Rules, err = database.ListActiveRules(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		out.ExistingEvents, err = database.ListEvents(ctx, userID, date)
		return err
	})
	g.Go(func() error {
		var err error
		out.Habits, err = database.ListHabits(ctx, userID, true)
		return err
	})
	g.Go(func() error {
		var err error
		out.Todos, err = database.ListTodos(ctx, userID, date)
		return err
	})
	g.Go(func() error {
		var err error
		out.Goals, err = database.ListGoals(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		out.Visions, err = database.ListVisions(ctx, userID, true)
		return err
	})
	g.Go(func() error {
		var err error
		out.Mantras, err = database.ListMantras(ctx, userID, true)
		return err
	})
	g.Go(func() error {
		var err error
		out.DailyNote, err = database.GetDailyNote(ctx, userID, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
