// Package scheduler runs the morning auto-plan: a cron entry that builds a
// schedule for every opted-in user and optionally announces the result on a
// webhook.
package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/chris/daygo/internal/db"
	"github.com/chris/daygo/internal/planner"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron       *cron.Cron
	db         *db.DB
	planner    *planner.Planner
	webhookURL string
}

func New(database *db.DB, pl *planner.Planner, webhookURL string) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		db:         database,
		planner:    pl,
		webhookURL: webhookURL,
	}
}

// Start registers the auto-plan entry and starts the cron loop.
func (s *Scheduler) Start(cronExpr string) error {
	if _, err := s.cron.AddFunc(cronExpr, s.runAutoPlan); err != nil {
		return fmt.Errorf("registering auto-plan cron %q: %w", cronExpr, err)
	}
	s.cron.Start()
	log.Printf("scheduler: auto-plan registered with cron %q", cronExpr)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runAutoPlan() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	users, err := s.db.ListAutoPlanUsers(ctx)
	if err != nil {
		log.Printf("scheduler: listing auto-plan users: %v", err)
		return
	}
	if len(users) == 0 {
		return
	}

	date := time.Now().Format("2006-01-02")
	for _, userID := range users {
		events, err := s.planner.PlanDay(ctx, userID, date)
		if err != nil {
			log.Printf("scheduler: auto-plan for user %s: %v", userID, err)
			continue
		}
		log.Printf("scheduler: planned %d events for user %s on %s", len(events), userID, date)
		s.deliver(userID, date, events)
	}
}

func (s *Scheduler) deliver(userID, date string, events []db.ScheduleEvent) {
	if s.webhookURL == "" {
		return
	}
	content := fmt.Sprintf("Planned %d events for %s on %s", len(events), userID, date)
	if err := postWebhook(s.webhookURL, content); err != nil {
		log.Printf("scheduler: webhook for user %s failed: %v", userID, err)
	}
}

func postWebhook(url, content string) error {
	payload := map[string]string{"content": content}
	body, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
