package scheduler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/daygo/internal/db"
	"github.com/chris/daygo/internal/planner"
)

type fakeLLM struct {
	response string
}

func (f *fakeLLM) Chat(context.Context, string, string) (string, error) {
	return f.response, nil
}

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	d, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestRunAutoPlanPlansOptedInUsers(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	if err := d.SetPreferences(ctx, "user-a", "07:00:00", "22:00:00", true); err != nil {
		t.Fatalf("SetPreferences: %v", err)
	}
	// user-b has not opted in.
	if err := d.SetPreferences(ctx, "user-b", "07:00:00", "22:00:00", false); err != nil {
		t.Fatalf("SetPreferences: %v", err)
	}

	var hooks []string
	hookSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		hooks = append(hooks, payload["content"])
	}))
	defer hookSrv.Close()

	pl := planner.New(d, &fakeLLM{response: `[{"title": "Morning Focus", "start_time": "07:00:00", "end_time": "09:00:00"}]`})
	s := New(d, pl, hookSrv.URL)
	s.runAutoPlan()

	today := time.Now().Format("2006-01-02")
	planned, _ := d.ListEvents(ctx, "user-a", today)
	if len(planned) != 1 || planned[0].Title != "Morning Focus" {
		t.Errorf("expected opted-in user to get a plan, got %+v", planned)
	}

	skipped, _ := d.ListEvents(ctx, "user-b", today)
	if len(skipped) != 0 {
		t.Errorf("user without auto_plan should not be planned, got %+v", skipped)
	}

	if len(hooks) != 1 || !strings.Contains(hooks[0], "user-a") {
		t.Errorf("expected one webhook delivery for user-a, got %v", hooks)
	}
}

func TestRunAutoPlanNoWebhookConfigured(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	if err := d.SetPreferences(ctx, "user-a", "07:00:00", "22:00:00", true); err != nil {
		t.Fatalf("SetPreferences: %v", err)
	}

	pl := planner.New(d, &fakeLLM{response: "[]"})
	s := New(d, pl, "")
	s.runAutoPlan() // must not panic or call out
}

func TestStartRejectsBadCronExpr(t *testing.T) {
	d := openTestDB(t)
	s := New(d, planner.New(d, &fakeLLM{}), "")
	t.Cleanup(s.Stop)

	if err := s.Start("not a cron expr"); err == nil {
		t.Error("expected error for invalid cron expression")
	}
}

func TestPostWebhookErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if err := postWebhook(srv.URL, "hello"); err == nil {
		t.Error("expected error for 4xx webhook response")
	}
}
