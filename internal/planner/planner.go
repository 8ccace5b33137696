// Package planner implements the AI day-planning pipeline: aggregate the
// user's planning context, compose a constrained natural-language prompt,
// invoke the chat model, then parse and validate the proposed schedule
// before it touches the store.
package planner

import (
	"context"
	"log"

	"github.com/chris/daygo/internal/db"
	"github.com/chris/daygo/internal/llm"
	"golang.org/x/sync/singleflight"
)

type Planner struct {
	db     *db.DB
	client llm.Client
	group  singleflight.Group
}

func New(database *db.DB, client llm.Client) *Planner {
	return &Planner{db: database, client: client}
}

// PlanResult is the outcome of one planning request: the accepted events
// plus enough debug context to explain what the model proposed and what
// validation removed.
type PlanResult struct {
	Events []PlannedEvent `json:"events"`
	Debug  PlanDebug      `json:"debug"`
}

type PlanDebug struct {
	RawResponse  string     `json:"rawResponse"`
	PromptTokens int        `json:"promptTokens"`
	ParsedCount  int        `json:"parsedCount"`
	ValidCount   int        `json:"validCount"`
	Dropped      DropCounts `json:"dropped"`
}

// ApplyRules runs compose -> invoke -> parse -> validate over a context
// supplied entirely by the caller. Nothing is persisted.
func (p *Planner) ApplyRules(ctx context.Context, pctx *Context) (*PlanResult, error) {
	systemPrompt, userPrompt := BuildPrompts(pctx)

	log.Printf("planner: requesting schedule for %s (rules=%d events=%d habits=%d todos=%d)",
		pctx.Date, len(pctx.Rules), len(pctx.ExistingEvents), len(pctx.Habits), len(pctx.Todos))

	raw, err := p.client.Chat(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseEvents(raw)
	if err != nil {
		log.Printf("planner: unparsable model output: %.200s", raw)
		return nil, err
	}

	events, drops := ValidateEvents(parsed, pctx.ExistingEvents, pctx.WakeTime, pctx.BedTime)
	if drops.Total() > 0 {
		log.Printf("planner: dropped %d of %d proposed events", drops.Total(), len(parsed))
	}

	return &PlanResult{
		Events: events,
		Debug: PlanDebug{
			RawResponse:  truncate(raw, 500),
			PromptTokens: llm.EstimateTokens(systemPrompt) + llm.EstimateTokens(userPrompt),
			ParsedCount:  len(parsed),
			ValidCount:   len(events),
			Dropped:      drops,
		},
	}, nil
}

// PlanDay runs the full pipeline for a stored user: gather context, plan,
// then atomically replace the day's AI-generated events with the result.
// Concurrent calls for the same user and date are coalesced into a single
// build; both callers get the same schedule rather than a double insert.
func (p *Planner) PlanDay(ctx context.Context, userID, date string) ([]db.ScheduleEvent, error) {
	v, err, _ := p.group.Do(userID+"/"+date, func() (any, error) {
		// The flight's result may be shared with piggy-backed callers, so
		// it must not die with whichever request happened to start it.
		return p.planDay(context.WithoutCancel(ctx), userID, date)
	})
	if err != nil {
		return nil, err
	}
	return v.([]db.ScheduleEvent), nil
}

func (p *Planner) planDay(ctx context.Context, userID, date string) ([]db.ScheduleEvent, error) {
	pctx, err := GatherContext(ctx, p.db, userID, date)
	if err != nil {
		return nil, err
	}

	// Events the model must schedule around are the user-entered ones;
	// AI events from a previous run are about to be replaced.
	kept := pctx.ExistingEvents[:0:0]
	for _, e := range pctx.ExistingEvents {
		if !e.IsAIGenerated {
			kept = append(kept, e)
		}
	}
	pctx.ExistingEvents = kept

	result, err := p.ApplyRules(ctx, pctx)
	if err != nil {
		return nil, err
	}

	inputs := make([]db.EventInput, len(result.Events))
	for i, e := range result.Events {
		inputs[i] = db.EventInput{
			Title:       e.Title,
			Description: e.Description,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
		}
	}
	return p.db.ReplaceAIEvents(ctx, userID, date, inputs)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
