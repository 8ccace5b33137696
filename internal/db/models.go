package db

type Habit struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type Todo struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Goal struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id,omitempty"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	MetricName    string  `json:"metric_name"`
	MetricTarget  float64 `json:"metric_target"`
	MetricCurrent float64 `json:"metric_current"`
	Deadline      string  `json:"deadline,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

type Vision struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	Text      string `json:"text"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Mantra struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	Text      string `json:"text"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at,omitempty"`
}

type CalendarRule struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	RuleText  string `json:"rule_text"`
	IsActive  bool   `json:"is_active"`
	Priority  int    `json:"priority"`
	CreatedAt string `json:"created_at,omitempty"`
}

type ScheduleEvent struct {
	ID            string `json:"id,omitempty"`
	UserID        string `json:"user_id,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Date          string `json:"date,omitempty"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	IsAIGenerated bool   `json:"is_ai_generated,omitempty"`
	Completed     bool   `json:"completed,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// EventInput is the insert shape for a schedule event. IDs and timestamps
// are assigned by the store.
type EventInput struct {
	Title         string
	Description   string
	StartTime     string
	EndTime       string
	IsAIGenerated bool
}

type Preferences struct {
	UserID    string `json:"user_id,omitempty"`
	WakeTime  string `json:"wake_time"`
	BedTime   string `json:"bed_time"`
	AutoPlan  bool   `json:"auto_plan"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type DailyNote struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	Date      string `json:"date"`
	Note      string `json:"note"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type ScheduleTemplate struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	TemplateData string `json:"template_data"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

const (
	DefaultWakeTime = "07:00:00"
	DefaultBedTime  = "22:00:00"
)
