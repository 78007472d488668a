package plan

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Instance is one user's study plan: a template reference, a start date and
// a per-date log of completed task types. An instance is created when the
// user selects a template and replaced outright, never merged, when they
// switch templates.
type Instance struct {
	ID         uuid.UUID             `json:"id"`
	UserID     uuid.UUID             `json:"user_id"`
	TemplateID string                `json:"template_id"`
	StartDate  time.Time             `json:"start_date"`
	TotalDays  int                   `json:"total_days"`
	Log        map[string][]TaskType `json:"log"` // date (YYYY-MM-DD) -> completed types
	CreatedAt  time.Time             `json:"created_at"`
}

// NewInstance creates a fresh plan instance for a user from a template,
// starting at startDate (truncated to the day).
func NewInstance(userID uuid.UUID, tmpl *Template, startDate time.Time) *Instance {
	start := truncateToDay(startDate)
	return &Instance{
		ID:         uuid.New(),
		UserID:     userID,
		TemplateID: tmpl.ID,
		StartDate:  start,
		TotalDays:  tmpl.DurationWeeks * 7,
		Log:        make(map[string][]TaskType),
		CreatedAt:  time.Now(),
	}
}

// MarkComplete records that the user finished a task type on the given date.
// Marking the same type twice on one day has no further effect.
func (inst *Instance) MarkComplete(taskType TaskType, date time.Time) error {
	if _, known := taskTypes[taskType]; !known {
		return &ErrUnknownTaskType{Type: taskType}
	}

	if inst.Log == nil {
		inst.Log = make(map[string][]TaskType)
	}

	key := truncateToDay(date).Format(dateLayout)
	for _, done := range inst.Log[key] {
		if done == taskType {
			return nil
		}
	}
	inst.Log[key] = append(inst.Log[key], taskType)
	return nil
}

// Progress summarizes how far a plan has come.
type Progress struct {
	TemplateID      string `json:"template_id"`
	ProgressPercent int    `json:"progress_percent"`
	CompletedDays   int    `json:"completed_days"`
	TotalDays       int    `json:"total_days"`
	StreakDays      int    `json:"streak_days"`
	CurrentWeek     int    `json:"current_week"`
}

// streakWindow bounds the backward walk when counting consecutive logged
// days.
const streakWindow = 30

// ProgressAsOf computes completion percentage, streak and current week as of
// the given day. A day counts as completed once it has at least one logged
// entry. The percentage is clamped to [0, 100].
func (inst *Instance) ProgressAsOf(today time.Time) Progress {
	completed := len(inst.Log)

	percent := 0
	if inst.TotalDays > 0 {
		percent = completed * 100 / inst.TotalDays
	}
	if percent > 100 {
		percent = 100
	}

	week := 0
	if elapsed := elapsedDays(inst.StartDate, today); elapsed >= 0 {
		week = elapsed/7 + 1
	}

	return Progress{
		TemplateID:      inst.TemplateID,
		ProgressPercent: percent,
		CompletedDays:   completed,
		TotalDays:       inst.TotalDays,
		StreakDays:      inst.StreakAsOf(today),
		CurrentWeek:     week,
	}
}

// StreakAsOf counts consecutive days with at least one logged entry, walking
// backward from today (inclusive). The first missing day within the look-back
// window breaks the streak.
func (inst *Instance) StreakAsOf(today time.Time) int {
	day := truncateToDay(today)
	streak := 0
	for i := 0; i < streakWindow; i++ {
		key := day.AddDate(0, 0, -i).Format(dateLayout)
		if _, logged := inst.Log[key]; !logged {
			break
		}
		streak++
	}
	return streak
}

// elapsedDays returns the number of whole days between start and date,
// negative when date precedes start. Rounding absorbs DST shifts.
func elapsedDays(start, date time.Time) int {
	d := truncateToDay(date).Sub(truncateToDay(start))
	return int(math.Round(d.Hours() / 24))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// String identifies the instance for logs.
func (inst *Instance) String() string {
	return fmt.Sprintf("plan %s (user %s, template %s)", inst.ID, inst.UserID, inst.TemplateID)
}
