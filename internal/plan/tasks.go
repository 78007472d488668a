package plan

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Task is one synthesized daily study task.
type Task struct {
	Type            TaskType `json:"type"`
	Name            string   `json:"name"`
	Icon            string   `json:"icon"`
	DurationMinutes int      `json:"duration_minutes"`
	Activity        string   `json:"activity"`
	Topic           string   `json:"topic"`
}

// DailyTasks is the task set served for one calendar day of a plan.
type DailyTasks struct {
	Date         string   `json:"date"`
	Week         int      `json:"week"`
	PhaseName    string   `json:"phase_name"`
	FocusAreas   []string `json:"focus_areas"`
	Tasks        []Task   `json:"tasks"`
	TotalMinutes int      `json:"total_minutes"`
}

// TasksForDate synthesizes the task set for one day of a plan. The week is
// derived from whole days elapsed since the start date and clamped to the
// template's last declared week, so a plan that has run past its nominal
// duration keeps serving the final phase instead of erroring. A date before
// the start date is a caller bug and returns ErrDateBeforeStart.
//
// Topic and activity picks are seeded from (userID, date), so repeated calls
// on the same day return the same tasks.
func TasksForDate(inst *Instance, tmpl *Template, date time.Time) (*DailyTasks, error) {
	elapsed := elapsedDays(inst.StartDate, date)
	if elapsed < 0 {
		return nil, &ErrDateBeforeStart{Date: date, Start: inst.StartDate}
	}

	week := elapsed/7 + 1
	if max := tmpl.MaxWeek(); week > max {
		week = max
	}

	phase := tmpl.phaseForWeek(week)
	rng := rand.New(rand.NewSource(dailySeed(inst.UserID, date)))

	daily := &DailyTasks{
		Date:       truncateToDay(date).Format(dateLayout),
		Week:       week,
		PhaseName:  phase.Name,
		FocusAreas: phase.Focus,
	}

	for _, taskType := range taskOrder {
		minutes := phase.DailyMinutes[taskType]
		if minutes <= 0 {
			continue
		}
		meta := taskTypes[taskType]
		daily.Tasks = append(daily.Tasks, Task{
			Type:            taskType,
			Name:            meta.Name,
			Icon:            meta.Icon,
			DurationMinutes: minutes,
			Activity:        pick(rng, meta.Activities),
			Topic:           pick(rng, phase.Topics),
		})
		daily.TotalMinutes += minutes
	}

	return daily, nil
}

// dailySeed derives a stable PRNG seed from the user and calendar day.
func dailySeed(userID uuid.UUID, date time.Time) int64 {
	h := fnv.New64a()
	h.Write(userID[:])
	h.Write([]byte(truncateToDay(date).Format(dateLayout)))
	return int64(h.Sum64())
}

func pick(rng *rand.Rand, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rng.Intn(len(options))]
}
