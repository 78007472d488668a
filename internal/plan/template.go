// Package plan generates and tracks phased interview study plans.
package plan

import (
	"fmt"
)

// TaskType identifies one of the daily study activities a phase budgets
// minutes for.
type TaskType string

// Supported task types.
const (
	TaskTheory        TaskType = "theory"
	TaskCoding        TaskType = "coding"
	TaskSystemDesign  TaskType = "system_design"
	TaskMockInterview TaskType = "mock_interview"
)

// taskOrder fixes the order task entries appear in a daily task set.
var taskOrder = []TaskType{TaskTheory, TaskCoding, TaskSystemDesign, TaskMockInterview}

// taskMeta carries the display name, icon and suggested-activity pool for a
// task type.
type taskMeta struct {
	Name       string
	Icon       string
	Activities []string
}

var taskTypes = map[TaskType]taskMeta{
	TaskTheory: {
		Name: "Theory Study",
		Icon: "📚",
		Activities: []string{
			"Read a technical blog post",
			"Watch a tutorial video",
			"Review your study notes",
			"Read a paper abstract",
		},
	},
	TaskCoding: {
		Name: "Coding Practice",
		Icon: "💻",
		Activities: []string{
			"Solve a LeetCode problem",
			"Implement an ML algorithm from scratch",
			"Write model training code",
			"Practice data wrangling",
		},
	},
	TaskSystemDesign: {
		Name: "System Design",
		Icon: "🏗️",
		Activities: []string{
			"Work through a design prompt",
			"Read a system design case study",
			"Sketch an architecture diagram",
			"Prepare clarifying questions",
		},
	},
	TaskMockInterview: {
		Name: "Mock Interview",
		Icon: "🎤",
		Activities: []string{
			"Answer questions out loud, solo",
			"Record yourself and review",
			"Mock with a friend",
			"Run an AI mock interview",
		},
	},
}

// Phase is a template-defined span of weeks with its own task-type time
// budget and topic pool.
type Phase struct {
	Weeks        []int            `json:"weeks"` // 1-based week numbers this phase covers
	Name         string           `json:"name"`
	Focus        []string         `json:"focus"`
	DailyMinutes map[TaskType]int `json:"daily_minutes"` // 0 means the type is inactive this phase
	Topics       []string         `json:"topics"`
}

// covers reports whether the phase's week list contains week.
func (p *Phase) covers(week int) bool {
	for _, w := range p.Weeks {
		if w == week {
			return true
		}
	}
	return false
}

// Template is a static study-plan definition: an ordered list of phases.
type Template struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetRole    string  `json:"target_role"`
	DurationWeeks int     `json:"duration_weeks"`
	Phases        []Phase `json:"phases"`
}

// Validate checks the structural invariants of a template definition.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template with empty id")
	}
	if t.DurationWeeks < 1 {
		return fmt.Errorf("template %s: duration must be at least one week", t.ID)
	}
	if len(t.Phases) == 0 {
		return fmt.Errorf("template %s has no phases", t.ID)
	}

	for i, phase := range t.Phases {
		if len(phase.Weeks) == 0 {
			return fmt.Errorf("template %s phase %d covers no weeks", t.ID, i+1)
		}
		for _, w := range phase.Weeks {
			if w < 1 || w > t.DurationWeeks {
				return fmt.Errorf("template %s phase %d: week %d out of range", t.ID, i+1, w)
			}
		}
		if len(phase.Topics) == 0 {
			return fmt.Errorf("template %s phase %d has no topics", t.ID, i+1)
		}
		active := 0
		for taskType, minutes := range phase.DailyMinutes {
			if _, known := taskTypes[taskType]; !known {
				return fmt.Errorf("template %s phase %d: unknown task type %q", t.ID, i+1, taskType)
			}
			if minutes < 0 {
				return fmt.Errorf("template %s phase %d: negative minutes for %s", t.ID, i+1, taskType)
			}
			if minutes > 0 {
				active++
			}
		}
		if active == 0 {
			return fmt.Errorf("template %s phase %d budgets no time at all", t.ID, i+1)
		}
	}

	return nil
}

// MaxWeek returns the highest week number any phase declares.
func (t *Template) MaxWeek() int {
	max := 1
	for _, phase := range t.Phases {
		for _, w := range phase.Weeks {
			if w > max {
				max = w
			}
		}
	}
	return max
}

// phaseForWeek selects the phase whose week range contains week. If no phase
// matches (a gap in the template) the last phase wins; the fallback is
// deterministic.
func (t *Template) phaseForWeek(week int) *Phase {
	for i := range t.Phases {
		if t.Phases[i].covers(week) {
			return &t.Phases[i]
		}
	}
	return &t.Phases[len(t.Phases)-1]
}

// Registry holds the loaded plan templates, keyed by id, preserving the
// declaration order of the configuration document.
type Registry struct {
	templates map[string]*Template
	order     []string
}

// NewRegistry builds a Registry from validated templates.
func NewRegistry(templates []Template) (*Registry, error) {
	r := &Registry{templates: make(map[string]*Template, len(templates))}
	for i := range templates {
		t := &templates[i]
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.templates[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id: %s", t.ID)
		}
		r.templates[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	if len(r.order) == 0 {
		return nil, fmt.Errorf("no plan templates defined")
	}
	return r, nil
}

// Select returns the template with the given id. The caller is expected to
// have offered only known ids; an unknown id is a configuration error.
func (r *Registry) Select(id string) (*Template, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, &ErrTemplateNotFound{ID: id}
	}
	return t, nil
}

// List returns all templates in declaration order.
func (r *Registry) List() []*Template {
	list := make([]*Template, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.templates[id])
	}
	return list
}
