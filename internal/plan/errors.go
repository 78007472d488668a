package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrTemplateNotFound indicates a plan template id that is not in the
// registry.
type ErrTemplateNotFound struct {
	ID string
}

func (e *ErrTemplateNotFound) Error() string {
	return fmt.Sprintf("plan template not found: %s", e.ID)
}

// ErrDateBeforeStart indicates a task lookup for a date before the plan
// started.
type ErrDateBeforeStart struct {
	Date  time.Time
	Start time.Time
}

func (e *ErrDateBeforeStart) Error() string {
	return fmt.Sprintf("date %s is before plan start %s",
		e.Date.Format(dateLayout), e.Start.Format(dateLayout))
}

// ErrUnknownTaskType indicates a completion mark for a task type the plan
// does not define.
type ErrUnknownTaskType struct {
	Type TaskType
}

func (e *ErrUnknownTaskType) Error() string {
	return fmt.Sprintf("unknown task type: %s", e.Type)
}

// ErrNoPlan indicates the user has no active study plan.
type ErrNoPlan struct {
	UserID uuid.UUID
}

func (e *ErrNoPlan) Error() string {
	return fmt.Sprintf("no study plan for user %s", e.UserID)
}
