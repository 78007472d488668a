package plan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewInstance(t *testing.T) {
	tmpl := twoPhaseTemplate()
	userID := uuid.New()

	inst := NewInstance(userID, &tmpl, time.Date(2026, time.March, 2, 15, 30, 0, 0, time.UTC))

	assert.Equal(t, userID, inst.UserID)
	assert.Equal(t, "mle_4week", inst.TemplateID)
	assert.Equal(t, 28, inst.TotalDays)
	assert.Equal(t, date(2026, time.March, 2), inst.StartDate, "start date is truncated to the day")
	assert.NotNil(t, inst.Log)
	assert.Empty(t, inst.Log)
}

func TestInstance_MarkComplete(t *testing.T) {
	tmpl := twoPhaseTemplate()
	inst := NewInstance(uuid.New(), &tmpl, date(2026, time.March, 2))

	day := date(2026, time.March, 3)
	require.NoError(t, inst.MarkComplete(TaskTheory, day))
	require.NoError(t, inst.MarkComplete(TaskCoding, day))
	assert.Equal(t, []TaskType{TaskTheory, TaskCoding}, inst.Log["2026-03-03"])

	t.Run("idempotent per day", func(t *testing.T) {
		require.NoError(t, inst.MarkComplete(TaskTheory, day))
		assert.Equal(t, []TaskType{TaskTheory, TaskCoding}, inst.Log["2026-03-03"])
	})

	t.Run("same type on another day", func(t *testing.T) {
		require.NoError(t, inst.MarkComplete(TaskTheory, date(2026, time.March, 4)))
		assert.Equal(t, []TaskType{TaskTheory}, inst.Log["2026-03-04"])
	})

	t.Run("unknown task type", func(t *testing.T) {
		err := inst.MarkComplete("yoga", day)
		var unknown *ErrUnknownTaskType
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, TaskType("yoga"), unknown.Type)
	})

	t.Run("nil log recovers", func(t *testing.T) {
		loaded := &Instance{TemplateID: "mle_4week", StartDate: date(2026, time.March, 2)}
		require.NoError(t, loaded.MarkComplete(TaskTheory, day))
		assert.Len(t, loaded.Log["2026-03-03"], 1)
	})
}

func TestInstance_ProgressAsOf(t *testing.T) {
	tmpl := twoPhaseTemplate()
	inst := NewInstance(uuid.New(), &tmpl, date(2026, time.March, 2))

	t.Run("fresh plan", func(t *testing.T) {
		p := inst.ProgressAsOf(date(2026, time.March, 2))
		assert.Equal(t, 0, p.ProgressPercent)
		assert.Equal(t, 0, p.CompletedDays)
		assert.Equal(t, 28, p.TotalDays)
		assert.Equal(t, 0, p.StreakDays)
		assert.Equal(t, 1, p.CurrentWeek)
	})

	t.Run("partial completion", func(t *testing.T) {
		for d := 2; d <= 8; d++ {
			require.NoError(t, inst.MarkComplete(TaskTheory, date(2026, time.March, d)))
		}

		p := inst.ProgressAsOf(date(2026, time.March, 8))
		assert.Equal(t, 7, p.CompletedDays)
		assert.Equal(t, 25, p.ProgressPercent) // 7/28
		assert.Equal(t, 7, p.StreakDays)
		assert.Equal(t, 1, p.CurrentWeek)
	})

	t.Run("streak broken by a missed day", func(t *testing.T) {
		// March 9 has no log entry
		require.NoError(t, inst.MarkComplete(TaskTheory, date(2026, time.March, 10)))
		require.NoError(t, inst.MarkComplete(TaskTheory, date(2026, time.March, 11)))

		assert.Equal(t, 2, inst.StreakAsOf(date(2026, time.March, 11)))
	})

	t.Run("week advances", func(t *testing.T) {
		p := inst.ProgressAsOf(date(2026, time.March, 9))
		assert.Equal(t, 2, p.CurrentWeek)

		p = inst.ProgressAsOf(date(2026, time.March, 16))
		assert.Equal(t, 3, p.CurrentWeek)
	})

	t.Run("percent clamps at 100", func(t *testing.T) {
		over := NewInstance(uuid.New(), &tmpl, date(2026, time.January, 1))
		for d := 0; d < 40; d++ {
			require.NoError(t, over.MarkComplete(TaskTheory, date(2026, time.January, 1).AddDate(0, 0, d)))
		}
		p := over.ProgressAsOf(date(2026, time.February, 15))
		assert.Equal(t, 100, p.ProgressPercent)
	})
}
