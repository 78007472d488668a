package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FlyRocketToMars/RocktheInterview/internal/plan"
)

// SaveStudyPlan stores a user's study plan, replacing any existing one.
// The completion log is written as a whole row so the latest write wins.
func (db *DB) SaveStudyPlan(ctx context.Context, p *plan.Instance) error {
	logBytes, err := json.Marshal(p.Log)
	if err != nil {
		return fmt.Errorf("failed to marshal completion log: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO study_plans (id, user_id, template_id, start_date, total_days, completion_log, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		   id = $1, template_id = $3, start_date = $4, total_days = $5,
		   completion_log = $6, created_at = $7, updated_at = NOW()`,
		p.ID, p.UserID, p.TemplateID, p.StartDate, p.TotalDays, logBytes, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save study plan: %w", err)
	}
	return nil
}

// GetStudyPlan retrieves a user's study plan. Returns nil if none exists.
func (db *DB) GetStudyPlan(ctx context.Context, userID uuid.UUID) (*plan.Instance, error) {
	var p plan.Instance
	var logBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, template_id, start_date, total_days, completion_log, created_at
		 FROM study_plans WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.TemplateID, &p.StartDate, &p.TotalDays, &logBytes, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get study plan: %w", err)
	}

	if err := json.Unmarshal(logBytes, &p.Log); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completion log: %w", err)
	}
	if p.Log == nil {
		p.Log = make(map[string][]plan.TaskType)
	}
	return &p, nil
}

// DeleteStudyPlan removes a user's study plan
func (db *DB) DeleteStudyPlan(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM study_plans WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete study plan: %w", err)
	}
	return nil
}
