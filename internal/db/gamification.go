package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FlyRocketToMars/RocktheInterview/internal/gamification"
)

// SaveGamificationProfile upserts a user's engagement profile as a whole row
func (db *DB) SaveGamificationProfile(ctx context.Context, p *gamification.Profile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO gamification_profiles
		   (user_id, username, points, badges, total_answers, total_questions,
		    answers_accepted, upvotes_received, upvotes_given,
		    current_streak, max_streak, last_login, joined_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (user_id) DO UPDATE SET
		   username = $2, points = $3, badges = $4, total_answers = $5,
		   total_questions = $6, answers_accepted = $7, upvotes_received = $8,
		   upvotes_given = $9, current_streak = $10, max_streak = $11,
		   last_login = $12, updated_at = NOW()`,
		p.UserID, p.Username, p.Points, StringArray(p.Badges),
		p.TotalAnswers, p.TotalQuestions, p.AnswersAccepted,
		p.UpvotesReceived, p.UpvotesGiven,
		p.CurrentStreak, p.MaxStreak, p.LastLogin, p.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save gamification profile: %w", err)
	}
	return nil
}

// GetGamificationProfile retrieves a user's engagement profile.
// Returns nil if none exists.
func (db *DB) GetGamificationProfile(ctx context.Context, userID uuid.UUID) (*gamification.Profile, error) {
	var p gamification.Profile
	var badges StringArray
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, username, points, badges, total_answers, total_questions,
		        answers_accepted, upvotes_received, upvotes_given,
		        current_streak, max_streak, last_login, joined_at
		 FROM gamification_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.Username, &p.Points, &badges,
		&p.TotalAnswers, &p.TotalQuestions, &p.AnswersAccepted,
		&p.UpvotesReceived, &p.UpvotesGiven,
		&p.CurrentStreak, &p.MaxStreak, &p.LastLogin, &p.JoinedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get gamification profile: %w", err)
	}
	p.Badges = badges
	return &p, nil
}

// ListGamificationProfiles retrieves all engagement profiles, highest points first
func (db *DB) ListGamificationProfiles(ctx context.Context) ([]gamification.Profile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT user_id, username, points, badges, total_answers, total_questions,
		        answers_accepted, upvotes_received, upvotes_given,
		        current_streak, max_streak, last_login, joined_at
		 FROM gamification_profiles ORDER BY points DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list gamification profiles: %w", err)
	}
	defer rows.Close()

	var profiles []gamification.Profile
	for rows.Next() {
		var p gamification.Profile
		var badges StringArray
		if err := rows.Scan(&p.UserID, &p.Username, &p.Points, &badges,
			&p.TotalAnswers, &p.TotalQuestions, &p.AnswersAccepted,
			&p.UpvotesReceived, &p.UpvotesGiven,
			&p.CurrentStreak, &p.MaxStreak, &p.LastLogin, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gamification profile: %w", err)
		}
		p.Badges = badges
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
