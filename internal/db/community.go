package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FlyRocketToMars/RocktheInterview/internal/community"
)

// CreateCommunityQuestion inserts a new question record
func (db *DB) CreateCommunityQuestion(ctx context.Context, q *community.Question) error {
	answersBytes, err := json.Marshal(q.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO community_questions
		   (id, title, content, author, category, tags, views, upvotes, downvotes, answers, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		q.ID, q.Title, q.Content, q.Author, q.Category, StringArray(q.Tags),
		q.Views, q.Upvotes, q.Downvotes, answersBytes, q.Status, q.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create community question: %w", err)
	}
	return nil
}

// GetCommunityQuestion retrieves a question by ID. Returns nil if not found.
func (db *DB) GetCommunityQuestion(ctx context.Context, id uuid.UUID) (*community.Question, error) {
	var q community.Question
	var tags StringArray
	var answersBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, content, author, category, tags, views, upvotes, downvotes, answers, status, created_at
		 FROM community_questions WHERE id = $1`,
		id,
	).Scan(&q.ID, &q.Title, &q.Content, &q.Author, &q.Category, &tags,
		&q.Views, &q.Upvotes, &q.Downvotes, &answersBytes, &q.Status, &q.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get community question: %w", err)
	}

	q.Tags = tags
	if err := json.Unmarshal(answersBytes, &q.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
	}
	return &q, nil
}

// ListCommunityQuestions retrieves all questions, newest first
func (db *DB) ListCommunityQuestions(ctx context.Context) ([]community.Question, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, content, author, category, tags, views, upvotes, downvotes, answers, status, created_at
		 FROM community_questions ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list community questions: %w", err)
	}
	defer rows.Close()

	var questions []community.Question
	for rows.Next() {
		var q community.Question
		var tags StringArray
		var answersBytes []byte
		if err := rows.Scan(&q.ID, &q.Title, &q.Content, &q.Author, &q.Category, &tags,
			&q.Views, &q.Upvotes, &q.Downvotes, &answersBytes, &q.Status, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan community question: %w", err)
		}
		q.Tags = tags
		if err := json.Unmarshal(answersBytes, &q.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// UpdateCommunityQuestion replaces a question row with its current state.
// Answers, votes and status are written together so the latest write wins.
func (db *DB) UpdateCommunityQuestion(ctx context.Context, q *community.Question) error {
	answersBytes, err := json.Marshal(q.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE community_questions SET
		   title = $2, content = $3, author = $4, category = $5, tags = $6,
		   views = $7, upvotes = $8, downvotes = $9, answers = $10, status = $11,
		   updated_at = NOW()
		 WHERE id = $1`,
		q.ID, q.Title, q.Content, q.Author, q.Category, StringArray(q.Tags),
		q.Views, q.Upvotes, q.Downvotes, answersBytes, q.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update community question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("community question not found: %s", q.ID)
	}
	return nil
}

// IncrementQuestionViews bumps a question's view counter
func (db *DB) IncrementQuestionViews(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE community_questions SET views = views + 1 WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to increment question views: %w", err)
	}
	return nil
}

// DeleteCommunityQuestion removes a question and its answers
func (db *DB) DeleteCommunityQuestion(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM community_questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete community question: %w", err)
	}
	return nil
}
