// Package community implements the Q&A board: typed question and answer
// records plus the pure filtering, sorting and search logic over them.
package community

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category identifies a question board section.
type Category string

// Question categories.
const (
	CategoryCoding       Category = "coding"
	CategorySystemDesign Category = "system_design"
	CategoryMLTheory     Category = "ml_theory"
	CategoryBehavioral   Category = "behavioral"
	CategoryResume       Category = "resume"
	CategoryCareer       Category = "career"
	CategorySalary       Category = "salary"
	CategoryGeneral      Category = "general"
)

// Categories maps each category to its display label, in board order.
var Categories = []struct {
	ID    Category
	Label string
}{
	{CategoryCoding, "💻 Coding"},
	{CategorySystemDesign, "🏗️ System Design"},
	{CategoryMLTheory, "🧠 ML Theory"},
	{CategoryBehavioral, "💬 Behavioral"},
	{CategoryResume, "📄 Resume"},
	{CategoryCareer, "🚀 Career"},
	{CategorySalary, "💰 Compensation"},
	{CategoryGeneral, "❓ General"},
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c Category) bool {
	for _, cat := range Categories {
		if cat.ID == c {
			return true
		}
	}
	return false
}

// Status describes where a question is in its lifecycle.
type Status string

// Question statuses.
const (
	StatusOpen     Status = "open"
	StatusAnswered Status = "answered"
	StatusClosed   Status = "closed"
)

// Answer is a community answer to a question.
type Answer struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Accepted  bool      `json:"accepted"`
}

// Question is a community question with its answers.
type Question struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  Category  `json:"category"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Views     int       `json:"views"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Answers   []Answer  `json:"answers"`
	Status    Status    `json:"status"`
}

// NewQuestion constructs a question, validating required fields. An empty
// category defaults to general.
func NewQuestion(title, content, author string, category Category, tags []string) (*Question, error) {
	if title == "" {
		return nil, fmt.Errorf("question title is required")
	}
	if content == "" {
		return nil, fmt.Errorf("question content is required")
	}
	if author == "" {
		return nil, fmt.Errorf("question author is required")
	}
	if category == "" {
		category = CategoryGeneral
	}
	if !ValidCategory(category) {
		return nil, fmt.Errorf("unknown question category: %s", category)
	}

	return &Question{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		Author:    author,
		Category:  category,
		Tags:      tags,
		CreatedAt: time.Now(),
		Status:    StatusOpen,
	}, nil
}

// NewAnswer constructs an answer, validating required fields.
func NewAnswer(content, author string) (*Answer, error) {
	if content == "" {
		return nil, fmt.Errorf("answer content is required")
	}
	if author == "" {
		return nil, fmt.Errorf("answer author is required")
	}

	return &Answer{
		ID:        uuid.New(),
		Content:   content,
		Author:    author,
		CreatedAt: time.Now(),
	}, nil
}

// AddAnswer appends an answer and moves the question to answered.
func (q *Question) AddAnswer(a Answer) {
	q.Answers = append(q.Answers, a)
	if q.Status == StatusOpen {
		q.Status = StatusAnswered
	}
}

// Vote applies an up or down vote to the question itself.
func (q *Question) Vote(upvote bool) {
	if upvote {
		q.Upvotes++
	} else {
		q.Downvotes++
	}
}

// VoteAnswer applies a vote to the answer with the given id.
func (q *Question) VoteAnswer(answerID uuid.UUID, upvote bool) error {
	for i := range q.Answers {
		if q.Answers[i].ID == answerID {
			if upvote {
				q.Answers[i].Upvotes++
			} else {
				q.Answers[i].Downvotes++
			}
			return nil
		}
	}
	return fmt.Errorf("answer not found: %s", answerID)
}

// AcceptAnswer marks one answer as accepted, clearing any previous
// acceptance. At most one answer is accepted at a time.
func (q *Question) AcceptAnswer(answerID uuid.UUID) error {
	found := false
	for i := range q.Answers {
		if q.Answers[i].ID == answerID {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("answer not found: %s", answerID)
	}

	for i := range q.Answers {
		q.Answers[i].Accepted = q.Answers[i].ID == answerID
	}
	q.Status = StatusAnswered
	return nil
}
