package community

import (
	"sort"
	"strings"
)

// SortOrder selects how a question listing is ordered.
type SortOrder string

// Listing orders.
const (
	SortNewest     SortOrder = "newest"
	SortPopular    SortOrder = "popular"
	SortUnanswered SortOrder = "unanswered"
)

// FilterAndSort narrows a question list to one category (empty or "all"
// keeps everything), applies the sort order and truncates to limit.
// SortUnanswered keeps only open questions with no answers, newest first.
func FilterAndSort(questions []Question, category Category, order SortOrder, limit int) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if category != "" && category != "all" && q.Category != category {
			continue
		}
		if order == SortUnanswered && (len(q.Answers) > 0 || q.Status != StatusOpen) {
			continue
		}
		filtered = append(filtered, q)
	}

	switch order {
	case SortPopular:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Upvotes > filtered[j].Upvotes
		})
	default: // newest, including the unanswered listing
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// Search returns the questions whose title, content or tags contain the
// query, case-insensitively.
func Search(questions []Question, query string) []Question {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}

	var results []Question
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Title), query) ||
			strings.Contains(strings.ToLower(q.Content), query) ||
			tagsContain(q.Tags, query) {
			results = append(results, q)
		}
	}
	return results
}

func tagsContain(tags []string, query string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Stats summarizes board activity.
type Stats struct {
	TotalQuestions    int              `json:"total_questions"`
	TotalAnswers      int              `json:"total_answers"`
	AnsweredQuestions int              `json:"answered_questions"`
	ByCategory        map[Category]int `json:"by_category"`
}

// ComputeStats tallies board statistics over a question list.
func ComputeStats(questions []Question) Stats {
	stats := Stats{ByCategory: make(map[Category]int, len(Categories))}
	for _, cat := range Categories {
		stats.ByCategory[cat.ID] = 0
	}

	for _, q := range questions {
		stats.TotalQuestions++
		stats.TotalAnswers += len(q.Answers)
		if len(q.Answers) > 0 {
			stats.AnsweredQuestions++
		}
		stats.ByCategory[q.Category]++
	}
	return stats
}
