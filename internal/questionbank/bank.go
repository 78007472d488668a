// Package questionbank serves interview questions from the static question
// corpus: filtered lookups, random drills and a balanced daily practice set.
package questionbank

import (
	"math/rand"
	"strings"
)

// Question is one interview question from the corpus.
type Question struct {
	ID         string   `json:"id"`
	Company    string   `json:"company,omitempty"`
	Round      string   `json:"round"`
	Domain     string   `json:"domain,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Round types used by the balanced daily practice set, in serving order.
var practiceRounds = []string{"ml_theory", "ml_system_design", "behavioral", "ml_coding"}

// Filter narrows question lookups. Zero-value fields match everything.
type Filter struct {
	Company    string
	Round      string
	Domain     string
	Difficulty string
}

func (f Filter) matches(q Question) bool {
	if f.Company != "" && !strings.EqualFold(q.Company, f.Company) {
		return false
	}
	if f.Round != "" && q.Round != f.Round {
		return false
	}
	if f.Domain != "" && q.Domain != f.Domain {
		return false
	}
	if f.Difficulty != "" && q.Difficulty != f.Difficulty {
		return false
	}
	return true
}

// Bank holds the loaded question corpus. It is immutable after construction
// and safe for concurrent use when callers supply their own RNG per call.
type Bank struct {
	questions []Question
}

// NewBank builds a Bank from a question list, dropping duplicate ids (the
// first occurrence wins, matching the corpus merge order).
func NewBank(questions []Question) *Bank {
	seen := make(map[string]bool, len(questions))
	unique := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.ID == "" || seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		unique = append(unique, q)
	}
	return &Bank{questions: unique}
}

// Len returns the number of questions in the corpus.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns every question.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Select returns the questions matching the filter, in corpus order.
func (b *Bank) Select(f Filter) []Question {
	var out []Question
	for _, q := range b.questions {
		if f.matches(q) {
			out = append(out, q)
		}
	}
	return out
}

// Random draws up to n distinct questions matching the filter using the
// given RNG. Callers wanting reproducible draws seed the RNG themselves.
func (b *Bank) Random(rng *rand.Rand, n int, f Filter) []Question {
	pool := b.Select(f)
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:n]
}

// DailyPractice assembles a balanced practice set: one question per round
// type plus one extra coding question when available.
func (b *Bank) DailyPractice(rng *rand.Rand) []Question {
	var practice []Question
	for _, round := range practiceRounds {
		practice = append(practice, b.Random(rng, 1, Filter{Round: round})...)
	}

	extra := b.Random(rng, 2, Filter{Round: "ml_coding"})
	for _, q := range extra {
		if !containsQuestion(practice, q.ID) {
			practice = append(practice, q)
			break
		}
	}

	return practice
}

func containsQuestion(list []Question, id string) bool {
	for _, q := range list {
		if q.ID == id {
			return true
		}
	}
	return false
}
