package server

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/FlyRocketToMars/RocktheInterview/internal/questionbank"
)

// ---------------------------------------------------------------------
// Practice Handlers
// ---------------------------------------------------------------------

// practiceRNG builds the RNG for a practice draw. A seed query parameter
// makes the draw reproducible; otherwise each request gets a fresh draw.
func practiceRNG(r *http.Request) (*rand.Rand, error) {
	if seedStr := r.URL.Query().Get("seed"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, err
		}
		return rand.New(rand.NewSource(seed)), nil
	}
	return rand.New(rand.NewSource(time.Now().UnixNano())), nil
}

func (s *Server) handleDailyPractice(w http.ResponseWriter, r *http.Request) {
	rng, err := practiceRNG(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid seed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": s.bank.DailyPractice(rng),
	})
}

func (s *Server) handleRandomPractice(w http.ResponseWriter, r *http.Request) {
	rng, err := practiceRNG(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid seed")
		return
	}

	count := 5
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		count, err = strconv.Atoi(countStr)
		if err != nil || count < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid count")
			return
		}
	}

	filter := questionbank.Filter{
		Company:    r.URL.Query().Get("company"),
		Round:      r.URL.Query().Get("round"),
		Domain:     r.URL.Query().Get("domain"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}

	questions := s.bank.Random(rng, count, filter)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": questions,
		"total":     len(questions),
	})
}
