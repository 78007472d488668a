package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/FlyRocketToMars/RocktheInterview/internal/community"
	"github.com/FlyRocketToMars/RocktheInterview/internal/gamification"
)

// ---------------------------------------------------------------------
// Community Q&A Handlers
// ---------------------------------------------------------------------

// CreateQuestionRequest is the payload for posting a question.
// AuthorID is optional; when present the author's gamification profile is
// credited.
type CreateQuestionRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	AuthorID string   `json:"author_id,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q, err := community.NewQuestion(req.Title, req.Content, req.Author, community.Category(req.Category), req.Tags)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.CreateCommunityQuestion(r.Context(), q); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.creditAction(r, req.AuthorID, req.Author, gamification.ActionAskQuestion, func(p *gamification.Profile) {
		p.TotalQuestions++
	})

	s.jsonResponse(w, http.StatusCreated, q)
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := s.db.ListCommunityQuestions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	category := community.Category(r.URL.Query().Get("category"))
	order := community.SortOrder(r.URL.Query().Get("sort"))
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, community.FilterAndSort(questions, category, order, limit))
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	q, err := s.db.GetCommunityQuestion(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if q == nil {
		s.errorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	// View count is incremented out of band; a lost increment is acceptable
	if err := s.db.IncrementQuestionViews(r.Context(), id); err == nil {
		q.Views++
	}

	s.jsonResponse(w, http.StatusOK, q)
}

// AddAnswerRequest is the payload for answering a question.
type AddAnswerRequest struct {
	Content  string `json:"content"`
	Author   string `json:"author"`
	AuthorID string `json:"author_id,omitempty"`
}

func (s *Server) handleAddAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	var req AddAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	answer, err := community.NewAnswer(req.Content, req.Author)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	q, ok := s.loadQuestion(w, r, id)
	if !ok {
		return
	}

	q.AddAnswer(*answer)
	if err := s.db.UpdateCommunityQuestion(r.Context(), q); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.creditAction(r, req.AuthorID, req.Author, gamification.ActionAnswerQuestion, func(p *gamification.Profile) {
		p.TotalAnswers++
	})

	s.jsonResponse(w, http.StatusCreated, q)
}

// VoteRequest is the payload for voting on a question or answer.
type VoteRequest struct {
	Upvote  bool   `json:"upvote"`
	VoterID string `json:"voter_id,omitempty"`
}

func (s *Server) handleVoteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q, ok := s.loadQuestion(w, r, id)
	if !ok {
		return
	}

	q.Vote(req.Upvote)
	if err := s.db.UpdateCommunityQuestion(r.Context(), q); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if req.Upvote {
		s.creditAction(r, req.VoterID, "", gamification.ActionGiveUpvote, func(p *gamification.Profile) {
			p.UpvotesGiven++
		})
	}

	s.jsonResponse(w, http.StatusOK, q)
}

func (s *Server) handleVoteAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}
	answerID, err := uuid.Parse(r.PathValue("answer_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid answer ID")
		return
	}

	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q, ok := s.loadQuestion(w, r, id)
	if !ok {
		return
	}

	if err := q.VoteAnswer(answerID, req.Upvote); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	if err := s.db.UpdateCommunityQuestion(r.Context(), q); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if req.Upvote {
		s.creditAction(r, req.VoterID, "", gamification.ActionGiveUpvote, func(p *gamification.Profile) {
			p.UpvotesGiven++
		})
	}

	s.jsonResponse(w, http.StatusOK, q)
}

// AcceptAnswerRequest optionally credits the answer's author.
type AcceptAnswerRequest struct {
	AnswerAuthorID string `json:"answer_author_id,omitempty"`
}

func (s *Server) handleAcceptAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}
	answerID, err := uuid.Parse(r.PathValue("answer_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid answer ID")
		return
	}

	var req AcceptAnswerRequest
	if r.Body != nil {
		// Body is optional for accepts
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	q, ok := s.loadQuestion(w, r, id)
	if !ok {
		return
	}

	if err := q.AcceptAnswer(answerID); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	if err := s.db.UpdateCommunityQuestion(r.Context(), q); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.creditAction(r, req.AnswerAuthorID, "", gamification.ActionAnswerAccepted, func(p *gamification.Profile) {
		p.AnswersAccepted++
	})

	s.jsonResponse(w, http.StatusOK, q)
}

func (s *Server) handleSearchQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.errorResponse(w, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	questions, err := s.db.ListCommunityQuestions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, community.Search(questions, query))
}

func (s *Server) handleCommunityStats(w http.ResponseWriter, r *http.Request) {
	questions, err := s.db.ListCommunityQuestions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, community.ComputeStats(questions))
}

// loadQuestion fetches a question, writing the error response itself when
// it is missing.
func (s *Server) loadQuestion(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*community.Question, bool) {
	q, err := s.db.GetCommunityQuestion(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if q == nil {
		s.errorResponse(w, http.StatusNotFound, "Question not found")
		return nil, false
	}
	return q, true
}
