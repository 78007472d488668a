package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/FlyRocketToMars/RocktheInterview/internal/plan"
)

// ---------------------------------------------------------------------
// Study Plan Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.templates.List())
}

// CreatePlanRequest is the payload for selecting a plan template.
type CreatePlanRequest struct {
	TemplateID string `json:"template_id"`
	StartDate  string `json:"start_date,omitempty"` // YYYY-MM-DD, default today
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tmpl, err := s.templates.Select(req.TemplateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	start := time.Now()
	if req.StartDate != "" {
		start, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
	}

	// Selecting a template replaces any existing plan outright
	inst := plan.NewInstance(userID, tmpl, start)
	if err := s.db.SaveStudyPlan(r.Context(), inst); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, inst)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	inst, err := s.db.GetStudyPlan(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if inst == nil {
		noPlan := &plan.ErrNoPlan{UserID: userID}
		s.errorResponse(w, HTTPStatus(noPlan), noPlan.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, inst)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := s.db.DeleteStudyPlan(r.Context(), userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handlePlanToday(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	inst, tmpl, ok := s.loadPlan(w, r, userID)
	if !ok {
		return
	}

	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	daily, err := plan.TasksForDate(inst, tmpl, date)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, daily)
}

// CompleteTaskRequest is the payload for marking a task type complete.
type CompleteTaskRequest struct {
	TaskType string `json:"task_type"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD, default today
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inst, _, ok := s.loadPlan(w, r, userID)
	if !ok {
		return
	}

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	if err := inst.MarkComplete(plan.TaskType(req.TaskType), date); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.db.SaveStudyPlan(r.Context(), inst); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, inst.ProgressAsOf(time.Now()))
}

func (s *Server) handlePlanProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	inst, _, ok := s.loadPlan(w, r, userID)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, inst.ProgressAsOf(time.Now()))
}

// loadPlan fetches a user's plan and its template, writing the error
// response itself when either is missing.
func (s *Server) loadPlan(w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*plan.Instance, *plan.Template, bool) {
	inst, err := s.db.GetStudyPlan(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, nil, false
	}
	if inst == nil {
		noPlan := &plan.ErrNoPlan{UserID: userID}
		s.errorResponse(w, HTTPStatus(noPlan), noPlan.Error())
		return nil, nil, false
	}

	tmpl, err := s.templates.Select(inst.TemplateID)
	if err != nil {
		// A stored plan referencing an unknown template means the static
		// configuration changed under the user
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return nil, nil, false
	}

	return inst, tmpl, true
}
