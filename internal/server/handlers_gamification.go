package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/FlyRocketToMars/RocktheInterview/internal/gamification"
)

// ---------------------------------------------------------------------
// Gamification Handlers
// ---------------------------------------------------------------------

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	profiles, err := s.db.ListGamificationProfiles(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, gamification.Leaderboard(profiles, limit))
}

// GamificationResponse is a profile with its derived level standing.
type GamificationResponse struct {
	Profile  *gamification.Profile `json:"profile"`
	Level    gamification.Level    `json:"level"`
	Progress float64               `json:"progress_to_next"`
}

func (s *Server) handleGetGamification(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	profile, err := s.db.GetGamificationProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Gamification profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, GamificationResponse{
		Profile:  profile,
		Level:    gamification.LevelInfo(profile.Points),
		Progress: gamification.ProgressToNext(profile.Points),
	})
}

// DailyLoginResponse reports the streak outcome plus any badges earned.
type DailyLoginResponse struct {
	gamification.LoginResult
	NewBadges []gamification.Badge `json:"new_badges,omitempty"`
	Points    int                  `json:"points"`
}

func (s *Server) handleDailyLogin(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	profile, ok := s.loadOrCreateProfile(w, r, userID, "")
	if !ok {
		return
	}

	result := profile.RecordLogin(time.Now())
	badges := gamification.EvaluateBadges(profile)

	if err := s.db.SaveGamificationProfile(r.Context(), profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, DailyLoginResponse{
		LoginResult: result,
		NewBadges:   badges,
		Points:      profile.Points,
	})
}

// loadOrCreateProfile fetches a gamification profile, creating a fresh one
// for users who have not earned anything yet. The username is filled in on
// first creation when known.
func (s *Server) loadOrCreateProfile(w http.ResponseWriter, r *http.Request, userID uuid.UUID, username string) (*gamification.Profile, bool) {
	profile, err := s.db.GetGamificationProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if profile == nil {
		if username == "" {
			if user, err := s.db.GetUser(r.Context(), userID); err == nil && user != nil {
				username = user.Name
			}
		}
		profile = gamification.NewProfile(userID, username)
	}
	return profile, true
}

// creditAction awards points for a community action when the request names
// the acting user. A missing or malformed user ID skips the credit rather
// than failing the request.
func (s *Server) creditAction(r *http.Request, userIDStr, username string, action gamification.Action, apply func(*gamification.Profile)) {
	if userIDStr == "" {
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return
	}

	ctx := r.Context()
	profile, err := s.db.GetGamificationProfile(ctx, userID)
	if err != nil {
		log.Printf("gamification lookup failed for %s: %v", userID, err)
		return
	}
	if profile == nil {
		if username == "" {
			if user, err := s.db.GetUser(ctx, userID); err == nil && user != nil {
				username = user.Name
			}
		}
		profile = gamification.NewProfile(userID, username)
	}

	profile.Award(action, 1)
	apply(profile)

	// First-contribution bonuses
	if action == gamification.ActionAskQuestion && profile.TotalQuestions == 1 {
		profile.Award(gamification.ActionFirstQuestion, 1)
	}
	if action == gamification.ActionAnswerQuestion && profile.TotalAnswers == 1 {
		profile.Award(gamification.ActionFirstAnswer, 1)
	}

	gamification.EvaluateBadges(profile)

	if err := s.db.SaveGamificationProfile(ctx, profile); err != nil {
		log.Printf("gamification save failed for %s: %v", userID, err)
	}
}
