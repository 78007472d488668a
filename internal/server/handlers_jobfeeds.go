package server

import (
	"errors"
	"net/http"

	"github.com/FlyRocketToMars/RocktheInterview/internal/jobfeeds"
)

// ---------------------------------------------------------------------
// Job Feed Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.feeds.Platforms())
}

func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.feeds.Companies())
}

func (s *Server) handleListSpecialized(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.feeds.Specialized())
}

// JobSearchResponse carries a single assembled search URL.
type JobSearchResponse struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

func (s *Server) handleJobSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	platform := query.Get("platform")
	if platform == "" {
		s.errorResponse(w, http.StatusBadRequest, "Query parameter 'platform' is required")
		return
	}
	keywords := query.Get("keywords")
	if keywords == "" {
		s.errorResponse(w, http.StatusBadRequest, "Query parameter 'keywords' is required")
		return
	}

	location := query.Get("location")
	remote := query.Get("remote") == "true"

	url, err := s.feeds.CustomSearch(platform, keywords, location, remote)
	if err != nil {
		var unknownErr *jobfeeds.ErrUnknownPlatform
		if errors.As(err, &unknownErr) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, JobSearchResponse{Platform: platform, URL: url})
}
