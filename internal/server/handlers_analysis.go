package server

import (
	"encoding/json"
	"net/http"

	"github.com/FlyRocketToMars/RocktheInterview/internal/gap"
	"github.com/FlyRocketToMars/RocktheInterview/internal/skills"
)

// ---------------------------------------------------------------------
// Skill Analysis Handlers
// ---------------------------------------------------------------------

// ExtractRequest is the payload for skill extraction.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse carries the extracted skills and their category view.
type ExtractResponse struct {
	Skills      []string            `json:"skills"`
	Categorized map[string][]string `json:"categorized"`
}

func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	found := s.extractor.Extract(req.Text)

	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		Skills:      found.Sorted(),
		Categorized: skills.Categorize(found, s.taxonomy),
	})
}

// GapRequest is the payload for gap analysis. Either raw texts or explicit
// skill lists can be supplied; texts take precedence.
type GapRequest struct {
	ResumeText   string   `json:"resume_text,omitempty"`
	JDText       string   `json:"jd_text,omitempty"`
	ResumeSkills []string `json:"resume_skills,omitempty"`
	JDSkills     []string `json:"jd_skills,omitempty"`
}

// GapResponse carries the gap analysis result.
type GapResponse struct {
	Gaps         []string          `json:"gaps"`
	Strengths    []string          `json:"strengths"`
	Extra        []string          `json:"extra"`
	Importance   map[string]string `json:"importance,omitempty"`
	MatchPercent int               `json:"match_percent"`
}

func (s *Server) handleGapAnalysis(w http.ResponseWriter, r *http.Request) {
	var req GapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resume := skills.NewSet(req.ResumeSkills...)
	if req.ResumeText != "" {
		resume = s.extractor.Extract(req.ResumeText)
	}
	target := skills.NewSet(req.JDSkills...)
	if req.JDText != "" {
		target = s.extractor.Extract(req.JDText)
	}

	analysis := gap.Analyze(resume, target)

	resp := GapResponse{
		Gaps:      analysis.Gaps.Sorted(),
		Strengths: analysis.Strengths.Sorted(),
		Extra:     analysis.Extra.Sorted(),
	}
	if len(target) > 0 {
		resp.MatchPercent = len(analysis.Strengths) * 100 / len(target)
	}

	// Importance classification needs the JD text for context
	if req.JDText != "" {
		resp.Importance = make(map[string]string, len(resp.Gaps))
		for _, skill := range resp.Gaps {
			resp.Importance[skill] = string(skills.ClassifyImportance(skill, req.JDText))
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
