package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlyRocketToMars/RocktheInterview/internal/jobfeeds"
	"github.com/FlyRocketToMars/RocktheInterview/internal/plan"
	"github.com/FlyRocketToMars/RocktheInterview/internal/questionbank"
	"github.com/FlyRocketToMars/RocktheInterview/internal/skills"
	"github.com/FlyRocketToMars/RocktheInterview/internal/taxonomy"
)

// newStaticTestServer builds a server over in-memory static configuration.
// It has no database, so only the endpoints that never touch one can be
// exercised with it.
func newStaticTestServer(t *testing.T) *Server {
	t.Helper()

	tax := &taxonomy.Taxonomy{Categories: []taxonomy.Category{
		{ID: "programming", Name: "Programming", Skills: []string{"Python", "SQL", "Go"}},
		{ID: "ml_frameworks", Name: "ML Frameworks", Skills: []string{"PyTorch", "TensorFlow"}},
		{ID: "mlops", Name: "MLOps", Skills: []string{"Docker", "Kubernetes"}},
	}}
	require.NoError(t, tax.Validate())

	aliases := taxonomy.AliasTable{
		"k8s":     "Kubernetes",
		"pytorch": "PyTorch",
	}
	require.NoError(t, aliases.Validate(tax))

	templates, err := plan.NewRegistry([]plan.Template{
		{
			ID: "mle_2week", Name: "Two Week Sprint", TargetRole: "MLE", DurationWeeks: 2,
			Phases: []plan.Phase{
				{
					Weeks: []int{1, 2}, Name: "Sprint", Focus: []string{"everything"},
					DailyMinutes: map[plan.TaskType]int{plan.TaskTheory: 30, plan.TaskCoding: 60},
					Topics:       []string{"transformers", "feature stores"},
				},
			},
		},
	})
	require.NoError(t, err)

	bank := questionbank.NewBank([]questionbank.Question{
		{ID: "mlt-1", Round: "ml_theory", Question: "Explain overfitting", Difficulty: "easy"},
		{ID: "msd-1", Round: "ml_system_design", Question: "Design a feed ranker", Difficulty: "hard"},
		{ID: "beh-1", Round: "behavioral", Question: "Tell me about a conflict"},
		{ID: "mlc-1", Round: "ml_coding", Question: "Implement k-means", Difficulty: "medium"},
		{ID: "mlc-2", Round: "ml_coding", Question: "Implement logistic regression", Difficulty: "medium"},
	})

	return &Server{
		taxonomy:  tax,
		extractor: skills.NewExtractor(tax, aliases),
		templates: templates,
		bank:      bank,
		feeds:     jobfeeds.NewAggregator(),
	}
}

func TestHandleExtractSkills(t *testing.T) {
	server := newStaticTestServer(t)

	body, _ := json.Marshal(ExtractRequest{
		Text: "Built pipelines in Python with pytorch, deployed on k8s.",
	})
	req := httptest.NewRequest(http.MethodPost, "/analysis/extract", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.handleExtractSkills(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Kubernetes", "PyTorch", "Python"}, resp.Skills)
	assert.Equal(t, []string{"Python"}, resp.Categorized["Programming"])
}

func TestHandleExtractSkills_InvalidJSON(t *testing.T) {
	server := newStaticTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analysis/extract", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()

	server.handleExtractSkills(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGapAnalysis_SkillLists(t *testing.T) {
	server := newStaticTestServer(t)

	body, _ := json.Marshal(GapRequest{
		ResumeSkills: []string{"Python", "SQL"},
		JDSkills:     []string{"Python", "Docker", "Kubernetes"},
	})
	req := httptest.NewRequest(http.MethodPost, "/analysis/gap", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.handleGapAnalysis(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp GapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Docker", "Kubernetes"}, resp.Gaps)
	assert.Equal(t, []string{"Python"}, resp.Strengths)
	assert.Equal(t, []string{"SQL"}, resp.Extra)
	assert.Equal(t, 33, resp.MatchPercent)
	assert.Empty(t, resp.Importance)
}

func TestHandleGapAnalysis_TextsTakePrecedence(t *testing.T) {
	server := newStaticTestServer(t)

	body, _ := json.Marshal(GapRequest{
		ResumeText:   "Years of Python and SQL.",
		JDText:       "Must have Python. Docker and k8s are required.",
		ResumeSkills: []string{"Go"},
	})
	req := httptest.NewRequest(http.MethodPost, "/analysis/gap", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.handleGapAnalysis(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp GapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Docker", "Kubernetes"}, resp.Gaps)
	assert.Equal(t, []string{"Python"}, resp.Strengths)
	// The explicit Go entry is ignored because a resume text was supplied
	assert.NotContains(t, resp.Extra, "Go")
	// Gap importance is classified against the JD text
	assert.Equal(t, "required", resp.Importance["Docker"])
}

func TestHandleGapAnalysis_EmptyTarget(t *testing.T) {
	server := newStaticTestServer(t)

	body, _ := json.Marshal(GapRequest{ResumeSkills: []string{"Python"}})
	req := httptest.NewRequest(http.MethodPost, "/analysis/gap", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.handleGapAnalysis(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp GapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Gaps)
	assert.Equal(t, 0, resp.MatchPercent)
}
