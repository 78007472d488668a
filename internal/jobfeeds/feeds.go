// Package jobfeeds builds search links for machine-learning job listings on
// the major job platforms and company career pages. It constructs URLs only;
// fetching or scraping the listings is out of scope.
package jobfeeds

import (
	"fmt"
	"net/url"
)

// Platform is one job-search site with a canned last-24-hours MLE search.
type Platform struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	MLESearch string `json:"mle_search"`
}

// CompanyLink is a direct link into a company's career-page MLE search.
type CompanyLink struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	URL  string `json:"url"`
	Tier int    `json:"tier"` // 1 = big tech, 2 = AI-focused, 3 = other
}

// SpecializedSearch pairs a focus area with ready-made platform searches.
type SpecializedSearch struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	LinkedIn string `json:"linkedin"`
	Indeed   string `json:"indeed"`
}

// ErrUnknownPlatform indicates a custom-search request for a platform the
// aggregator does not support.
type ErrUnknownPlatform struct {
	Platform string
}

func (e *ErrUnknownPlatform) Error() string {
	return fmt.Sprintf("unknown job platform: %s", e.Platform)
}

// indeedRemoteFilter is Indeed's opaque facet id for remote jobs.
const indeedRemoteFilter = "032b3046-06a3-4876-8dfd-474eb5e7ed11"

// Aggregator builds job-search links. It holds only static tables and is
// safe for concurrent use.
type Aggregator struct {
	platforms   []Platform
	companies   []CompanyLink
	specialized []SpecializedSearch
}

// NewAggregator creates an Aggregator with the built-in platform and company
// tables.
func NewAggregator() *Aggregator {
	a := &Aggregator{
		platforms: []Platform{
			{Key: "linkedin", Name: "LinkedIn Jobs", Icon: "💼",
				MLESearch: "https://www.linkedin.com/jobs/search/?keywords=machine%20learning%20engineer&f_TPR=r86400"},
			{Key: "indeed", Name: "Indeed", Icon: "🔍",
				MLESearch: "https://www.indeed.com/jobs?q=machine+learning+engineer&fromage=1"},
			{Key: "glassdoor", Name: "Glassdoor", Icon: "🚪",
				MLESearch: "https://www.glassdoor.com/Job/machine-learning-engineer-jobs-SRCH_KO0,25.htm?fromAge=1"},
			{Key: "levels_fyi", Name: "levels.fyi Jobs", Icon: "📊",
				MLESearch: "https://www.levels.fyi/jobs?title=Machine%20Learning%20Engineer"},
			{Key: "wellfound", Name: "Wellfound (AngelList)", Icon: "🚀",
				MLESearch: "https://wellfound.com/role/machine-learning-engineer"},
			{Key: "ycombinator", Name: "Y Combinator", Icon: "🌟",
				MLESearch: "https://www.workatastartup.com/jobs?q=machine%20learning"},
			{Key: "builtin", Name: "Built In", Icon: "🏗️",
				MLESearch: "https://builtin.com/jobs?search=machine%20learning%20engineer"},
		},
		companies: []CompanyLink{
			{Key: "google", Name: "Google", Icon: "🔴", Tier: 1,
				URL: "https://careers.google.com/jobs/results/?q=machine%20learning"},
			{Key: "meta", Name: "Meta", Icon: "🔵", Tier: 1,
				URL: "https://www.metacareers.com/jobs?q=machine%20learning%20engineer"},
			{Key: "amazon", Name: "Amazon", Icon: "🟠", Tier: 1,
				URL: "https://www.amazon.jobs/en/search?base_query=machine+learning+engineer"},
			{Key: "microsoft", Name: "Microsoft", Icon: "🟢", Tier: 1,
				URL: "https://careers.microsoft.com/v2/global/en/search?q=machine%20learning"},
			{Key: "apple", Name: "Apple", Icon: "⚫", Tier: 1,
				URL: "https://jobs.apple.com/en-us/search?search=machine%20learning"},
			{Key: "openai", Name: "OpenAI", Icon: "⬛", Tier: 2,
				URL: "https://openai.com/careers/search?q="},
			{Key: "anthropic", Name: "Anthropic", Icon: "🟤", Tier: 2,
				URL: "https://www.anthropic.com/careers#open-roles"},
			{Key: "nvidia", Name: "NVIDIA", Icon: "🟩", Tier: 2,
				URL: "https://nvidia.wd5.myworkdayjobs.com/NVIDIAExternalCareerSite?q=machine%20learning"},
			{Key: "netflix", Name: "Netflix", Icon: "🔴", Tier: 2,
				URL: "https://jobs.netflix.com/search?q=machine%20learning"},
			{Key: "stripe", Name: "Stripe", Icon: "🟣", Tier: 2,
				URL: "https://stripe.com/jobs/search?q=machine+learning"},
			{Key: "uber", Name: "Uber", Icon: "⚪", Tier: 2,
				URL: "https://www.uber.com/us/en/careers/list/?query=machine%20learning"},
			{Key: "airbnb", Name: "Airbnb", Icon: "🔴", Tier: 3,
				URL: "https://careers.airbnb.com/positions/?query=machine%20learning"},
			{Key: "spotify", Name: "Spotify", Icon: "🟢", Tier: 3,
				URL: "https://www.lifeatspotify.com/jobs?query=machine%20learning"},
			{Key: "databricks", Name: "Databricks", Icon: "🟥", Tier: 3,
				URL: "https://www.databricks.com/company/careers/open-positions?department=Engineering"},
		},
	}

	specializedAreas := []struct{ key, name, query string }{
		{"llm_engineer", "LLM Engineer", "LLM engineer"},
		{"ml_infra", "ML Infrastructure", "ML infrastructure engineer"},
		{"recommendation", "Recommendation Systems", "recommendation systems engineer"},
		{"nlp_engineer", "NLP Engineer", "NLP engineer"},
		{"cv_engineer", "Computer Vision", "computer vision engineer"},
		{"mlops", "MLOps Engineer", "MLOps engineer"},
		{"research_scientist", "Research Scientist", "research scientist machine learning"},
		{"applied_scientist", "Applied Scientist", "applied scientist"},
	}
	for _, area := range specializedAreas {
		linkedIn, _ := a.CustomSearch("linkedin", area.query, "", false)
		indeed, _ := a.CustomSearch("indeed", area.query, "", false)
		a.specialized = append(a.specialized, SpecializedSearch{
			Key:      area.key,
			Name:     area.name,
			LinkedIn: linkedIn,
			Indeed:   indeed,
		})
	}

	return a
}

// Platforms returns the job-platform links.
func (a *Aggregator) Platforms() []Platform {
	return a.platforms
}

// Companies returns the company career-page links, big tech first.
func (a *Aggregator) Companies() []CompanyLink {
	return a.companies
}

// Specialized returns the ready-made focus-area searches.
func (a *Aggregator) Specialized() []SpecializedSearch {
	return a.specialized
}

// CustomSearch builds a search URL for the given platform, keyword, optional
// location and remote filter. LinkedIn and Indeed searches are restricted to
// postings from the last 24 hours.
func (a *Aggregator) CustomSearch(platform, keywords, location string, remote bool) (string, error) {
	switch platform {
	case "linkedin":
		params := url.Values{}
		params.Set("keywords", keywords)
		if location != "" {
			params.Set("location", location)
		}
		if remote {
			params.Set("f_WT", "2")
		}
		params.Set("f_TPR", "r86400")
		return "https://www.linkedin.com/jobs/search/?" + params.Encode(), nil

	case "indeed":
		params := url.Values{}
		params.Set("q", keywords)
		params.Set("fromage", "1")
		if location != "" {
			params.Set("l", location)
		}
		if remote {
			params.Set("remotejob", indeedRemoteFilter)
		}
		return "https://www.indeed.com/jobs?" + params.Encode(), nil

	case "glassdoor":
		params := url.Values{}
		params.Set("sc.keyword", keywords)
		return "https://www.glassdoor.com/Job/jobs.htm?" + params.Encode(), nil

	default:
		return "", &ErrUnknownPlatform{Platform: platform}
	}
}
