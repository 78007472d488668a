package jobfeeds

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_StaticTables(t *testing.T) {
	a := NewAggregator()

	t.Run("platforms", func(t *testing.T) {
		platforms := a.Platforms()
		require.NotEmpty(t, platforms)

		keys := make(map[string]bool)
		for _, p := range platforms {
			assert.NotEmpty(t, p.Name)
			assert.True(t, strings.HasPrefix(p.MLESearch, "https://"))
			assert.False(t, keys[p.Key], "platform keys are unique")
			keys[p.Key] = true
		}
		assert.True(t, keys["linkedin"])
		assert.True(t, keys["indeed"])
	})

	t.Run("companies grouped by tier", func(t *testing.T) {
		companies := a.Companies()
		require.NotEmpty(t, companies)

		lastTier := 0
		for _, c := range companies {
			assert.True(t, strings.HasPrefix(c.URL, "https://"))
			assert.GreaterOrEqual(t, c.Tier, lastTier, "big tech is listed first")
			lastTier = c.Tier
		}
	})

	t.Run("specialized searches", func(t *testing.T) {
		specialized := a.Specialized()
		require.NotEmpty(t, specialized)
		for _, s := range specialized {
			assert.Contains(t, s.LinkedIn, "linkedin.com")
			assert.Contains(t, s.Indeed, "indeed.com")
		}
	})
}

func TestAggregator_CustomSearch(t *testing.T) {
	a := NewAggregator()

	t.Run("linkedin", func(t *testing.T) {
		got, err := a.CustomSearch("linkedin", "MLOps engineer", "Seattle, WA", false)
		require.NoError(t, err)

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "www.linkedin.com", parsed.Host)
		assert.Equal(t, "MLOps engineer", parsed.Query().Get("keywords"))
		assert.Equal(t, "Seattle, WA", parsed.Query().Get("location"))
		assert.Equal(t, "r86400", parsed.Query().Get("f_TPR"), "restricted to the last 24 hours")
		assert.Empty(t, parsed.Query().Get("f_WT"))
	})

	t.Run("linkedin remote", func(t *testing.T) {
		got, err := a.CustomSearch("linkedin", "LLM engineer", "", true)
		require.NoError(t, err)

		parsed, _ := url.Parse(got)
		assert.Equal(t, "2", parsed.Query().Get("f_WT"))
		assert.Empty(t, parsed.Query().Get("location"))
	})

	t.Run("indeed remote", func(t *testing.T) {
		got, err := a.CustomSearch("indeed", "computer vision", "Remote", true)
		require.NoError(t, err)

		parsed, _ := url.Parse(got)
		assert.Equal(t, "www.indeed.com", parsed.Host)
		assert.Equal(t, "computer vision", parsed.Query().Get("q"))
		assert.Equal(t, "1", parsed.Query().Get("fromage"))
		assert.Equal(t, indeedRemoteFilter, parsed.Query().Get("remotejob"))
	})

	t.Run("glassdoor", func(t *testing.T) {
		got, err := a.CustomSearch("glassdoor", "applied scientist", "", false)
		require.NoError(t, err)
		assert.Contains(t, got, "glassdoor.com")
	})

	t.Run("unknown platform", func(t *testing.T) {
		got, err := a.CustomSearch("monster", "anything", "", false)
		assert.Empty(t, got)

		var unknown *ErrUnknownPlatform
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "monster", unknown.Platform)
	})
}
