package gamification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		points int
		level  int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{149, 2},
		{150, 3},
		{500, 5},
		{1999, 7},
		{2000, 8},
		{99999, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelFor(tt.points), "points=%d", tt.points)
	}
}

func TestLevelInfo(t *testing.T) {
	assert.Equal(t, "🌱 Newcomer", LevelInfo(0).Name)
	assert.Equal(t, "📚 Learner", LevelInfo(75).Name)
	assert.Equal(t, "🔥 Legend", LevelInfo(5000).Name)
}

func TestProgressToNext(t *testing.T) {
	assert.Equal(t, 0.0, ProgressToNext(0))
	assert.Equal(t, 0.5, ProgressToNext(25), "halfway from 0 to 50")
	assert.Equal(t, 0.0, ProgressToNext(50), "fresh level starts at zero progress")
	assert.Equal(t, 1.0, ProgressToNext(2000), "top of the ladder")
	assert.Equal(t, 1.0, ProgressToNext(9000))
}

func TestLeaderboard(t *testing.T) {
	profiles := []Profile{
		{UserID: uuid.New(), Username: "carol", Points: 120},
		{UserID: uuid.New(), Username: "alice", Points: 300},
		{UserID: uuid.New(), Username: "bob", Points: 120},
		{UserID: uuid.New(), Username: "dave", Points: 10},
	}

	t.Run("ranked by points, username as tie-break", func(t *testing.T) {
		entries := Leaderboard(profiles, 0)
		require.Len(t, entries, 4)
		assert.Equal(t, []string{"alice", "bob", "carol", "dave"},
			[]string{entries[0].Username, entries[1].Username, entries[2].Username, entries[3].Username})
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, "🎯 Challenger", entries[0].Level.Name)
	})

	t.Run("limit truncates", func(t *testing.T) {
		entries := Leaderboard(profiles, 2)
		require.Len(t, entries, 2)
		assert.Equal(t, "alice", entries[0].Username)
	})

	t.Run("input order is untouched", func(t *testing.T) {
		Leaderboard(profiles, 0)
		assert.Equal(t, "carol", profiles[0].Username)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Leaderboard(nil, 10))
	})
}
