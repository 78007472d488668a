package gamification

import "sort"

// Entry is one leaderboard row.
type Entry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Level    Level  `json:"level"`
}

// Leaderboard ranks profiles by points, descending, username as tie-break so
// equal scores order deterministically, truncated to limit.
func Leaderboard(profiles []Profile, limit int) []Entry {
	sorted := make([]Profile, len(profiles))
	copy(sorted, profiles)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].Username < sorted[j].Username
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]Entry, len(sorted))
	for i, p := range sorted {
		entries[i] = Entry{
			Rank:     i + 1,
			Username: p.Username,
			Points:   p.Points,
			Level:    LevelInfo(p.Points),
		}
	}
	return entries
}
