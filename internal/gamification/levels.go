package gamification

// Level is one rung of the engagement ladder.
type Level struct {
	Threshold   int    `json:"threshold"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// levels lists the ladder in ascending threshold order.
var levels = []Level{
	{0, "🌱 Newcomer", "Just starting the interview journey"},
	{50, "📚 Learner", "Studying actively"},
	{150, "💪 Practitioner", "Contributing content"},
	{300, "🎯 Challenger", "Well prepared"},
	{500, "⭐ Ace", "Interview pro"},
	{800, "🏆 Expert", "Community contributor"},
	{1200, "👑 Master", "Interview mentor"},
	{2000, "🔥 Legend", "Community leader"},
}

// LevelFor returns the 1-based level number for a point total.
func LevelFor(points int) int {
	level := 0
	for _, l := range levels {
		if points >= l.Threshold {
			level++
		}
	}
	return level
}

// LevelInfo returns the ladder entry for a point total.
func LevelInfo(points int) Level {
	idx := LevelFor(points) - 1
	if idx < 0 {
		idx = 0
	}
	return levels[idx]
}

// ProgressToNext returns how far (0..1) a point total has climbed toward the
// next level, 1 at the top of the ladder.
func ProgressToNext(points int) float64 {
	current := LevelFor(points)
	if current >= len(levels) {
		return 1.0
	}

	next := levels[current].Threshold
	prev := 0
	if current > 0 {
		prev = levels[current-1].Threshold
	}
	if next <= prev {
		return 1.0
	}
	return float64(points-prev) / float64(next-prev)
}
