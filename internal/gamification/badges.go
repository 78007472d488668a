package gamification

// Badge is an achievement with a predicate over the profile.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	earned      func(*Profile) bool
}

// badges lists every automatically awardable badge.
var badges = []Badge{
	{
		ID: "first_answer", Name: "First Words", Icon: "🎤",
		Description: "Posted a first answer",
		earned:      func(p *Profile) bool { return p.TotalAnswers >= 1 },
	},
	{
		ID: "helpful_10", Name: "Helping Hand", Icon: "🤝",
		Description: "Had 10 answers accepted",
		earned:      func(p *Profile) bool { return p.AnswersAccepted >= 10 },
	},
	{
		ID: "prolific_writer", Name: "Prolific Writer", Icon: "✍️",
		Description: "Posted 50 answers",
		earned:      func(p *Profile) bool { return p.TotalAnswers >= 50 },
	},
	{
		ID: "streak_7", Name: "One Week Strong", Icon: "🔥",
		Description: "Logged in 7 days in a row",
		earned:      func(p *Profile) bool { return p.MaxStreak >= 7 },
	},
	{
		ID: "streak_30", Name: "One Month Strong", Icon: "💎",
		Description: "Logged in 30 days in a row",
		earned:      func(p *Profile) bool { return p.MaxStreak >= 30 },
	},
	{
		ID: "upvotes_100", Name: "Crowd Favorite", Icon: "👍",
		Description: "Received 100 upvotes",
		earned:      func(p *Profile) bool { return p.UpvotesReceived >= 100 },
	},
	{
		ID: "curious_mind", Name: "Curious Mind", Icon: "🤔",
		Description: "Asked 10 questions",
		earned:      func(p *Profile) bool { return p.TotalQuestions >= 10 },
	},
}

// EvaluateBadges awards any badges the profile newly qualifies for and
// returns them. Already-held badges are never re-awarded.
func EvaluateBadges(p *Profile) []Badge {
	var awarded []Badge
	for _, badge := range badges {
		if p.HasBadge(badge.ID) {
			continue
		}
		if badge.earned(p) {
			p.Badges = append(p.Badges, badge.ID)
			awarded = append(awarded, badge)
		}
	}
	return awarded
}

// BadgeByID looks up a badge definition.
func BadgeByID(id string) (Badge, bool) {
	for _, badge := range badges {
		if badge.ID == id {
			return badge, true
		}
	}
	return Badge{}, false
}
