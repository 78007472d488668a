package gamification

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a user's engagement record.
type Profile struct {
	UserID          uuid.UUID  `json:"user_id"`
	Username        string     `json:"username"`
	Points          int        `json:"points"`
	Badges          []string   `json:"badges"`
	TotalAnswers    int        `json:"total_answers"`
	TotalQuestions  int        `json:"total_questions"`
	AnswersAccepted int        `json:"answers_accepted"`
	UpvotesReceived int        `json:"upvotes_received"`
	UpvotesGiven    int        `json:"upvotes_given"`
	CurrentStreak   int        `json:"current_streak"`
	MaxStreak       int        `json:"max_streak"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
	JoinedAt        time.Time  `json:"joined_at"`
}

// NewProfile creates a fresh profile for a user.
func NewProfile(userID uuid.UUID, username string) *Profile {
	return &Profile{
		UserID:   userID,
		Username: username,
		JoinedAt: time.Now(),
	}
}

// Award adds the points for an action, multiplier times, and returns the
// points granted.
func (p *Profile) Award(action Action, multiplier int) int {
	if multiplier < 1 {
		multiplier = 1
	}
	granted := PointsFor(action) * multiplier
	p.Points += granted
	return granted
}

// HasBadge reports whether the profile already carries a badge.
func (p *Profile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// LoginResult reports the outcome of a daily login.
type LoginResult struct {
	Streak        int `json:"streak"`
	PointsAwarded int `json:"points_awarded"`
}

// maxStreakBonusDays caps the streak bonus multiplier.
const maxStreakBonusDays = 7

// RecordLogin updates the login streak for today and grants the daily bonus.
// A second login on the same day is a no-op. Logging in on the day after the
// last login extends the streak; any longer gap resets it to one.
func (p *Profile) RecordLogin(today time.Time) LoginResult {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	if p.LastLogin != nil && sameDay(*p.LastLogin, day) {
		return LoginResult{Streak: p.CurrentStreak}
	}

	if p.LastLogin != nil && sameDay(p.LastLogin.AddDate(0, 0, 1), day) {
		p.CurrentStreak++
	} else {
		p.CurrentStreak = 1
	}
	if p.CurrentStreak > p.MaxStreak {
		p.MaxStreak = p.CurrentStreak
	}
	p.LastLogin = &day

	awarded := PointsFor(ActionDailyLogin)
	if p.CurrentStreak > 1 {
		bonusDays := p.CurrentStreak
		if bonusDays > maxStreakBonusDays {
			bonusDays = maxStreakBonusDays
		}
		awarded += PointsFor(ActionStreakBonus) * bonusDays
	}
	p.Points += awarded

	return LoginResult{Streak: p.CurrentStreak, PointsAwarded: awarded}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
