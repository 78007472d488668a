// Package gamification implements the engagement system: points, levels,
// badges, login streaks and the leaderboard. All rules are pure functions
// over typed profiles; persistence lives with the caller.
package gamification

// Action is a point-earning user action.
type Action string

// Point-earning actions.
const (
	ActionAskQuestion     Action = "ask_question"
	ActionAnswerQuestion  Action = "answer_question"
	ActionAnswerAccepted  Action = "answer_accepted"
	ActionReceiveUpvote   Action = "receive_upvote"
	ActionGiveUpvote      Action = "give_upvote"
	ActionDailyLogin      Action = "daily_login"
	ActionStreakBonus     Action = "streak_bonus" // awarded per streak day
	ActionFirstAnswer     Action = "first_answer"
	ActionFirstQuestion   Action = "first_question"
	ActionCompleteProfile Action = "complete_profile"
)

// points holds the value of each action.
var points = map[Action]int{
	ActionAskQuestion:     5,
	ActionAnswerQuestion:  10,
	ActionAnswerAccepted:  25,
	ActionReceiveUpvote:   2,
	ActionGiveUpvote:      1,
	ActionDailyLogin:      5,
	ActionStreakBonus:     10,
	ActionFirstAnswer:     20,
	ActionFirstQuestion:   15,
	ActionCompleteProfile: 10,
}

// PointsFor returns the point value of an action, zero for unknown actions.
func PointsFor(action Action) int {
	return points[action]
}
