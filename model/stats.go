package model

// UserStatsID is the fixed id of the single profile document.
const UserStatsID = "user_stats"

type UserStats struct {
	ID               string  `bson:"id" json:"id"`
	Level            int     `bson:"level" json:"level"`
	XP               int     `bson:"xp" json:"xp"`
	TotalActivities  int     `bson:"total_activities" json:"total_activities"`
	CurrentStreak    int     `bson:"current_streak" json:"current_streak"`
	LongestStreak    int     `bson:"longest_streak" json:"longest_streak"`
	LastActivityDate *string `bson:"last_activity_date" json:"last_activity_date"`
}

// DefaultUserStats is the profile of someone who has logged nothing yet.
func DefaultUserStats() *UserStats {
	return &UserStats{
		ID:    UserStatsID,
		Level: 1,
	}
}
