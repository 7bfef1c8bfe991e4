package model

import "time"

// Built-in badge ids. Only these are evaluated after an activity is logged.
const (
	BadgeFirstStep   = "first_step"
	BadgeWeekWarrior = "week_warrior"
	BadgeCenturion   = "centurion"
	BadgeLevel5      = "level_5"
	BadgeLevel10     = "level_10"
	BadgeMonthMaster = "month_master"
)

type Badge struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description" json:"description"`
	Icon        string     `bson:"icon" json:"icon"`
	EarnedDate  *time.Time `bson:"earned_date" json:"earned_date"`
	IsEarned    bool       `bson:"is_earned" json:"is_earned"`

	// Persisted with custom badges only. Not part of the API payload and never evaluated.
	ConditionType  string `bson:"condition_type,omitempty" json:"-"`
	ConditionValue int    `bson:"condition_value,omitempty" json:"-"`
}
