package model

import "time"

// Activity is one logged block of time. CategoryName is copied from the
// category when the activity is logged and is not kept in sync afterwards.
type Activity struct {
	ID           string    `bson:"id" json:"id"`
	CategoryID   string    `bson:"category_id" json:"category_id"`
	CategoryName string    `bson:"category_name" json:"category_name"`
	Date         string    `bson:"date" json:"date"`             // YYYY-MM-DD
	StartTime    string    `bson:"start_time" json:"start_time"` // HH:MM, 24h
	Duration     int       `bson:"duration" json:"duration"`     // minutes
	Notes        *string   `bson:"notes" json:"notes"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// ActivityFilter narrows an activity listing. Empty fields are not applied;
// StartDate and EndDate are inclusive.
type ActivityFilter struct {
	CategoryID string
	StartDate  string
	EndDate    string
}
