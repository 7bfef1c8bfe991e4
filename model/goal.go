package model

import "time"

// Goal is a target for a category over a free-form period ("daily", "weekly", ...).
// CurrentProgress starts at 0 and nothing recomputes it.
type Goal struct {
	ID              string    `bson:"id" json:"id"`
	CategoryID      string    `bson:"category_id" json:"category_id"`
	CategoryName    string    `bson:"category_name" json:"category_name"`
	Target          int       `bson:"target" json:"target"`
	Period          string    `bson:"period" json:"period"`
	CurrentProgress int       `bson:"current_progress" json:"current_progress"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
