package model

import "time"

type Category struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Icon      string    `bson:"icon" json:"icon"`
	Color     string    `bson:"color" json:"color"`
	IsCustom  bool      `bson:"is_custom" json:"is_custom"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
