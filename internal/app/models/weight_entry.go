package models

import "time"

type WeightEntry struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    string    `bson:"userId"`
	WeightKg  float64   `bson:"weightKg"`
	EntryDate time.Time `bson:"entryDate"`
	TimeModel `bson:",inline"`
}
