package responses

import "time"

type WeightEntry struct {
	EntryID   string    `json:"entry_id"`
	UserID    string    `json:"user_id"`
	WeightKg  float64   `json:"weight_kg"`
	EntryDate time.Time `json:"entry_date"`
}

type WeighInReminder struct {
	Level              string     `json:"level"`
	DaysSinceLastEntry int        `json:"days_since_last_entry"`
	LastEntryDate      *time.Time `json:"last_entry_date,omitempty"`
}
