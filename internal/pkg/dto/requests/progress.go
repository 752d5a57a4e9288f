package requests

type CreateWeightEntry struct {
	WeightKg  float64 `json:"weight_kg" validate:"required,gt=0"`
	EntryDate string  `json:"entry_date,omitempty" validate:"omitempty,datetime=2006-01-02,not_future_date"`

	UserID      string
	SessionData string
}

type ListWeightEntries struct {
	Page     int
	PageSize int
	BaseURL  string

	UserID      string
	SessionData string
}

type GetWeighInReminder struct {
	UserID      string
	SessionData string
}
