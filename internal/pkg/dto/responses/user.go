package responses

import "time"

type UserProfile struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	ProgramID string    `json:"program_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
