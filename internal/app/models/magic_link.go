package models

import "time"

// MagicLink is a single-use, time-boxed passwordless credential.
// At most one unused link exists per email: issuing a new one marks
// every previous unused link for that email as used.
type MagicLink struct {
	ID        string    `bson:"_id,omitempty"`
	Email     string    `bson:"email"`
	Token     string    `bson:"token"`
	Mode      string    `bson:"mode"`
	Name      string    `bson:"name,omitempty"`
	ExpiresAt time.Time `bson:"expiresAt"`
	Used      bool      `bson:"used"`
	TimeModel `bson:",inline"`
}

func (m *MagicLink) IsExpired(now time.Time) bool {
	return now.After(m.ExpiresAt)
}
