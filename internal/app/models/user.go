package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Name      string `bson:"name,omitempty"`
	ProgramID string `bson:"programId,omitempty"`
	TimeModel `bson:",inline"`
}
