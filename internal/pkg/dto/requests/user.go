package requests

type UpdateProfile struct {
	Name        string `json:"name,omitempty" validate:"omitempty,max=80"`
	ProgramID   string `json:"program_id,omitempty" validate:"omitempty,max=64"`
	SessionData string
}
