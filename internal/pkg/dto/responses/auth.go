package responses

type VerifyMagicLink struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}
