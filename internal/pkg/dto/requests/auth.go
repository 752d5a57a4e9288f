package requests

type SendMagicLink struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"omitempty,max=80"`
	Mode  string `json:"mode" validate:"required,oneof=login register"`
}

type VerifyMagicLink struct {
	Token string `json:"token" validate:"required,len=64,hexadecimal"`
}
