package user

type LoginRequest struct {
	Code string `json:"code" validate:"required"`
}

type SessionResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
