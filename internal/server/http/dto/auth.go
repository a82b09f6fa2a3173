package dto

// RegisterRequest describes the sign-up form.
type RegisterRequest struct {
	Nome    string `json:"nome"`
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
	Senha2  string `json:"senha2"`
}

// LoginRequest describes username/password payload.
type LoginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

// IdentityResponse is the signed-in user as seen by pages.
type IdentityResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// ErrorResponse carries a user-facing message.
type ErrorResponse struct {
	Error string `json:"error"`
}
