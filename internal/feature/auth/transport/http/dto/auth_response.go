package dto

// UserOut is the public projection of a user. The password hash never
// appears here.
type UserOut struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// AuthResponse is returned by /auth/register and /auth/login.
type AuthResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserOut `json:"user"`
}

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
