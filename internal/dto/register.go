package dto

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthResponse is returned by register, login and the OAuth callback.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
