package dto

type ResetRequest struct {
	Email string `json:"email"`
}

// ResetRequestResponse is success-shaped even for unknown emails so callers
// cannot probe which addresses have accounts. ResetToken is only populated
// when a token was actually issued.
type ResetRequestResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token,omitempty"`
}

type ResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
