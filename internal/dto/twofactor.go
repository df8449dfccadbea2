package dto

type TwoFactorCodeRequest struct {
	Code string `json:"code"`
}

type TwoFactorEnableResponse struct {
	Message string `json:"message"`
	Secret  string `json:"secret"`
}

type GenerateCodeResponse struct {
	Code             string `json:"code"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

type VerifyResponse struct {
	Verified bool   `json:"verified"`
	Error    string `json:"error,omitempty"`
}

type TwoFactorStatusResponse struct {
	TwoFactorEnabled bool `json:"two_factor_enabled"`
}
