package dto

type OAuthInitResponse struct {
	AuthURL string `json:"auth_url"`
}

type OAuthCallbackRequest struct {
	Code        string `json:"code"`
	CallbackURL string `json:"callback_url"`
}
