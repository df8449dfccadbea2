package service

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload carried by a session token. Email is for
// display only; authorization decisions always go through UserID.
type SessionClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Issue(userID int64, email string) (string, error)
	Verify(token string) (*SessionClaims, error)
}
