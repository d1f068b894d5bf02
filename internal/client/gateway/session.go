package gateway

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/mzaikin/boardroom/internal/common"
)

// Session is the identity the backend minted for the current login. It is
// decoded from the access token's claims without verifying the signature:
// the client only needs to know who it is acting as, enforcement stays on
// the server.
type Session struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// Valid reports whether the session carries an authenticated identity.
func (s Session) Valid() bool { return s.UserID != "" }

// SessionFromToken extracts the identity claims from a JWT access token.
func SessionFromToken(accessToken string) (Session, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return Session{}, common.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Session{}, common.ErrInvalidToken
	}

	s := Session{UserID: sub}
	if v, ok := claims["name"].(string); ok {
		s.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		s.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		s.Role = v
	}
	return s, nil
}
