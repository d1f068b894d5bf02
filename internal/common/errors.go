package common

import "errors"

// Token lifecycle errors. ErrTokenExpired doubles as the wire-level status
// message the server attaches to an Unauthenticated response, which is how
// the client tells an expired access token apart from bad credentials.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
