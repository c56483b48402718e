package errorz

import "errors"

var (
	ErrUnauthorized = errors.New("user is not authorized to perform the action")
	ErrNotFound     = errors.New("not found")
	ErrInvalidCode  = errors.New("invalid auth code")
	ErrCodeExpired  = errors.New("auth code expired")
)
