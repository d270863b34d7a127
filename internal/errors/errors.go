package errors

import (
	"errors"
)

var (
	ErrMissingCredentials = errors.New("please provide email and password")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrMissingToken       = errors.New("you are not logged in")
	ErrInvalidSignature   = errors.New("invalid token signature")
	ErrMalformedToken     = errors.New("malformed token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrUserNotFound       = errors.New("the user belonging to this token no longer exists")
	ErrPasswordChanged    = errors.New("password was changed after this token was issued")
	ErrStoreUnavailable   = errors.New("user store unavailable")
)
