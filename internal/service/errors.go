package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrPasswordUnusable    = errors.New("password cannot be used")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotOwner is returned when an authenticated user attempts to delete
	// a post or comment created by someone else.
	ErrNotOwner = errors.New("resource belongs to another user")
)
