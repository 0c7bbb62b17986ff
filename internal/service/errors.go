package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("failed to create token")

	ErrValidationEmptyName     = errors.New("name must not be empty")
	ErrValidationBadEmail      = errors.New("email address is malformed")
	ErrValidationShortPassword = errors.New("password must be at least 8 characters")
	ErrValidationEmptyTitle    = errors.New("note title must not be empty")
	ErrValidationEmptyContent  = errors.New("note content must not be empty")
	ErrValidationEmptyUpdate   = errors.New("note update contains no fields")
	ErrValidationEmptyQuery    = errors.New("search query must not be empty")
	ErrValidationNoUserID      = errors.New("no user ID was given")

	ErrSignupOnServer = errors.New("signup failed on server")
	ErrSigninOnServer = errors.New("signin failed on server")
	ErrInvalidNoteID  = errors.New("note ID must be a positive integer")
)
