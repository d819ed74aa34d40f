package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested record is absent.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidToken is returned when a presented refresh token does not exist.
	ErrInvalidToken = errors.New("invalid refresh token")

	// ErrNotTokenOwner is returned when a refresh token exists but is bound
	// to a different user than the one being updated.
	ErrNotTokenOwner = errors.New("refresh token belongs to another user")

	// ErrDuplicateClaim is returned when a user already holds a claim of the
	// same type.
	ErrDuplicateClaim = errors.New("user already has a claim of this type")

	// ErrEmptyAvatarPath is returned when an avatar path is empty or
	// whitespace-only.
	ErrEmptyAvatarPath = errors.New("avatar path cannot be empty")

	// ErrRoleNotFound is returned when a role name is outside the fixed
	// enumeration or has not been set up.
	ErrRoleNotFound = errors.New("role not found")

	// ErrInvalidCredentials is returned when a login attempt fails
	// password verification.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
