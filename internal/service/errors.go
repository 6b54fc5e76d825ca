package service

import "errors"

var (
	// ErrInvalidStatus is returned for a status value outside the entity's enum.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrEmptyReply is returned when an admin reply has no content.
	ErrEmptyReply = errors.New("reply must not be empty")

	// ErrInvalidCredentials covers unknown email and wrong password alike,
	// so sign-in responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive is returned when a deactivated account signs in.
	ErrAccountInactive = errors.New("account inactive")

	// ErrEmailTaken is returned when creating an account with an email that
	// already exists.
	ErrEmailTaken = errors.New("email already registered")
)
