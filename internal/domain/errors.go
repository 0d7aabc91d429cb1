package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are missing or invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidCredentials is returned when login email/password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when no valid credential accompanies a request
	ErrUnauthorized = errors.New("missing or invalid credential")

	// ErrForbidden is returned when the caller lacks the required role or ownership
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when a referenced record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = errors.New("email already registered")

	// ErrDuplicateCode is returned when creating a nutrient whose code already exists
	ErrDuplicateCode = errors.New("nutrient code already exists")

	// ErrEstimatorFailure is returned when an AI estimator call fails or produces
	// output that cannot be parsed as the expected JSON shape
	ErrEstimatorFailure = errors.New("nutrient estimator request failed")
)
