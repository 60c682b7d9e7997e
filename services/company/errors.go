package company

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that already
	// belongs to a company.
	ErrEmailTaken = errors.New("a company with this email already exists")

	// ErrSlugTaken is returned when the requested booking-page slug is
	// already in use by another company.
	ErrSlugTaken = errors.New("this slug is already in use")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers get no hint which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidSlug is returned when the slug contains characters that
	// cannot appear in a public booking URL.
	ErrInvalidSlug = errors.New("slug may only contain lowercase letters, digits and hyphens")
)
