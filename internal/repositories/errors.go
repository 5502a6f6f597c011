package repositories

import "errors"

// Sentinel errors returned by repositories so handlers can map them to
// HTTP status codes with errors.Is instead of matching error strings.
var (
	// ErrProductNotFound is returned when no product matches the given ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrNotOwner is returned when a mutation targets a product created by
	// a different user.
	ErrNotOwner = errors.New("product does not belong to user")
	// ErrUserNotFound is returned when no user matches the given email or ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when creating a user with an email that is
	// already registered.
	ErrEmailTaken = errors.New("email already registered")
)
