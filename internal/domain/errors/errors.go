package errors

import "errors"

var (
	// ErrItemNotFound is returned when the requested item does not exist in the store.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidInput is returned when input fails domain validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDatabaseError is returned when the backing store is unreachable or misbehaves.
	ErrDatabaseError = errors.New("database error")

	// ErrUnauthorized is returned when the admin gate rejects a password or token.
	ErrUnauthorized = errors.New("unauthorized")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrItemNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
